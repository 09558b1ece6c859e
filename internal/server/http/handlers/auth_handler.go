package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/server/http/dto"
	"github.com/polkiloo/habitquest/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Login handles POST /api/auth/login. A successful login also reconciles the
// user's habits with the current day.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, checkIn, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			writeError(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		CheckIn: dto.CheckInResponse{
			DaysDiff:     checkIn.DaysDiff,
			CoinsGranted: checkIn.CoinsGranted,
			Achievements: grantResponses(checkIn.Grants),
		},
	})
}
