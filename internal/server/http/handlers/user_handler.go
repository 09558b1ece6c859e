package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/habitquest/internal/server/http/dto"
)

type UserHandler struct {
	facade UserFacade
}

func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Profile handles GET /api/user.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.facade.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Coins:          user.Coins,
		LastActiveDate: user.LastActiveDate,
		CreatedAt:      user.CreatedAt,
	})
}
