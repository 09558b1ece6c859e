package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/server/http/dto"
	"github.com/polkiloo/habitquest/internal/server/http/middleware"
)

const habitIDParam = "habitId"

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domainErrors.ErrNotFound, http.StatusNotFound},
	{domainErrors.ErrForbidden, http.StatusForbidden},
	{domainErrors.ErrAlreadyCompleted, http.StatusConflict},
	{domainErrors.ErrConflict, http.StatusConflict},
	{domainErrors.ErrAlreadyExists, http.StatusConflict},
	{domainErrors.ErrHabitLimitReached, http.StatusUnprocessableEntity},
	{domainErrors.ErrInvalidInput, http.StatusBadRequest},
	{domainErrors.ErrInvalidCredentials, http.StatusBadRequest},
}

// respondError writes the JSON error body matching err. Unknown errors are
// recorded on the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			writeError(c, e.status, e.err.Error())
			return
		}
	}
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, "internal server error")
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, err error) {
	writeError(c, http.StatusBadRequest, err.Error())
}

func parseHabitID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(habitIDParam))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid habit id")
		return uuid.Nil, false
	}
	return id, true
}

func grantResponses(grants []model.Grant) []dto.GrantResponse {
	resp := make([]dto.GrantResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, dto.GrantResponse{Kind: string(g.Kind), Coins: g.Coins})
	}
	return resp
}

func habitResponse(h model.Habit) dto.HabitResponse {
	return dto.HabitResponse{
		ID:               h.ID.String(),
		Name:             h.Name,
		Color:            h.Color,
		Difficulty:       string(h.Difficulty),
		Streak:           h.Streak,
		IsFinished:       h.IsFinished,
		LastDateFinished: h.LastDateFinished,
		CreatedAt:        h.CreatedAt,
		UpdatedAt:        h.UpdatedAt,
	}
}
