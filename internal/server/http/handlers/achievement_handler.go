package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/habitquest/internal/server/http/dto"
)

type AchievementHandler struct {
	facade AchievementFacade
}

func NewAchievementHandler(facade AchievementFacade) *AchievementHandler {
	return &AchievementHandler{facade: facade}
}

// List handles GET /api/achievements.
func (h *AchievementHandler) List(c *gin.Context) {
	statuses, err := h.facade.Achievements(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AchievementResponse, 0, len(statuses))
	for _, s := range statuses {
		resp = append(resp, dto.AchievementResponse{
			Kind:      string(s.Kind),
			Title:     s.Title,
			Subtitle:  s.Subtitle,
			Value:     s.Value,
			ImageName: s.ImageName,
			Unlocked:  s.Unlocked,
		})
	}
	c.JSON(http.StatusOK, resp)
}
