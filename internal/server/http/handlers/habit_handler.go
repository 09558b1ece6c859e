package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/server/http/dto"
)

// HabitHandler serves habit management and completion endpoints.
type HabitHandler struct {
	facade HabitFacade
}

// NewHabitHandler constructs HabitHandler.
func NewHabitHandler(facade HabitFacade) *HabitHandler {
	return &HabitHandler{facade: facade}
}

// List handles GET /api/habits.
func (h *HabitHandler) List(c *gin.Context) {
	board, err := h.facade.Habits(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.HabitListResponse{
		Habits:       make([]dto.HabitResponse, 0, len(board.Habits)),
		CoinsGranted: board.CoinsGranted,
		Coins:        board.Coins,
	}
	for _, habit := range board.Habits {
		resp.Habits = append(resp.Habits, habitResponse(habit))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/habits.
func (h *HabitHandler) Create(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.facade.CreateHabit(c.Request.Context(), CurrentUserID(c), model.HabitDraft{
		Name:       req.Name,
		Color:      req.Color,
		Difficulty: model.Difficulty(req.Difficulty),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habitResponse(*habit))
}

// Rename handles PATCH /api/habits/:habitId.
func (h *HabitHandler) Rename(c *gin.Context) {
	habitID, ok := parseHabitID(c)
	if !ok {
		return
	}
	var req dto.RenameHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.facade.RenameHabit(c.Request.Context(), CurrentUserID(c), habitID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, habitResponse(*habit))
}

// Delete handles DELETE /api/habits/:habitId.
func (h *HabitHandler) Delete(c *gin.Context) {
	habitID, ok := parseHabitID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteHabit(c.Request.Context(), CurrentUserID(c), habitID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Finish handles POST /api/habits/:habitId/finish.
func (h *HabitHandler) Finish(c *gin.Context) {
	habitID, ok := parseHabitID(c)
	if !ok {
		return
	}

	completion, err := h.facade.FinishHabit(c.Request.Context(), CurrentUserID(c), habitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompletionResponse{
		Habit:            habitResponse(completion.Habit),
		Base:             completion.Base,
		Bonus:            completion.Bonus,
		BonusApplied:     completion.BonusApplied,
		AchievementCoins: completion.AchievementCoins,
		CoinsGranted:     completion.CoinsGranted,
		Streak:           completion.NewStreak,
		Achievements:     grantResponses(completion.Grants),
		Coins:            completion.Balance,
	})
}
