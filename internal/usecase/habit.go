package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/config"
	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

// HabitUseCase manages habit definitions owned by users.
type HabitUseCase struct {
	habits    repository.HabitRepository
	maxHabits int
}

// NewHabitUseCase constructs HabitUseCase.
func NewHabitUseCase(habits repository.HabitRepository, cfg *config.Config) *HabitUseCase {
	return &HabitUseCase{habits: habits, maxHabits: cfg.MaxHabits}
}

// Create adds a habit for userID unless the per-user limit is reached.
func (u *HabitUseCase) Create(ctx context.Context, userID int64, draft model.HabitDraft) (*model.Habit, error) {
	draft, err := NormalizeHabitDraft(draft)
	if err != nil {
		return nil, err
	}
	return u.habits.Create(ctx, model.OwnerOf(userID), draft, u.maxHabits)
}

// Rename changes the name of a habit owned by userID.
func (u *HabitUseCase) Rename(ctx context.Context, userID int64, habitID uuid.UUID, name string) (*model.Habit, error) {
	name = strings.TrimSpace(name)
	if err := validateHabitName(name); err != nil {
		return nil, err
	}
	if _, err := u.owned(ctx, userID, habitID); err != nil {
		return nil, err
	}
	return u.habits.Rename(ctx, habitID, name)
}

// Delete removes a habit owned by userID.
func (u *HabitUseCase) Delete(ctx context.Context, userID int64, habitID uuid.UUID) error {
	if _, err := u.owned(ctx, userID, habitID); err != nil {
		return err
	}
	return u.habits.Delete(ctx, habitID)
}

func (u *HabitUseCase) owned(ctx context.Context, userID int64, habitID uuid.UUID) (*model.Habit, error) {
	habit, err := u.habits.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.OwnedBy(userID) {
		return nil, domainErrors.ErrForbidden
	}
	return habit, nil
}
