package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// HabitRepository covers habit CRUD outside of progression sessions.
type HabitRepository interface {
	// Create inserts a habit unless the owner already has limit habits, in
	// which case it returns errors.ErrHabitLimitReached.
	Create(ctx context.Context, owner model.Owner, draft model.HabitDraft, limit int) (*model.Habit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Habit, error)
	ListByOwner(ctx context.Context, owner model.Owner) ([]model.Habit, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*model.Habit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
