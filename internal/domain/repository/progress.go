package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// ProgressStore is the view of persistence available inside a progression
// session. Every call runs in the session's transaction.
type ProgressStore interface {
	// LockUser loads the user and holds an exclusive lock on it until the
	// session ends.
	LockUser(ctx context.Context, userID int64) (*model.User, error)
	SaveUser(ctx context.Context, user *model.User) error

	// Bulk operations are scoped to a single owner.
	ListOwnerHabits(ctx context.Context, owner model.Owner) ([]model.Habit, error)
	SaveOwnerHabits(ctx context.Context, owner model.Owner, habits []model.Habit) error

	GetHabit(ctx context.Context, id uuid.UUID) (*model.Habit, error)
	// MarkHabitFinished persists a completion only if the stored habit is
	// still unfinished, otherwise it returns errors.ErrAlreadyCompleted.
	MarkHabitFinished(ctx context.Context, owner model.Owner, habit *model.Habit) error

	// AddAchievementHolder atomically adds userID to the holders of kind and
	// returns the achievement value, or zero when userID already held it.
	// Unknown kinds yield errors.ErrUnknownAchievement.
	AddAchievementHolder(ctx context.Context, kind model.AchievementKind, userID int64) (int64, error)
}

// ProgressTransactor runs progression sessions as a single unit of work.
// When fn returns an error nothing it wrote is persisted.
type ProgressTransactor interface {
	WithinProgress(ctx context.Context, fn func(ctx context.Context, store ProgressStore) error) error
}
