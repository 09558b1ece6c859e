package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, *model.CheckIn, error)
	ParseToken(token string) (int64, error)
}

// UserFacade exposes the profile of the authenticated user.
type UserFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// HabitFacade covers habit management and progression.
type HabitFacade interface {
	Habits(ctx context.Context, userID int64) (*model.HabitBoard, error)
	CreateHabit(ctx context.Context, userID int64, draft model.HabitDraft) (*model.Habit, error)
	RenameHabit(ctx context.Context, userID int64, habitID uuid.UUID, name string) (*model.Habit, error)
	DeleteHabit(ctx context.Context, userID int64, habitID uuid.UUID) error
	FinishHabit(ctx context.Context, userID int64, habitID uuid.UUID) (*model.Completion, error)
}

type AchievementFacade interface {
	Achievements(ctx context.Context, userID int64) ([]model.AchievementStatus, error)
}

// ShopFacade manages user-defined rewards.
type ShopFacade interface {
	Rewards(ctx context.Context, userID int64) ([]model.Reward, error)
	CreateReward(ctx context.Context, userID int64, reward model.Reward) (*model.Reward, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// QuestFacade aggregates the full set of operations used across handlers.
type QuestFacade interface {
	AuthFacade
	UserFacade
	HabitFacade
	AchievementFacade
	ShopFacade
	HealthFacade
}
