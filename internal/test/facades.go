package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// QuestFacadeStub implements the HTTP facade with overridable functions.
// Unset functions return canned successful results.
type QuestFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	LoginFn        func(context.Context, string, string) (string, *model.CheckIn, error)
	ParseFn        func(string) (int64, error)
	ProfileFn      func(context.Context, int64) (*model.User, error)
	HabitsFn       func(context.Context, int64) (*model.HabitBoard, error)
	CreateHabitFn  func(context.Context, int64, model.HabitDraft) (*model.Habit, error)
	RenameHabitFn  func(context.Context, int64, uuid.UUID, string) (*model.Habit, error)
	DeleteHabitFn  func(context.Context, int64, uuid.UUID) error
	FinishHabitFn  func(context.Context, int64, uuid.UUID) (*model.Completion, error)
	AchievementsFn func(context.Context, int64) ([]model.AchievementStatus, error)
	RewardsFn      func(context.Context, int64) ([]model.Reward, error)
	CreateRewardFn func(context.Context, int64, model.Reward) (*model.Reward, error)
	HealthFn       func(context.Context) error
}

func (s QuestFacadeStub) Register(ctx context.Context, username, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return "token", nil
}

func (s QuestFacadeStub) Login(ctx context.Context, username, password string) (string, *model.CheckIn, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return "token", &model.CheckIn{}, nil
}

func (s QuestFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

func (s QuestFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Username: "user"}, nil
}

func (s QuestFacadeStub) Habits(ctx context.Context, userID int64) (*model.HabitBoard, error) {
	if s.HabitsFn != nil {
		return s.HabitsFn(ctx, userID)
	}
	return &model.HabitBoard{}, nil
}

func (s QuestFacadeStub) CreateHabit(ctx context.Context, userID int64, draft model.HabitDraft) (*model.Habit, error) {
	if s.CreateHabitFn != nil {
		return s.CreateHabitFn(ctx, userID, draft)
	}
	return &model.Habit{ID: uuid.New(), UserID: userID, Name: draft.Name, Color: draft.Color, Difficulty: draft.Difficulty}, nil
}

func (s QuestFacadeStub) RenameHabit(ctx context.Context, userID int64, habitID uuid.UUID, name string) (*model.Habit, error) {
	if s.RenameHabitFn != nil {
		return s.RenameHabitFn(ctx, userID, habitID, name)
	}
	return &model.Habit{ID: habitID, UserID: userID, Name: name}, nil
}

func (s QuestFacadeStub) DeleteHabit(ctx context.Context, userID int64, habitID uuid.UUID) error {
	if s.DeleteHabitFn != nil {
		return s.DeleteHabitFn(ctx, userID, habitID)
	}
	return nil
}

func (s QuestFacadeStub) FinishHabit(ctx context.Context, userID int64, habitID uuid.UUID) (*model.Completion, error) {
	if s.FinishHabitFn != nil {
		return s.FinishHabitFn(ctx, userID, habitID)
	}
	return &model.Completion{Habit: model.Habit{ID: habitID, UserID: userID, IsFinished: true, Streak: 1}, NewStreak: 1}, nil
}

func (s QuestFacadeStub) Achievements(ctx context.Context, userID int64) ([]model.AchievementStatus, error) {
	if s.AchievementsFn != nil {
		return s.AchievementsFn(ctx, userID)
	}
	return nil, nil
}

func (s QuestFacadeStub) Rewards(ctx context.Context, userID int64) ([]model.Reward, error) {
	if s.RewardsFn != nil {
		return s.RewardsFn(ctx, userID)
	}
	return nil, nil
}

func (s QuestFacadeStub) CreateReward(ctx context.Context, userID int64, reward model.Reward) (*model.Reward, error) {
	if s.CreateRewardFn != nil {
		return s.CreateRewardFn(ctx, userID, reward)
	}
	reward.ID = uuid.New()
	reward.UserID = userID
	return &reward, nil
}

func (s QuestFacadeStub) HealthCheck(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// HealthCheckerStub returns Err from HealthCheck.
type HealthCheckerStub struct {
	Err error
}

func (s *HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
