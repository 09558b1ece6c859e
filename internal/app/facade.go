package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/usecase"
)

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// QuestFacade exposes every use case the HTTP layer needs behind one value.
type QuestFacade struct {
	auth         *usecase.AuthUseCase
	habits       *usecase.HabitUseCase
	progression  *usecase.ProgressionUseCase
	achievements *usecase.AchievementUseCase
	rewards      *usecase.RewardUseCase
	health       HealthChecker
}

type facadeParams struct {
	fx.In

	Auth         *usecase.AuthUseCase
	Habits       *usecase.HabitUseCase
	Progression  *usecase.ProgressionUseCase
	Achievements *usecase.AchievementUseCase
	Rewards      *usecase.RewardUseCase
	Health       HealthChecker
}

// NewQuestFacade constructs QuestFacade.
func NewQuestFacade(p facadeParams) *QuestFacade {
	return &QuestFacade{
		auth:         p.Auth,
		habits:       p.Habits,
		progression:  p.Progression,
		achievements: p.Achievements,
		rewards:      p.Rewards,
		health:       p.Health,
	}
}

func (f *QuestFacade) Register(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, username, password)
	return token, err
}

// Login authenticates the user and reconciles their habits with today.
func (f *QuestFacade) Login(ctx context.Context, username, password string) (string, *model.CheckIn, error) {
	user, token, err := f.auth.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	checkIn, err := f.progression.CheckIn(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, checkIn, nil
}

func (f *QuestFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *QuestFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *QuestFacade) Habits(ctx context.Context, userID int64) (*model.HabitBoard, error) {
	return f.progression.Habits(ctx, userID)
}

func (f *QuestFacade) CreateHabit(ctx context.Context, userID int64, draft model.HabitDraft) (*model.Habit, error) {
	return f.habits.Create(ctx, userID, draft)
}

func (f *QuestFacade) RenameHabit(ctx context.Context, userID int64, habitID uuid.UUID, name string) (*model.Habit, error) {
	return f.habits.Rename(ctx, userID, habitID, name)
}

func (f *QuestFacade) DeleteHabit(ctx context.Context, userID int64, habitID uuid.UUID) error {
	return f.habits.Delete(ctx, userID, habitID)
}

func (f *QuestFacade) FinishHabit(ctx context.Context, userID int64, habitID uuid.UUID) (*model.Completion, error) {
	return f.progression.FinishHabit(ctx, userID, habitID)
}

func (f *QuestFacade) Achievements(ctx context.Context, userID int64) ([]model.AchievementStatus, error) {
	return f.achievements.List(ctx, userID)
}

func (f *QuestFacade) Rewards(ctx context.Context, userID int64) ([]model.Reward, error) {
	return f.rewards.List(ctx, userID)
}

func (f *QuestFacade) CreateReward(ctx context.Context, userID int64, reward model.Reward) (*model.Reward, error) {
	return f.rewards.Create(ctx, userID, reward)
}

func (f *QuestFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
