package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/config"
	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	testhelpers "github.com/polkiloo/habitquest/internal/test"
	"github.com/polkiloo/habitquest/internal/usecase"
)

type facadeFixture struct {
	facade   *QuestFacade
	users    *testhelpers.UserRepositoryStub
	habits   *testhelpers.HabitRepositoryStub
	progress *testhelpers.MemoryProgressStore
	rewards  *testhelpers.RewardRepositoryStub
	health   *testhelpers.HealthCheckerStub
	clock    *testhelpers.ClockStub
}

var fixtureDay = time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

func newFacadeFixture() *facadeFixture {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	f := &facadeFixture{
		users:    testhelpers.NewUserRepositoryStub(),
		habits:   testhelpers.NewHabitRepositoryStub(),
		progress: testhelpers.NewMemoryProgressStore(),
		rewards:  &testhelpers.RewardRepositoryStub{},
		health:   &testhelpers.HealthCheckerStub{},
		clock:    testhelpers.NewClockStub(fixtureDay),
	}

	grantor := usecase.NewAchievementGrantor(logger)
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	progression := usecase.NewProgressionUseCase(
		f.progress,
		usecase.NewDayBoundaryReconciler(grantor, logger),
		usecase.NewCompletionProcessor(grantor),
		f.clock,
		&testhelpers.ProgressRecorderStub{},
		logger,
	)
	achievements := &testhelpers.AchievementRepositoryStub{Items: []model.Achievement{
		{Kind: model.AchievementFirstCompletion, UsersWhoFinished: []int64{1}},
		{Kind: model.AchievementStreak3},
	}}

	f.facade = NewQuestFacade(facadeParams{
		Auth:         usecase.NewAuthUseCase(f.users, testhelpers.HasherStub{}, strategy),
		Habits:       usecase.NewHabitUseCase(f.habits, &config.Config{MaxHabits: 2}),
		Progression:  progression,
		Achievements: usecase.NewAchievementUseCase(achievements),
		Rewards:      usecase.NewRewardUseCase(f.rewards),
		Health:       f.health,
	})
	return f
}

func TestQuestFacadeAuth(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	token, err := f.facade.Register(ctx, "alice", "secret")
	if err != nil || token != "token" {
		t.Fatalf("unexpected register result %q err=%v", token, err)
	}

	if _, _, err := f.facade.Login(ctx, "alice", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	lastActive := fixtureDay
	f.progress.PutUser(model.User{ID: 1, LastActiveDate: &lastActive})
	f.progress.PutHabit(model.Habit{UserID: 1, Streak: 8})
	f.clock.Advance(48 * time.Hour)

	token, checkIn, err := f.facade.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token" || checkIn.DaysDiff != 2 || checkIn.CoinsGranted != 25 {
		t.Fatalf("unexpected login result %q %+v", token, checkIn)
	}

	id, err := f.facade.ParseToken("anything")
	if err != nil || id != 99 {
		t.Fatalf("expected id 99, got %d err=%v", id, err)
	}

	profile, err := f.facade.Profile(ctx, 1)
	if err != nil || profile.Username != "alice" {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}
}

func TestQuestFacadeLoginCheckInFailure(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	if _, err := f.facade.Register(ctx, "bob", "secret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := f.facade.Login(ctx, "bob", "secret"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected check-in error for user missing from progress store, got %v", err)
	}
}

func TestQuestFacadeHabits(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	created, err := f.facade.CreateHabit(ctx, 1, model.HabitDraft{Name: "Read", Color: "#fff", Difficulty: model.DifficultyEasy})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	renamed, err := f.facade.RenameHabit(ctx, 1, created.ID, "Read more")
	if err != nil || renamed.Name != "Read more" {
		t.Fatalf("unexpected rename %+v err=%v", renamed, err)
	}
	if err := f.facade.DeleteHabit(ctx, 2, created.ID); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := f.facade.DeleteHabit(ctx, 1, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	lastActive := fixtureDay
	f.progress.PutUser(model.User{ID: 1, LastActiveDate: &lastActive})
	habit := f.progress.PutHabit(model.Habit{UserID: 1, Difficulty: model.DifficultyMedium})

	completion, err := f.facade.FinishHabit(ctx, 1, habit.ID)
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if completion.CoinsGranted != 200 || completion.Balance != 200 {
		t.Fatalf("unexpected completion %+v", completion)
	}
	if _, err := f.facade.FinishHabit(ctx, 1, uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	board, err := f.facade.Habits(ctx, 1)
	if err != nil || len(board.Habits) != 1 || !board.Habits[0].IsFinished || board.Coins != 200 {
		t.Fatalf("unexpected board %+v err=%v", board, err)
	}
}

func TestQuestFacadeAchievementsAndShop(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	statuses, err := f.facade.Achievements(ctx, 1)
	if err != nil || len(statuses) != 2 || !statuses[0].Unlocked || statuses[1].Unlocked {
		t.Fatalf("unexpected statuses %+v err=%v", statuses, err)
	}

	reward, err := f.facade.CreateReward(ctx, 1, model.Reward{Title: "Cake", Price: 30, ImageURL: "https://x.io/c.png"})
	if err != nil {
		t.Fatalf("create reward failed: %v", err)
	}
	list, err := f.facade.Rewards(ctx, 1)
	if err != nil || len(list) != 1 || list[0].ID != reward.ID {
		t.Fatalf("unexpected rewards %+v err=%v", list, err)
	}
}

func TestQuestFacadeHealthCheck(t *testing.T) {
	f := newFacadeFixture()
	if err := f.facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f.health.Err = errors.New("db down")
	if err := f.facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check error")
	}
}
