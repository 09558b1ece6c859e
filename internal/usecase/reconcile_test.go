package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
	testhelpers "github.com/polkiloo/habitquest/internal/test"
)

var day = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestPlanRolloverFirstActivity(t *testing.T) {
	habits := []model.Habit{{Streak: 4, IsFinished: true}}
	plan := PlanRollover(day, nil, habits)
	if !plan.Initialize || plan.Apply() || plan.DaysDiff != 0 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.Habits[0].Streak != 4 || !plan.Habits[0].IsFinished {
		t.Fatalf("habits must not change on first activity: %+v", plan.Habits)
	}
}

func TestPlanRolloverSameDay(t *testing.T) {
	habits := []model.Habit{{Streak: 9, IsFinished: false}}
	plan := PlanRollover(day.Add(10*time.Hour), timePtr(day), habits)
	if plan.Apply() || plan.StreakBroken {
		t.Fatalf("same day must be a no-op: %+v", plan)
	}
	if plan.Habits[0].Streak != 9 {
		t.Fatalf("habit changed: %+v", plan.Habits[0])
	}
}

func TestPlanRolloverOneDay(t *testing.T) {
	habits := []model.Habit{
		{Name: "done", Streak: 3, IsFinished: true},
		{Name: "missed", Streak: 2, IsFinished: false},
	}
	now := day.AddDate(0, 0, 1)
	plan := PlanRollover(now, timePtr(day), habits)

	if !plan.Apply() || plan.DaysDiff != 1 || plan.StreakBroken {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if got := plan.Habits[0]; got.Streak != 3 || got.IsFinished {
		t.Fatalf("finished habit must keep streak and reopen: %+v", got)
	}
	if got := plan.Habits[1]; got.Streak != 0 || got.IsFinished {
		t.Fatalf("missed habit must reset: %+v", got)
	}
	if !plan.Habits[0].UpdatedAt.Equal(now) {
		t.Fatalf("updated_at not set: %v", plan.Habits[0].UpdatedAt)
	}
	if habits[1].Streak != 2 || !habits[0].IsFinished {
		t.Fatal("input habits must not be modified")
	}
}

func TestPlanRolloverTwoOrMoreDays(t *testing.T) {
	habits := []model.Habit{{Streak: 5, IsFinished: true}, {Streak: 1}}
	for _, days := range []int{2, 3, 30} {
		plan := PlanRollover(day.AddDate(0, 0, days), timePtr(day), habits)
		if plan.DaysDiff != days {
			t.Fatalf("expected %d days, got %d", days, plan.DaysDiff)
		}
		for _, h := range plan.Habits {
			if h.Streak != 0 || h.IsFinished {
				t.Fatalf("all habits must reset after %d days: %+v", days, h)
			}
		}
	}
}

func TestPlanRolloverStreakBrokenCheckedBeforeReset(t *testing.T) {
	cases := []struct {
		name   string
		habits []model.Habit
		broken bool
	}{
		{"long unfinished streak", []model.Habit{{Streak: 10}}, true},
		{"exactly seven", []model.Habit{{Streak: 7}}, true},
		{"six is not long", []model.Habit{{Streak: 6}}, false},
		{"finished long streak", []model.Habit{{Streak: 12, IsFinished: true}}, false},
		{"one of many", []model.Habit{{Streak: 1}, {Streak: 8}, {Streak: 9}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := PlanRollover(day.AddDate(0, 0, 1), timePtr(day), tc.habits)
			if plan.StreakBroken != tc.broken {
				t.Fatalf("expected broken=%v, got %v", tc.broken, plan.StreakBroken)
			}
		})
	}
}

func TestPlanRolloverClockBehindLastActive(t *testing.T) {
	plan := PlanRollover(day, timePtr(day.AddDate(0, 0, 2)), []model.Habit{{Streak: 3}})
	if plan.Apply() || plan.Habits[0].Streak != 3 {
		t.Fatalf("negative difference must be treated as zero: %+v", plan)
	}
}

func reconcileIn(t *testing.T, store *testhelpers.MemoryProgressStore, user *model.User, now time.Time) (*model.Rollover, error) {
	t.Helper()
	reconciler := NewDayBoundaryReconciler(NewAchievementGrantor(discardLogger()), discardLogger())
	var result *model.Rollover
	err := store.WithinProgress(context.Background(), func(ctx context.Context, s repository.ProgressStore) error {
		var err error
		result, err = reconciler.Reconcile(ctx, s, user, now)
		return err
	})
	return result, err
}

func TestReconcileNullLastActiveOnlyInitializes(t *testing.T) {
	store := testhelpers.NewMemoryProgressStore()
	store.PutUser(model.User{ID: 1, Coins: 10})
	h := store.PutHabit(model.Habit{UserID: 1, Streak: 9})

	user := &model.User{ID: 1, Coins: 10}
	rollover, err := reconcileIn(t, store, user, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rollover.Changed || rollover.CoinsGranted != 0 || len(rollover.Grants) != 0 {
		t.Fatalf("unexpected rollover: %+v", rollover)
	}
	if user.LastActiveDate == nil || !user.LastActiveDate.Equal(day) || user.Coins != 10 {
		t.Fatalf("user not initialized: %+v", user)
	}
	if got := store.Habit(h.ID); got.Streak != 9 {
		t.Fatalf("habit must not change: %+v", got)
	}
}

func TestReconcileSameDayIsNoop(t *testing.T) {
	store := testhelpers.NewMemoryProgressStore()
	h := store.PutHabit(model.Habit{UserID: 1, Streak: 9})

	user := &model.User{ID: 1, Coins: 5, LastActiveDate: timePtr(day)}
	rollover, err := reconcileIn(t, store, user, day.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rollover.Changed || rollover.DaysDiff != 0 {
		t.Fatalf("expected no-op: %+v", rollover)
	}
	if !user.LastActiveDate.Equal(day) || user.Coins != 5 {
		t.Fatalf("user mutated: %+v", user)
	}
	if len(rollover.Habits) != 1 || rollover.Habits[0].ID != h.ID {
		t.Fatalf("habits must still be returned: %+v", rollover.Habits)
	}
}

func TestReconcileBrokenStreakGrantsOnce(t *testing.T) {
	store := testhelpers.NewMemoryProgressStore()
	h := store.PutHabit(model.Habit{UserID: 1, Streak: 10})

	now := day.AddDate(0, 0, 1)
	user := &model.User{ID: 1, LastActiveDate: timePtr(day)}
	rollover, err := reconcileIn(t, store, user, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rollover.CoinsGranted != 25 || len(rollover.Grants) != 1 || rollover.Grants[0].Kind != model.AchievementStreakBroken {
		t.Fatalf("expected streak broken grant, got %+v", rollover)
	}
	if user.Coins != 25 || !user.LastActiveDate.Equal(now) {
		t.Fatalf("user not updated: %+v", user)
	}
	if got := store.Habit(h.ID); got.Streak != 0 || got.IsFinished {
		t.Fatalf("habit not reset: %+v", got)
	}

	store.PutHabit(model.Habit{ID: h.ID, UserID: 1, Streak: 8})
	rollover, err = reconcileIn(t, store, user, now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rollover.CoinsGranted != 0 || len(rollover.Grants) != 0 {
		t.Fatalf("achievement must be granted only once: %+v", rollover)
	}
	if holders := store.Achievement(model.AchievementStreakBroken).UsersWhoFinished; len(holders) != 1 || holders[0] != 1 {
		t.Fatalf("unexpected holders: %v", holders)
	}
}

func TestReconcileMissedDaysResetFinishedHabits(t *testing.T) {
	store := testhelpers.NewMemoryProgressStore()
	h := store.PutHabit(model.Habit{UserID: 1, Streak: 5, IsFinished: true})

	user := &model.User{ID: 1, LastActiveDate: timePtr(day)}
	rollover, err := reconcileIn(t, store, user, day.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rollover.DaysDiff != 3 || rollover.CoinsGranted != 0 {
		t.Fatalf("unexpected rollover: %+v", rollover)
	}
	if got := store.Habit(h.ID); got.Streak != 0 || got.IsFinished {
		t.Fatalf("finished habit must reset after missed days: %+v", got)
	}
}

func TestReconcileLeavesOtherUsersAlone(t *testing.T) {
	store := testhelpers.NewMemoryProgressStore()
	mine := store.PutHabit(model.Habit{UserID: 1, Streak: 3})
	theirs := store.PutHabit(model.Habit{UserID: 2, Streak: 12, IsFinished: true})

	user := &model.User{ID: 1, LastActiveDate: timePtr(day)}
	rollover, err := reconcileIn(t, store, user, day.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rollover.Habits) != 1 || rollover.Habits[0].ID != mine.ID {
		t.Fatalf("unexpected habits: %+v", rollover.Habits)
	}
	if got := store.Habit(theirs.ID); got.Streak != 12 || !got.IsFinished {
		t.Fatalf("other user's habit changed: %+v", got)
	}
}

func TestReconcileErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, method := range []string{"ListOwnerHabits", "SaveOwnerHabits", "AddAchievementHolder"} {
		t.Run(method, func(t *testing.T) {
			store := testhelpers.NewMemoryProgressStore()
			store.PutHabit(model.Habit{UserID: 1, Streak: 10})
			store.Errs = map[string]error{method: boom}

			user := &model.User{ID: 1, LastActiveDate: timePtr(day)}
			if _, err := reconcileIn(t, store, user, day.AddDate(0, 0, 1)); !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}
			if user.Coins != 0 || !user.LastActiveDate.Equal(day) {
				t.Fatalf("user must not change on failure: %+v", user)
			}
		})
	}
}
