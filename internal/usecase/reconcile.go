package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
	"github.com/polkiloo/habitquest/internal/pkg/clock"
)

// RolloverPlan describes how a user's habits change when calendar days pass.
type RolloverPlan struct {
	// Initialize is set for users that were never reconciled before.
	Initialize bool
	DaysDiff   int
	// StreakBroken reports that an unfinished habit with a long streak is
	// about to lose it. It is evaluated before any reset.
	StreakBroken bool
	Habits       []model.Habit
}

// Apply reports whether the plan mutates habits.
func (p RolloverPlan) Apply() bool {
	return !p.Initialize && p.DaysDiff > 0
}

// PlanRollover computes the day boundary transition for habits without
// touching persistence. The input slice is never modified.
func PlanRollover(now time.Time, lastActive *time.Time, habits []model.Habit) RolloverPlan {
	if lastActive == nil {
		return RolloverPlan{Initialize: true, Habits: habits}
	}

	days := clock.DaysBetween(*lastActive, now)
	if days == 0 {
		return RolloverPlan{Habits: habits}
	}

	plan := RolloverPlan{DaysDiff: days, Habits: slices.Clone(habits)}
	for _, h := range habits {
		if h.Streak >= model.LongStreak && !h.IsFinished {
			plan.StreakBroken = true
			break
		}
	}

	for i := range plan.Habits {
		h := &plan.Habits[i]
		if !h.IsFinished || days >= 2 {
			h.Streak = 0
		}
		h.IsFinished = false
		h.UpdatedAt = now
	}
	return plan
}

// DayBoundaryReconciler applies rollover plans to a locked user.
type DayBoundaryReconciler struct {
	grantor *AchievementGrantor
	logger  *slog.Logger
}

// NewDayBoundaryReconciler constructs DayBoundaryReconciler.
func NewDayBoundaryReconciler(grantor *AchievementGrantor, logger *slog.Logger) *DayBoundaryReconciler {
	return &DayBoundaryReconciler{grantor: grantor, logger: logger}
}

// Reconcile brings the user's habits up to date with now. Coins and
// lastActiveDate are updated on user in memory only; saving the user is left
// to the caller so a session writes it once.
func (r *DayBoundaryReconciler) Reconcile(ctx context.Context, store repository.ProgressStore, user *model.User, now time.Time) (*model.Rollover, error) {
	owner := model.OwnerOf(user.ID)
	habits, err := store.ListOwnerHabits(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	plan := PlanRollover(now, user.LastActiveDate, habits)
	result := &model.Rollover{Habits: plan.Habits, DaysDiff: plan.DaysDiff}

	if plan.Initialize {
		user.LastActiveDate = &now
		result.Changed = true
		return result, nil
	}
	if !plan.Apply() {
		return result, nil
	}

	if plan.StreakBroken {
		coins, grants, err := r.grantor.GrantAll(ctx, store, []model.AchievementKind{model.AchievementStreakBroken}, user.ID)
		if err != nil {
			return nil, err
		}
		result.CoinsGranted = coins
		result.Grants = grants
	}

	if err := store.SaveOwnerHabits(ctx, owner, plan.Habits); err != nil {
		return nil, fmt.Errorf("save habits: %w", err)
	}

	user.LastActiveDate = &now
	user.Coins += result.CoinsGranted
	result.Changed = true

	r.logger.InfoContext(ctx, "day rollover applied",
		slog.Int64("user_id", user.ID),
		slog.Int("days_diff", plan.DaysDiff),
		slog.Int("habits", len(plan.Habits)),
		slog.Int64("coins_granted", result.CoinsGranted),
	)
	return result, nil
}
