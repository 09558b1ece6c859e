package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
	"github.com/polkiloo/habitquest/internal/pkg/clock"
)

// ProgressRecorder receives the outcome of committed progression sessions.
type ProgressRecorder interface {
	RecordCompletion(difficulty string, coins int64)
	RecordAchievement(kind string, coins int64)
	RecordRollover()
}

// ProgressionUseCase runs progression sessions: every session locks the user,
// reconciles the day boundary, optionally completes a habit and saves the
// user once, all inside one transaction.
type ProgressionUseCase struct {
	tx          repository.ProgressTransactor
	reconciler  *DayBoundaryReconciler
	completions *CompletionProcessor
	clock       clock.Clock
	recorder    ProgressRecorder
	logger      *slog.Logger
}

// NewProgressionUseCase constructs ProgressionUseCase.
func NewProgressionUseCase(
	tx repository.ProgressTransactor,
	reconciler *DayBoundaryReconciler,
	completions *CompletionProcessor,
	clk clock.Clock,
	recorder ProgressRecorder,
	logger *slog.Logger,
) *ProgressionUseCase {
	return &ProgressionUseCase{
		tx:          tx,
		reconciler:  reconciler,
		completions: completions,
		clock:       clk,
		recorder:    recorder,
		logger:      logger,
	}
}

type sessionStep func(ctx context.Context, store repository.ProgressStore, user *model.User, now time.Time) (changed bool, err error)

// session returns the user as persisted at commit together with the rollover
// that was applied.
func (u *ProgressionUseCase) session(ctx context.Context, userID int64, step sessionStep) (*model.User, *model.Rollover, error) {
	now := u.clock.Now()

	var (
		user     *model.User
		rollover *model.Rollover
	)
	err := u.tx.WithinProgress(ctx, func(ctx context.Context, store repository.ProgressStore) error {
		locked, err := store.LockUser(ctx, userID)
		if err != nil {
			return err
		}

		applied, err := u.reconciler.Reconcile(ctx, store, locked, now)
		if err != nil {
			return err
		}

		changed := applied.Changed
		if step != nil {
			stepChanged, err := step(ctx, store, locked, now)
			if err != nil {
				return err
			}
			changed = changed || stepChanged
		}

		if changed {
			if err := store.SaveUser(ctx, locked); err != nil {
				return err
			}
		}

		user = locked
		rollover = applied
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if rollover.DaysDiff > 0 {
		u.recorder.RecordRollover()
	}
	u.recordGrants(rollover.Grants)
	return user, rollover, nil
}

// Habits returns the reconciled habits of userID.
func (u *ProgressionUseCase) Habits(ctx context.Context, userID int64) (*model.HabitBoard, error) {
	user, rollover, err := u.session(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return &model.HabitBoard{
		Habits:       rollover.Habits,
		CoinsGranted: rollover.CoinsGranted,
		Coins:        user.Coins,
	}, nil
}

// FinishHabit completes habitID for userID after reconciling the day.
func (u *ProgressionUseCase) FinishHabit(ctx context.Context, userID int64, habitID uuid.UUID) (*model.Completion, error) {
	var completion *model.Completion
	user, _, err := u.session(ctx, userID, func(ctx context.Context, store repository.ProgressStore, user *model.User, now time.Time) (bool, error) {
		c, err := u.completions.Finish(ctx, store, user, habitID, now)
		if err != nil {
			return false, err
		}
		completion = c
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	completion.Balance = user.Coins
	u.recorder.RecordCompletion(string(completion.Habit.Difficulty), completion.Base+completion.Bonus)
	u.recordGrants(completion.Grants)

	u.logger.InfoContext(ctx, "habit finished",
		slog.Int64("user_id", userID),
		slog.String("habit_id", habitID.String()),
		slog.Int("streak", completion.NewStreak),
		slog.Int64("coins_granted", completion.CoinsGranted),
	)
	return completion, nil
}

// CheckIn reconciles the day boundary for userID, typically at login.
func (u *ProgressionUseCase) CheckIn(ctx context.Context, userID int64) (*model.CheckIn, error) {
	_, rollover, err := u.session(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	return &model.CheckIn{
		CoinsGranted: rollover.CoinsGranted,
		DaysDiff:     rollover.DaysDiff,
		Grants:       rollover.Grants,
	}, nil
}

func (u *ProgressionUseCase) recordGrants(grants []model.Grant) {
	for _, g := range grants {
		u.recorder.RecordAchievement(string(g.Kind), g.Coins)
	}
}
