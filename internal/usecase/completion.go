package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

type payoutRate struct {
	base      int64
	perStreak int64
}

var payoutTable = map[model.Difficulty]payoutRate{
	model.DifficultyEasy:   {base: 50, perStreak: 2},
	model.DifficultyMedium: {base: 100, perStreak: 5},
	model.DifficultyHard:   {base: 200, perStreak: 10},
}

// Payout returns the base coins and the streak bonus for completing a habit
// of difficulty d whose streak before completion was streak. Unknown
// difficulties pay nothing.
func Payout(d model.Difficulty, streak int) (base, bonus int64) {
	rate := payoutTable[d]
	return rate.base, rate.perStreak * int64(streak)
}

// EvaluateMilestones lists the achievements earned by a completion that moved
// a streak from before to after. The first completion achievement is always
// attempted; the grantor keeps it one-time.
func EvaluateMilestones(before, after int) []model.AchievementKind {
	kinds := []model.AchievementKind{model.AchievementFirstCompletion}
	if after <= before {
		return kinds
	}
	if kind, ok := model.MilestoneAchievement(after); ok {
		kinds = append(kinds, kind)
	}
	return kinds
}

// CompletionProcessor marks habits finished for the day and pays out coins.
type CompletionProcessor struct {
	grantor *AchievementGrantor
}

// NewCompletionProcessor constructs CompletionProcessor.
func NewCompletionProcessor(grantor *AchievementGrantor) *CompletionProcessor {
	return &CompletionProcessor{grantor: grantor}
}

// Finish completes habitID on behalf of user. The payout is added to
// user.Coins in memory; the habit is persisted immediately with a guard that
// rejects a second completion of the same day.
func (p *CompletionProcessor) Finish(ctx context.Context, store repository.ProgressStore, user *model.User, habitID uuid.UUID, now time.Time) (*model.Completion, error) {
	habit, err := store.GetHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if !habit.OwnedBy(user.ID) {
		return nil, domainErrors.ErrForbidden
	}
	if habit.IsFinished {
		return nil, domainErrors.ErrAlreadyCompleted
	}

	before := habit.Streak
	base, bonus := Payout(habit.Difficulty, before)

	finished := *habit
	finished.IsFinished = true
	finished.LastDateFinished = &now
	finished.Streak = before + 1
	finished.UpdatedAt = now

	if err := store.MarkHabitFinished(ctx, model.OwnerOf(user.ID), &finished); err != nil {
		return nil, err
	}

	achievementCoins, grants, err := p.grantor.GrantAll(ctx, store, EvaluateMilestones(before, finished.Streak), user.ID)
	if err != nil {
		return nil, fmt.Errorf("grant milestones: %w", err)
	}

	total := base + bonus + achievementCoins
	user.Coins += total

	return &model.Completion{
		Habit:            finished,
		Base:             base,
		Bonus:            bonus,
		AchievementCoins: achievementCoins,
		Grants:           grants,
		CoinsGranted:     total,
		NewStreak:        finished.Streak,
		BonusApplied:     bonus > 0,
	}, nil
}
