package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainErrors "github.com/polkiloo/habitquest/internal/domain/errors"
	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

// AchievementGrantor awards catalog achievements at most once per user.
type AchievementGrantor struct {
	logger *slog.Logger
}

// NewAchievementGrantor constructs AchievementGrantor.
func NewAchievementGrantor(logger *slog.Logger) *AchievementGrantor {
	return &AchievementGrantor{logger: logger}
}

// Grant adds userID to the holders of kind and returns the coins awarded,
// zero when the user already held it. A missing achievement definition is
// logged and yields zero so it never blocks the caller.
func (g *AchievementGrantor) Grant(ctx context.Context, store repository.ProgressStore, kind model.AchievementKind, userID int64) (int64, error) {
	value, err := store.AddAchievementHolder(ctx, kind, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnknownAchievement) {
			g.logger.ErrorContext(ctx, "achievement definition missing",
				slog.String("kind", string(kind)),
				slog.Int64("user_id", userID),
			)
			return 0, nil
		}
		return 0, fmt.Errorf("grant achievement %s: %w", kind, err)
	}
	return value, nil
}

// GrantAll grants every kind in order and returns the total payout together
// with the achievements that were actually unlocked.
func (g *AchievementGrantor) GrantAll(ctx context.Context, store repository.ProgressStore, kinds []model.AchievementKind, userID int64) (int64, []model.Grant, error) {
	var (
		total  int64
		grants []model.Grant
	)
	for _, kind := range kinds {
		coins, err := g.Grant(ctx, store, kind, userID)
		if err != nil {
			return 0, nil, err
		}
		if coins > 0 {
			total += coins
			grants = append(grants, model.Grant{Kind: kind, Coins: coins})
		}
	}
	return total, grants, nil
}

// AchievementUseCase lists achievements for presentation.
type AchievementUseCase struct {
	achievements repository.AchievementRepository
}

// NewAchievementUseCase constructs AchievementUseCase.
func NewAchievementUseCase(achievements repository.AchievementRepository) *AchievementUseCase {
	return &AchievementUseCase{achievements: achievements}
}

// List returns every achievement flagged with whether userID unlocked it.
func (u *AchievementUseCase) List(ctx context.Context, userID int64) ([]model.AchievementStatus, error) {
	items, err := u.achievements.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]model.AchievementStatus, 0, len(items))
	for _, a := range items {
		result = append(result, model.AchievementStatus{Achievement: a, Unlocked: a.HeldBy(userID)})
	}
	return result, nil
}
