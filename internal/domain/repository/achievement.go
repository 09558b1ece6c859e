package repository

import (
	"context"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// AchievementRepository exposes the seeded achievement catalog.
type AchievementRepository interface {
	List(ctx context.Context) ([]model.Achievement, error)
}
