package repository

import (
	"context"

	"github.com/polkiloo/habitquest/internal/domain/model"
)

// RewardRepository stores the rewards users define for themselves.
type RewardRepository interface {
	Create(ctx context.Context, reward *model.Reward) error
	ListByUser(ctx context.Context, userID int64) ([]model.Reward, error)
}
