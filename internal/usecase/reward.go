package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/domain/repository"
)

// RewardUseCase manages the rewards users define for their shop.
type RewardUseCase struct {
	rewards repository.RewardRepository
}

// NewRewardUseCase constructs RewardUseCase.
func NewRewardUseCase(rewards repository.RewardRepository) *RewardUseCase {
	return &RewardUseCase{rewards: rewards}
}

// Create stores a new reward for userID.
func (u *RewardUseCase) Create(ctx context.Context, userID int64, reward model.Reward) (*model.Reward, error) {
	reward.Title = strings.TrimSpace(reward.Title)
	reward.Description = strings.TrimSpace(reward.Description)
	reward.ImageURL = strings.TrimSpace(reward.ImageURL)
	if err := ValidateReward(&reward); err != nil {
		return nil, err
	}

	reward.ID = uuid.New()
	reward.UserID = userID
	if err := u.rewards.Create(ctx, &reward); err != nil {
		return nil, err
	}
	return &reward, nil
}

// List returns rewards of userID, newest first.
func (u *RewardUseCase) List(ctx context.Context, userID int64) ([]model.Reward, error) {
	return u.rewards.ListByUser(ctx, userID)
}
