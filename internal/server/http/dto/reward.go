package dto

import "time"

// CreateRewardRequest describes a reward added to the user's shop.
type CreateRewardRequest struct {
	Title       string `json:"title" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,min=5,max=150"`
	Price       int64  `json:"price" binding:"gte=0"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
}

type RewardResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
