package model

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a user-defined item that can be bought with coins.
type Reward struct {
	ID          uuid.UUID
	UserID      int64
	Title       string
	Description string
	Price       int64
	ImageURL    string
	CreatedAt   time.Time
}
