package dto

import "time"

// UserResponse is the public profile of the authenticated user.
type UserResponse struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Coins          int64      `json:"coins"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
	CreatedAt      time.Time  `json:"createdAt"`
}
