package dto

import "time"

// CreateHabitRequest describes a new habit.
type CreateHabitRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Color      string `json:"color" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,difficulty"`
}

// RenameHabitRequest carries the new habit name.
type RenameHabitRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type HabitResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Color            string     `json:"color"`
	Difficulty       string     `json:"difficulty"`
	Streak           int        `json:"streak"`
	IsFinished       bool       `json:"isFinished"`
	LastDateFinished *time.Time `json:"lastDateFinished"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// HabitListResponse is the reconciled habit list with the coins the
// reconciliation granted.
type HabitListResponse struct {
	Habits       []HabitResponse `json:"habits"`
	CoinsGranted int64           `json:"coinsGranted"`
	Coins        int64           `json:"coins"`
}

// CompletionResponse is the payout breakdown of finishing a habit.
type CompletionResponse struct {
	Habit            HabitResponse   `json:"habit"`
	Base             int64           `json:"base"`
	Bonus            int64           `json:"bonus"`
	BonusApplied     bool            `json:"bonusApplied"`
	AchievementCoins int64           `json:"achievementCoins"`
	CoinsGranted     int64           `json:"coinsGranted"`
	Streak           int             `json:"streak"`
	Achievements     []GrantResponse `json:"achievements"`
	Coins            int64           `json:"coins"`
}
