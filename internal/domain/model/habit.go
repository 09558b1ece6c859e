package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty determines how many coins a habit pays out.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Habit is a daily activity tracked by its owner.
type Habit struct {
	ID               uuid.UUID
	UserID           int64
	Name             string
	Color            string
	Difficulty       Difficulty
	Streak           int
	IsFinished       bool
	LastDateFinished *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether the habit belongs to the given user.
func (h *Habit) OwnedBy(userID int64) bool {
	return h.UserID == userID
}

// HabitDraft carries attributes of a habit being created.
type HabitDraft struct {
	Name       string
	Color      string
	Difficulty Difficulty
}
