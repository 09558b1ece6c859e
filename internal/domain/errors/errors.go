package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyCompleted   = errors.New("habit already completed today")
	ErrConflict           = errors.New("concurrent update conflict")
	ErrHabitLimitReached  = errors.New("habit limit reached")

	// ErrUnknownAchievement signals a missing achievement definition. It is a
	// deployment problem and never reaches API clients.
	ErrUnknownAchievement = errors.New("unknown achievement")
)
