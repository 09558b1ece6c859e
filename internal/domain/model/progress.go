package model

// Grant is an achievement unlocked during a progression session.
type Grant struct {
	Kind  AchievementKind
	Coins int64
}

// Rollover is the outcome of reconciling a user's habits with the current day.
type Rollover struct {
	Habits       []Habit
	CoinsGranted int64
	Grants       []Grant
	DaysDiff     int
	// Changed is false when the user was already reconciled for today.
	Changed bool
}

// Completion is the payout breakdown of finishing a habit.
type Completion struct {
	Habit            Habit
	Base             int64
	Bonus            int64
	AchievementCoins int64
	Grants           []Grant
	CoinsGranted     int64
	NewStreak        int
	BonusApplied     bool
	// Balance is the user's coin balance after the session.
	Balance int64
}

// HabitBoard is the reconciled habit list returned to the owner.
type HabitBoard struct {
	Habits       []Habit
	CoinsGranted int64
	Coins        int64
}

// CheckIn summarizes the reconciliation performed at login.
type CheckIn struct {
	CoinsGranted int64
	DaysDiff     int
	Grants       []Grant
}

// AchievementStatus is a catalog entry as seen by a particular user.
type AchievementStatus struct {
	Achievement
	Unlocked bool
}
