package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Habits() HabitRepository
	Achievements() AchievementRepository
	Rewards() RewardRepository
	Progress() ProgressTransactor
}
