package model

import "slices"

// AchievementKind identifies one entry of the closed achievement catalog.
type AchievementKind string

const (
	AchievementFirstCompletion AchievementKind = "first_completion"
	AchievementStreak3         AchievementKind = "streak_3"
	AchievementStreak7         AchievementKind = "streak_7"
	AchievementStreak14        AchievementKind = "streak_14"
	AchievementStreak30        AchievementKind = "streak_30"
	AchievementStreak90        AchievementKind = "streak_90"
	AchievementStreak180       AchievementKind = "streak_180"
	AchievementStreak365       AchievementKind = "streak_365"
	AchievementStreakBroken    AchievementKind = "streak_broken"
)

// LongStreak is the streak length whose loss grants AchievementStreakBroken.
const LongStreak = 7

// AchievementDefinition describes a catalog entry. Milestone is the
// post-completion streak that unlocks it, or zero when the entry is not a
// streak milestone.
type AchievementDefinition struct {
	Kind      AchievementKind
	Title     string
	Subtitle  string
	Value     int64
	ImageName string
	Milestone int
}

var achievementCatalog = []AchievementDefinition{
	{Kind: AchievementFirstCompletion, Title: "First Step", Subtitle: "Complete a habit for the first time", Value: 100, ImageName: "first_step.png"},
	{Kind: AchievementStreak3, Title: "Warming Up", Subtitle: "Keep a habit for 3 days in a row", Value: 50, ImageName: "streak_3.png", Milestone: 3},
	{Kind: AchievementStreak7, Title: "One Week Strong", Subtitle: "Keep a habit for 7 days in a row", Value: 150, ImageName: "streak_7.png", Milestone: 7},
	{Kind: AchievementStreak14, Title: "Fortnight", Subtitle: "Keep a habit for 14 days in a row", Value: 300, ImageName: "streak_14.png", Milestone: 14},
	{Kind: AchievementStreak30, Title: "Monthly Master", Subtitle: "Keep a habit for 30 days in a row", Value: 500, ImageName: "streak_30.png", Milestone: 30},
	{Kind: AchievementStreak90, Title: "Quarter Champion", Subtitle: "Keep a habit for 90 days in a row", Value: 1500, ImageName: "streak_90.png", Milestone: 90},
	{Kind: AchievementStreak180, Title: "Half Year Hero", Subtitle: "Keep a habit for 180 days in a row", Value: 3000, ImageName: "streak_180.png", Milestone: 180},
	{Kind: AchievementStreak365, Title: "Year of Discipline", Subtitle: "Keep a habit for 365 days in a row", Value: 10000, ImageName: "streak_365.png", Milestone: 365},
	{Kind: AchievementStreakBroken, Title: "Fall Seven Times", Subtitle: "Lose a streak of 7 days or more", Value: 25, ImageName: "streak_broken.png"},
}

// AchievementCatalog returns a copy of every known achievement definition.
func AchievementCatalog() []AchievementDefinition {
	return slices.Clone(achievementCatalog)
}

// LookupAchievement returns the catalog entry for kind.
func LookupAchievement(kind AchievementKind) (AchievementDefinition, bool) {
	for _, def := range achievementCatalog {
		if def.Kind == kind {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}

// MilestoneAchievement returns the achievement unlocked by reaching streak.
func MilestoneAchievement(streak int) (AchievementKind, bool) {
	if streak <= 0 {
		return "", false
	}
	for _, def := range achievementCatalog {
		if def.Milestone == streak {
			return def.Kind, true
		}
	}
	return "", false
}

// Achievement is a persisted achievement together with its holders.
type Achievement struct {
	Kind             AchievementKind
	Title            string
	Subtitle         string
	Value            int64
	ImageName        string
	UsersWhoFinished []int64
}

// HeldBy reports whether userID already claimed the achievement.
func (a *Achievement) HeldBy(userID int64) bool {
	return slices.Contains(a.UsersWhoFinished, userID)
}
