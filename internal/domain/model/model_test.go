package model

import "testing"

func TestDifficultyValid(t *testing.T) {
	cases := []struct {
		value Difficulty
		valid bool
	}{
		{DifficultyEasy, true},
		{DifficultyMedium, true},
		{DifficultyHard, true},
		{Difficulty("extreme"), false},
		{Difficulty(""), false},
	}

	for _, tc := range cases {
		t.Run(string(tc.value), func(t *testing.T) {
			if tc.value.Valid() != tc.valid {
				t.Fatalf("expected valid=%v for %q", tc.valid, tc.value)
			}
		})
	}
}

func TestMilestoneAchievement(t *testing.T) {
	cases := []struct {
		streak int
		kind   AchievementKind
		ok     bool
	}{
		{0, "", false},
		{1, "", false},
		{3, AchievementStreak3, true},
		{7, AchievementStreak7, true},
		{8, "", false},
		{14, AchievementStreak14, true},
		{30, AchievementStreak30, true},
		{90, AchievementStreak90, true},
		{180, AchievementStreak180, true},
		{365, AchievementStreak365, true},
		{366, "", false},
	}

	for _, tc := range cases {
		kind, ok := MilestoneAchievement(tc.streak)
		if ok != tc.ok || kind != tc.kind {
			t.Fatalf("streak %d: expected (%q, %v), got (%q, %v)", tc.streak, tc.kind, tc.ok, kind, ok)
		}
	}
}

func TestAchievementCatalogIsConsistent(t *testing.T) {
	titles := make(map[string]struct{})
	for _, def := range AchievementCatalog() {
		if _, dup := titles[def.Title]; dup {
			t.Fatalf("duplicate title %q", def.Title)
		}
		titles[def.Title] = struct{}{}

		got, ok := LookupAchievement(def.Kind)
		if !ok || got.Title != def.Title {
			t.Fatalf("lookup mismatch for %s", def.Kind)
		}
		if def.Value <= 0 {
			t.Fatalf("achievement %s must pay coins", def.Kind)
		}
	}

	if _, ok := LookupAchievement("missing"); ok {
		t.Fatal("expected unknown kind lookup to fail")
	}
}

func TestAchievementCatalogReturnsCopy(t *testing.T) {
	defs := AchievementCatalog()
	defs[0].Value = -1
	if def, _ := LookupAchievement(defs[0].Kind); def.Value == -1 {
		t.Fatal("catalog must not be mutable through the returned slice")
	}
}

func TestHeldByAndOwnedBy(t *testing.T) {
	a := Achievement{UsersWhoFinished: []int64{1, 3}}
	if !a.HeldBy(3) || a.HeldBy(2) {
		t.Fatalf("unexpected membership: %+v", a.UsersWhoFinished)
	}

	h := Habit{UserID: 5}
	if !h.OwnedBy(5) || h.OwnedBy(6) {
		t.Fatal("unexpected ownership result")
	}

	if OwnerOf(9).UserID() != 9 {
		t.Fatal("owner must carry user id")
	}
}
