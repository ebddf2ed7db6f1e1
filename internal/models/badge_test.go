package models

import "testing"

func TestResolveBadge(t *testing.T) {
	testCases := []struct {
		points   int
		expected string
	}{
		{0, "씨앗"},
		{499, "씨앗"},
		{500, "새싹"}, // exact threshold belongs to the higher rank
		{1499, "새싹"},
		{1500, "꽃봉오리"},
		{2999, "꽃봉오리"},
		{3000, "열매"},
		{100000, "열매"},
	}

	for _, tc := range testCases {
		rank := ResolveBadge(tc.points)
		if rank.Name != tc.expected {
			t.Errorf("ResolveBadge(%d) = %q, want %q", tc.points, rank.Name, tc.expected)
		}
		if rank.MinPoints > tc.points {
			t.Errorf("ResolveBadge(%d) returned rank with threshold %d above the points", tc.points, rank.MinPoints)
		}
		if rank.Emoji == "" {
			t.Errorf("ResolveBadge(%d) returned rank without emoji", tc.points)
		}
	}
}

func TestResolveBadgeMonotonic(t *testing.T) {
	previousThreshold := -1
	for points := 0; points <= 4000; points += 50 {
		rank := ResolveBadge(points)
		if rank.MinPoints < previousThreshold {
			t.Fatalf("rank threshold decreased at %d points: %d < %d", points, rank.MinPoints, previousThreshold)
		}
		previousThreshold = rank.MinPoints
	}
}

func TestResolveLevel(t *testing.T) {
	testCases := []struct {
		points       int
		level        Level
		studentLevel int
	}{
		{0, LevelEasy, 1},
		{999, LevelEasy, 1},
		{1000, LevelMedium, 5},
		{1200, LevelMedium, 5},
		{1499, LevelMedium, 5},
		{1500, LevelHard, 10},
		{1600, LevelHard, 10},
		{50000, LevelHard, 10},
	}

	for _, tc := range testCases {
		if got := ResolveLevel(tc.points); got != tc.level {
			t.Errorf("ResolveLevel(%d) = %q, want %q", tc.points, got, tc.level)
		}
		if got := StudentLevel(tc.points); got != tc.studentLevel {
			t.Errorf("StudentLevel(%d) = %d, want %d", tc.points, got, tc.studentLevel)
		}
	}
}

func TestBadgeRanksOrdering(t *testing.T) {
	if BadgeRanks[0].MinPoints != 0 {
		t.Fatalf("first rank threshold must be 0, got %d", BadgeRanks[0].MinPoints)
	}
	for i := 1; i < len(BadgeRanks); i++ {
		if BadgeRanks[i].MinPoints <= BadgeRanks[i-1].MinPoints {
			t.Errorf("rank thresholds not strictly increasing at %q", BadgeRanks[i].Name)
		}
	}
}

func TestUserSyncBadge(t *testing.T) {
	user := &User{Points: 1600}
	user.SyncBadge()
	if user.Badge != "꽃봉오리" {
		t.Errorf("SyncBadge at 1600 points set badge %q, want 꽃봉오리", user.Badge)
	}
	if user.Emoji != "🌸" {
		t.Errorf("SyncBadge at 1600 points set emoji %q, want 🌸", user.Emoji)
	}
}
