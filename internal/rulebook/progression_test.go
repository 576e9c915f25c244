package rulebook

import "testing"

func TestTotalExperienceStrictlyIncreasing(t *testing.T) {
	prev := TotalExperience(0)
	if prev != 0 {
		t.Fatalf("TotalExperience(0) = %d, want 0", prev)
	}
	for level := 1; level <= MaximumLevel; level++ {
		got := TotalExperience(level)
		if got <= prev {
			t.Fatalf("TotalExperience(%d) = %d, not greater than %d", level, got, prev)
		}
		prev = got
	}
}

func TestTotalExperienceKnownEntries(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
		{20, 104857500},
		{25, 104857500},
		{-3, 0},
	}
	for _, tc := range tests {
		if got := TotalExperience(tc.level); got != tc.want {
			t.Errorf("TotalExperience(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0}, {4, 0}, {5, 1}, {9, 1}, {10, 2}, {14, 2}, {15, 3}, {20, 3},
	}
	for _, tc := range tests {
		if got := TierForLevel(tc.level); got != tc.want {
			t.Errorf("TierForLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestMaximumSkillRank(t *testing.T) {
	tests := []struct {
		tier int
		want int
	}{
		{0, 2}, {1, 5}, {2, 9}, {3, 14},
	}
	for _, tc := range tests {
		if got := MaximumSkillRank(tc.tier); got != tc.want {
			t.Errorf("MaximumSkillRank(%d) = %d, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestTalentPoints(t *testing.T) {
	if got := TalentPoints(0); got != 8 {
		t.Errorf("TalentPoints(0) = %d, want 8", got)
	}
	if got := TalentPoints(5); got != 28 {
		t.Errorf("TalentPoints(5) = %d, want 28", got)
	}
}

func TestAttributeModifierTable(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{6, -2}, {7, -2}, {8, -1}, {9, -1}, {10, 0}, {11, 0},
		{12, 1}, {13, 1}, {14, 2}, {17, 3}, {20, 5}, {5, -3},
	}
	for _, tc := range tests {
		if got := AttributeModifier(tc.score); got != tc.want {
			t.Errorf("AttributeModifier(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}
