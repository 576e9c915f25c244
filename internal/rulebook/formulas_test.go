package rulebook

import "testing"

func TestStatisticBaseFormulas(t *testing.T) {
	// Vigor score 14, modifier +2.
	if got := StatisticBase(StatisticConstitution, 14, 2); got != 35 {
		t.Errorf("constitution base = %v, want 35", got)
	}
	// Sensitivity score 12, modifier +1.
	if got := StatisticBase(StatisticInitiative, 12, 1); got != 1 {
		t.Errorf("initiative base = %v, want 1", got)
	}
	// Intellect modifier -2 floors learning at 5.
	if got := StatisticBase(StatisticLearning, 7, -2); got != 5 {
		t.Errorf("learning base = %v, want 5", got)
	}
	if got := StatisticBase(StatisticLearning, 14, 2); got != 9 {
		t.Errorf("learning base = %v, want 9", got)
	}
}

func TestStatisticIncrementFormulas(t *testing.T) {
	if got := StatisticIncrement(StatisticConstitution, 14, 2); got != 7 {
		t.Errorf("constitution increment = %v, want 7", got)
	}
	if got := StatisticIncrement(StatisticInitiative, 12, 1); got != 0.3 {
		t.Errorf("initiative increment = %v, want 0.3", got)
	}
	if got := StatisticIncrement(StatisticReputation, 10, 0); got != 0.5 {
		t.Errorf("reputation increment = %v, want 0.5", got)
	}
	// Intellect modifier -3 floors the learning increment at 1.
	if got := StatisticIncrement(StatisticLearning, 5, -3); got != 1 {
		t.Errorf("learning increment = %v, want 1", got)
	}
}

func TestValidBonusTarget(t *testing.T) {
	tests := []struct {
		category BonusCategory
		target   string
		want     bool
	}{
		{BonusCategoryAttribute, "agility", true},
		{BonusCategoryAttribute, "melee", false},
		{BonusCategorySkill, "melee", true},
		{BonusCategorySpeed, "walk", true},
		{BonusCategorySpeed, "agility", false},
		{BonusCategoryStatistic, "initiative", true},
		{BonusCategory("weird"), "agility", false},
	}
	for _, tc := range tests {
		if got := ValidBonusTarget(tc.category, tc.target); got != tc.want {
			t.Errorf("ValidBonusTarget(%s, %s) = %v, want %v", tc.category, tc.target, got, tc.want)
		}
	}
}
