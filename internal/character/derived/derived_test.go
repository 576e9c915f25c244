package derived

import (
	"testing"

	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// sheetState is a created character with agility 9 tagged best, vigor 8
// tagged worst, and everything else at 8 (sum 57).
func sheetState() domain.State {
	return domain.State{
		Created:     true,
		CharacterID: "char-1",
		WorldID:     "world-1",
		Name:        "Mara",
		BaseAttributes: domain.BaseAttributes{
			Agility:      9,
			Coordination: 8,
			Intellect:    8,
			Presence:     8,
			Sensitivity:  8,
			Spirit:       8,
			Vigor:        8,
			Best:         rulebook.AttributeAgility,
			Worst:        rulebook.AttributeVigor,
		},
		Bonuses:    map[string]domain.Bonus{},
		Talents:    map[string]domain.TalentRelation{},
		Languages:  map[string]domain.LanguageRelation{},
		Inventory:  map[string]domain.ItemRelation{},
		SkillRanks: map[rulebook.Skill]int{},
	}
}

func TestAttributeViews(t *testing.T) {
	state := sheetState()
	state.Bonuses["bonus-temp"] = domain.Bonus{
		Category:    rulebook.BonusCategoryAttribute,
		Target:      "agility",
		Value:       2,
		IsTemporary: true,
	}

	view := AttributeFor(state, rulebook.AttributeAgility)
	// Raw 9 plus best +3.
	if view.PermanentScore != 12 || view.PermanentModifier != 1 {
		t.Fatalf("agility permanent = %d/%d, want 12/+1", view.PermanentScore, view.PermanentModifier)
	}
	if view.TemporaryScore != 14 || view.TemporaryModifier != 2 {
		t.Fatalf("agility temporary = %d/%d, want 14/+2", view.TemporaryScore, view.TemporaryModifier)
	}

	view = AttributeFor(state, rulebook.AttributeVigor)
	// Raw 8 plus worst +1.
	if view.PermanentScore != 9 || view.PermanentModifier != -1 {
		t.Fatalf("vigor permanent = %d/%d, want 9/-1", view.PermanentScore, view.PermanentModifier)
	}

	all := Attributes(state)
	if len(all) != 7 {
		t.Fatalf("got %d attribute views, want 7", len(all))
	}
	if all[0].Attribute != rulebook.AttributeAgility {
		t.Fatalf("first view = %s, want agility", all[0].Attribute)
	}
}

func TestStatisticViews(t *testing.T) {
	state := sheetState()

	t.Run("bases at level zero", func(t *testing.T) {
		// Vigor 9, modifier -1: constitution base 5×(−1+5).
		if view := StatisticFor(state, rulebook.StatisticConstitution); view.Value != 20 {
			t.Fatalf("constitution = %d, want 20", view.Value)
		}
		// Intellect 8, modifier -1: learning floors at 5.
		if view := StatisticFor(state, rulebook.StatisticLearning); view.Value != 5 {
			t.Fatalf("learning = %d, want 5", view.Value)
		}
		// Agility 12, modifier +1: strength base is the modifier.
		if view := StatisticFor(state, rulebook.StatisticStrength); view.Value != 1 {
			t.Fatalf("strength = %d, want 1", view.Value)
		}
	})

	t.Run("fractional increments accumulate before flooring", func(t *testing.T) {
		leveled := sheetState()
		// Two frozen strength increments of 12/40 on top of base +1:
		// 1 + 0.6 floors to 1.
		leveled.LevelUps = []domain.LevelUp{
			{Attribute: rulebook.AttributeSpirit, Increments: map[rulebook.Statistic]float64{rulebook.StatisticStrength: 0.3}},
			{Attribute: rulebook.AttributeSpirit, Increments: map[rulebook.Statistic]float64{rulebook.StatisticStrength: 0.3}},
		}
		view := StatisticFor(leveled, rulebook.StatisticStrength)
		if view.Increments != 0.6 {
			t.Fatalf("increments = %g, want 0.6", view.Increments)
		}
		if view.Value != 1 {
			t.Fatalf("strength = %d, want 1", view.Value)
		}

		// A fourth increment crosses the next integer: 1 + 1.2 floors to 2.
		leveled.LevelUps = append(leveled.LevelUps,
			domain.LevelUp{Attribute: rulebook.AttributeSpirit, Increments: map[rulebook.Statistic]float64{rulebook.StatisticStrength: 0.3}},
			domain.LevelUp{Attribute: rulebook.AttributeSpirit, Increments: map[rulebook.Statistic]float64{rulebook.StatisticStrength: 0.3}},
		)
		if view := StatisticFor(leveled, rulebook.StatisticStrength); view.Value != 2 {
			t.Fatalf("strength after four levels = %d, want 2", view.Value)
		}
	})

	t.Run("statistic bonuses add flat", func(t *testing.T) {
		boosted := sheetState()
		boosted.Bonuses["bonus-1"] = domain.Bonus{
			Category: rulebook.BonusCategoryStatistic,
			Target:   "constitution",
			Value:    5,
		}
		if view := StatisticFor(boosted, rulebook.StatisticConstitution); view.Value != 25 {
			t.Fatalf("constitution = %d, want 25", view.Value)
		}
	})

	t.Run("unparseable bonus targets are skipped", func(t *testing.T) {
		stale := sheetState()
		stale.Bonuses["bonus-1"] = domain.Bonus{
			Category: rulebook.BonusCategoryStatistic,
			Target:   "luckiness",
			Value:    50,
		}
		if view := StatisticFor(stale, rulebook.StatisticConstitution); view.Value != 20 {
			t.Fatalf("constitution = %d, want 20", view.Value)
		}
	})

	if got := len(Statistics(state)); got != 7 {
		t.Fatalf("got %d statistic views, want 7", got)
	}
}

func TestSpeedViews(t *testing.T) {
	state := sheetState()
	state.LineageSpeeds = []domain.SpeedRecord{
		{LineageID: "lineage-humain", Kind: rulebook.SpeedWalk, Value: 5},
		{LineageID: "lineage-orrin", Kind: rulebook.SpeedWalk, Value: 6},
		{LineageID: "lineage-orrin", Kind: rulebook.SpeedSwim, Value: 3},
	}

	t.Run("takes the best grant across the chain", func(t *testing.T) {
		if view := SpeedFor(state, rulebook.SpeedWalk); view.Value != 6 {
			t.Fatalf("walk = %d, want 6", view.Value)
		}
		if view := SpeedFor(state, rulebook.SpeedSwim); view.Value != 3 {
			t.Fatalf("swim = %d, want 3", view.Value)
		}
		if view := SpeedFor(state, rulebook.SpeedFly); view.Value != 0 {
			t.Fatalf("fly = %d, want 0", view.Value)
		}
	})

	t.Run("bonuses add and penalties clamp at zero", func(t *testing.T) {
		modified := sheetState()
		modified.LineageSpeeds = state.LineageSpeeds
		modified.Bonuses = map[string]domain.Bonus{
			"bonus-1": {Category: rulebook.BonusCategorySpeed, Target: "walk", Value: 2},
			"bonus-2": {Category: rulebook.BonusCategorySpeed, Target: "swim", Value: -10},
		}
		if view := SpeedFor(modified, rulebook.SpeedWalk); view.Value != 8 {
			t.Fatalf("walk = %d, want 8", view.Value)
		}
		if view := SpeedFor(modified, rulebook.SpeedSwim); view.Value != 0 {
			t.Fatalf("swim = %d, want 0 after clamping", view.Value)
		}
	})

	if got := len(Speeds(state)); got != 6 {
		t.Fatalf("got %d speed views, want 6", got)
	}
}
