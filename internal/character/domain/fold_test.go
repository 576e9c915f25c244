package domain

import (
	"reflect"
	"testing"

	"github.com/louisbranch/skillforge/internal/character/command"
	"github.com/louisbranch/skillforge/internal/character/event"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// dispatch runs a command through Decide and folds the accepted event,
// mirroring the service write path.
func dispatch(t *testing.T, state State, events []event.Event, cmdType command.Type, payload any) (State, []event.Event) {
	t.Helper()
	cmd := testCommand(t, cmdType, payload)
	decision := Decide(state, cmd, testNow)
	if decision.Rejected() {
		t.Fatalf("%s rejected: %+v", cmdType, decision.Rejections)
	}
	evt := decision.Events[0]
	evt.Seq = uint64(len(events) + 1)
	next, err := Fold(state, evt)
	if err != nil {
		t.Fatalf("fold %s: %v", evt.Type, err)
	}
	return next, append(events, evt)
}

func createEvents(t *testing.T) (State, []event.Event) {
	t.Helper()
	payload := CreatePayload{
		CharacterID:        "char-1",
		Name:               "Mara",
		LineageID:          "lineage-humain",
		NatureID:           "nature-wanderer",
		CasteID:            "caste-soldier",
		EducationID:        "education-scribe",
		Height:             1.7,
		Weight:             68,
		Age:                27,
		BaseAttributes:     validBaseAttributes(),
		LineageLanguageIDs: []string{"language-common"},
	}
	return dispatch(t, State{}, nil, CommandTypeCreate, payload)
}

func TestFoldLifecycle(t *testing.T) {
	state, events := createEvents(t)
	if !state.Created || state.CharacterID != "char-1" {
		t.Fatalf("unexpected created state: %+v", state)
	}

	name := "Mara of Orrin"
	age := 28
	state, events = dispatch(t, state, events, CommandTypeUpdate, UpdatePayload{Name: &name, Age: &age})
	if state.Name != "Mara of Orrin" || state.Age != 28 {
		t.Fatalf("update not applied: name=%q age=%d", state.Name, state.Age)
	}
	if state.Height != 1.7 {
		t.Fatalf("height changed by a partial update: %g", state.Height)
	}

	state, events = dispatch(t, state, events, CommandTypeGainExperience, ExperienceGainedPayload{Amount: 150})
	if state.Experience != 150 {
		t.Fatalf("experience = %d, want 150", state.Experience)
	}

	state, events = dispatch(t, state, events, CommandTypeLevelUp, LeveledUpPayload{Attribute: rulebook.AttributeIntellect})
	if state.Level() != 1 {
		t.Fatalf("level = %d, want 1", state.Level())
	}
	if state.LevelUps[0].Attribute != rulebook.AttributeIntellect {
		t.Fatalf("level-up attribute = %s, want intellect", state.LevelUps[0].Attribute)
	}

	state, events = dispatch(t, state, events, CommandTypeIncreaseSkillRank, SkillRankIncreasedPayload{Skill: rulebook.SkillSurvival})
	if state.SkillRanks[rulebook.SkillSurvival] != 1 {
		t.Fatalf("survival rank = %d, want 1", state.SkillRanks[rulebook.SkillSurvival])
	}

	state, events = dispatch(t, state, events, CommandTypeSetBonus, BonusSetPayload{
		BonusID: "bonus-1",
		Bonus:   Bonus{Category: rulebook.BonusCategorySpeed, Target: "walk", Value: 1},
	})
	state, events = dispatch(t, state, events, CommandTypeSetTalent, TalentSetPayload{
		RelationID: "rel-1",
		Talent:     rulebook.Talent{ID: "talent-duelist", Tier: 0, Name: "Duelist"},
	})
	state, events = dispatch(t, state, events, CommandTypeSetLanguage, LanguageSetPayload{
		RelationID: "rel-2",
		LanguageID: "language-orrin",
	})
	state, events = dispatch(t, state, events, CommandTypeSetItem, ItemSetPayload{
		RelationID: "rel-3",
		Item:       ItemRelation{ItemID: "item-coin", Quantity: 30},
	})
	vitality := 14
	state, events = dispatch(t, state, events, CommandTypeUpdateVitals, VitalsUpdatedPayload{Vitality: &vitality})

	if len(state.Bonuses) != 1 || len(state.Talents) != 1 || len(state.Languages) != 1 || len(state.Inventory) != 1 {
		t.Fatalf("relation counts off: %d/%d/%d/%d",
			len(state.Bonuses), len(state.Talents), len(state.Languages), len(state.Inventory))
	}
	if state.Talents["rel-1"].Cost != 2 {
		t.Fatalf("talent cost = %d, want 2", state.Talents["rel-1"].Cost)
	}
	if state.Vitality != 14 {
		t.Fatalf("vitality = %d, want 14", state.Vitality)
	}

	// Replay over the accumulated stream must land on the same state.
	replayed, err := Replay(events)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !reflect.DeepEqual(replayed, state) {
		t.Fatalf("replayed state diverges:\n got %+v\nwant %+v", replayed, state)
	}
}

func TestFoldRemovals(t *testing.T) {
	state, events := createEvents(t)
	state, events = dispatch(t, state, events, CommandTypeSetBonus, BonusSetPayload{
		BonusID: "bonus-1",
		Bonus:   Bonus{Category: rulebook.BonusCategoryAttribute, Target: "agility", Value: 2},
	})
	state, events = dispatch(t, state, events, CommandTypeSetTalent, TalentSetPayload{
		RelationID: "rel-1",
		Talent:     rulebook.Talent{ID: "talent-duelist", Tier: 0},
	})
	state, events = dispatch(t, state, events, CommandTypeSetLanguage, LanguageSetPayload{
		RelationID: "rel-2",
		LanguageID: "language-orrin",
	})
	state, events = dispatch(t, state, events, CommandTypeSetItem, ItemSetPayload{
		RelationID: "rel-3",
		Item:       ItemRelation{ItemID: "item-coin", Quantity: 30},
	})

	state, events = dispatch(t, state, events, CommandTypeRemoveBonus, BonusRemovedPayload{BonusID: "bonus-1"})
	state, events = dispatch(t, state, events, CommandTypeRemoveTalent, TalentRemovedPayload{RelationID: "rel-1"})
	state, events = dispatch(t, state, events, CommandTypeRemoveLanguage, LanguageRemovedPayload{RelationID: "rel-2"})
	state, _ = dispatch(t, state, events, CommandTypeRemoveItem, ItemRemovedPayload{RelationID: "rel-3"})

	if len(state.Bonuses) != 0 || len(state.Talents) != 0 || len(state.Languages) != 0 || len(state.Inventory) != 0 {
		t.Fatalf("relations not removed: %d/%d/%d/%d",
			len(state.Bonuses), len(state.Talents), len(state.Languages), len(state.Inventory))
	}
}

func TestFoldCancelRestoresPriorState(t *testing.T) {
	state, events := createEvents(t)
	state, events = dispatch(t, state, events, CommandTypeGainExperience, ExperienceGainedPayload{Amount: 200})
	before := state

	state, events = dispatch(t, state, events, CommandTypeLevelUp, LeveledUpPayload{Attribute: rulebook.AttributeSpirit})
	if state.Level() != 1 {
		t.Fatalf("level = %d, want 1", state.Level())
	}
	state, _ = dispatch(t, state, events, CommandTypeCancelLevelUp, struct{}{})

	if !reflect.DeepEqual(state, before) {
		t.Fatalf("cancel did not restore prior state:\n got %+v\nwant %+v", state, before)
	}
}

func TestFoldCancelWithoutHistoryLeavesStateUnchanged(t *testing.T) {
	state, events := createEvents(t)
	before := state

	state, _ = dispatch(t, state, events, CommandTypeCancelLevelUp, struct{}{})

	if !reflect.DeepEqual(state, before) {
		t.Fatalf("cancel without history mutated state:\n got %+v\nwant %+v", state, before)
	}
}

func TestFoldUnknownTypePassesThrough(t *testing.T) {
	state := createdTestState()
	next, err := Fold(state, event.Event{Type: event.Type("character.future"), EntityType: event.EntityTypeCharacter})
	if err != nil {
		t.Fatalf("fold unknown type: %v", err)
	}
	if !reflect.DeepEqual(next, state) {
		t.Fatalf("unknown type mutated state")
	}
}

func TestReplaySkipsOtherEntityTypes(t *testing.T) {
	_, events := createEvents(t)
	events = append(events, event.Event{
		Type:        event.TypeCharacterUpdated,
		EntityType:  "world",
		EntityID:    "world-1",
		PayloadJSON: []byte(`{"name":"ignored"}`),
	})
	state, err := Replay(events)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if state.Name != "Mara" {
		t.Fatalf("name = %q, want Mara", state.Name)
	}
}
