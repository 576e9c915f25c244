package seed

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/louisbranch/skillforge/internal/character/command"
	"github.com/louisbranch/skillforge/internal/character/creation"
	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/character/service"
	"github.com/louisbranch/skillforge/internal/rulebook"
	"github.com/louisbranch/skillforge/internal/storage/sqlite"
)

func newSeededService(t *testing.T) (*service.Service, *sqlite.Store) {
	t.Helper()
	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := Apply(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := &service.Service{
		Events: store,
		Audit:  store,
		Resolver: creation.Resolver{
			Stores: creation.Stores{
				Lineages:       store,
				Natures:        store,
				Customizations: store,
				Aspects:        store,
				Castes:         store,
				Educations:     store,
				Talents:        store,
				Languages:      store,
				Items:          store,
			},
		},
	}
	return svc, store
}

func demoRequest() creation.Request {
	return creation.Request{
		WorldID: WorldID,
		Name:    "Mara",
		Height:  1.7,
		Weight:  68,
		Age:     27,

		LineageID:        LineageOrrin,
		NatureID:         NatureWanderer,
		CustomizationIDs: []string{GiftBrave, DisabilityFrail},
		AspectIDs:        []string{AspectWarrior, AspectScholar},
		CasteID:          CasteSoldier,
		EducationID:      EducationScribe,

		Agility:      9,
		Coordination: 8,
		Intellect:    8,
		Presence:     8,
		Sensitivity:  8,
		Spirit:       8,
		Vigor:        8,
		Best:         rulebook.AttributeAgility,
		Worst:        rulebook.AttributeVigor,
		Optional:     []rulebook.Attribute{rulebook.AttributePresence},
		Extra:        []rulebook.Attribute{rulebook.AttributeAgility, rulebook.AttributeVigor},

		TalentIDs:   []string{TalentSurvival},
		LanguageIDs: []string{LanguageTrade},

		StartingWealthItemID: ItemCoin,
		StartingWealthAmount: 30,
	}
}

// TestDemoWorldEndToEnd creates a character from the seeded world and walks
// it through experience, a level-up, and a follow-up talent purchase.
func TestDemoWorldEndToEnd(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	sheet, err := svc.Create(ctx, demoRequest(), command.ActorTypeUser, "user-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	characterID := sheet.State.CharacterID

	// Agility: raw 9, best +3, mandatory (warrior) +2, extra +1, Orrin +1,
	// nature +1 = 17.
	for _, view := range sheet.Attributes {
		if view.Attribute == rulebook.AttributeAgility {
			if view.PermanentScore != 17 || view.PermanentModifier != 3 {
				t.Fatalf("agility = %d/%d, want 17/+3", view.PermanentScore, view.PermanentModifier)
			}
		}
	}
	// Walk speed takes the Orrin grant over the Humain one.
	for _, view := range sheet.Speeds {
		if view.Kind == rulebook.SpeedWalk && view.Value != 6 {
			t.Fatalf("walk = %d, want 6", view.Value)
		}
		if view.Kind == rulebook.SpeedFly && view.Value != 0 {
			t.Fatalf("fly = %d, want 0", view.Value)
		}
	}
	// Caste (discounted melee 1) + education (discounted knowledge 1) +
	// survival (2) against the level 0 budget of 8.
	if sheet.TalentPointsRemaining != 4 {
		t.Fatalf("talent points remaining = %d, want 4", sheet.TalentPointsRemaining)
	}
	if len(sheet.State.Inventory) != 1 {
		t.Fatalf("inventory size = %d, want 1", len(sheet.State.Inventory))
	}

	raw, _ := json.Marshal(domain.ExperienceGainedPayload{Amount: 120})
	if _, err := svc.Dispatch(ctx, command.Command{
		WorldID: WorldID, Type: domain.CommandTypeGainExperience,
		ActorType: command.ActorTypeSystem, EntityID: characterID, PayloadJSON: raw,
	}); err != nil {
		t.Fatalf("gain experience: %v", err)
	}

	raw, _ = json.Marshal(domain.LeveledUpPayload{Attribute: rulebook.AttributeVigor})
	sheet, err = svc.Dispatch(ctx, command.Command{
		WorldID: WorldID, Type: domain.CommandTypeLevelUp,
		ActorType: command.ActorTypeUser, ActorID: "user-1", EntityID: characterID, PayloadJSON: raw,
	})
	if err != nil {
		t.Fatalf("level up: %v", err)
	}
	if sheet.Level != 1 || sheet.Tier != 0 {
		t.Fatalf("level/tier = %d/%d, want 1/0", sheet.Level, sheet.Tier)
	}
	// Level 1 budget 12 minus 4 spent at creation.
	if sheet.TalentPointsRemaining != 8 {
		t.Fatalf("talent points remaining = %d, want 8", sheet.TalentPointsRemaining)
	}

	// Tracking requires Wayfinding, which creation granted.
	tracking := rulebook.Talent{ID: TalentTracking, WorldID: WorldID, Tier: 0, Name: "Tracking", RequiredTalentID: TalentSurvival}
	raw, _ = json.Marshal(domain.TalentSetPayload{RelationID: "rel-tracking", Talent: tracking})
	sheet, err = svc.Dispatch(ctx, command.Command{
		WorldID: WorldID, Type: domain.CommandTypeSetTalent,
		ActorType: command.ActorTypeUser, ActorID: "user-1", EntityID: characterID, PayloadJSON: raw,
	})
	if err != nil {
		t.Fatalf("set talent: %v", err)
	}
	if sheet.State.Talents["rel-tracking"].Cost != 2 {
		t.Fatalf("tracking cost = %d, want 2", sheet.State.Talents["rel-tracking"].Cost)
	}

	loaded, err := svc.Load(ctx, WorldID, characterID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Version != 4 {
		t.Fatalf("version = %d, want 4", loaded.Version)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	svc, store := newSeededService(t)
	if err := Apply(context.Background(), store); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if _, err := svc.Create(context.Background(), demoRequest(), command.ActorTypeUser, "user-1"); err != nil {
		t.Fatalf("create after re-seed: %v", err)
	}
}
