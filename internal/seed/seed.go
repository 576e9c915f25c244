// Package seed installs a small deterministic demo world used by the forge
// command and end-to-end tests.
package seed

import (
	"context"
	"fmt"

	"github.com/louisbranch/skillforge/internal/rulebook"
	"github.com/louisbranch/skillforge/internal/storage"
)

// Well-known ids of the demo world.
const (
	WorldID = "world-demo"

	LineageHumain = "lineage-humain"
	LineageOrrin  = "lineage-orrin"

	NatureWanderer = "nature-wanderer"
	NatureStoic    = "nature-stoic"

	GiftKeenSenses  = "custom-gift-keen-senses"
	GiftBrave       = "custom-gift-brave"
	DisabilityFrail = "custom-dis-frail"

	AspectWarrior = "aspect-warrior"
	AspectScholar = "aspect-scholar"
	AspectDrifter = "aspect-drifter"

	CasteSoldier      = "caste-soldier"
	CasteArtisan      = "caste-artisan"
	EducationScribe   = "education-scribe"
	EducationBarracks = "education-barracks"

	TalentMelee     = "talent-melee"
	TalentCraft     = "talent-craft"
	TalentKnowledge = "talent-knowledge"
	TalentSurvival  = "talent-survival"
	TalentTracking  = "talent-tracking"

	LanguageCommon = "language-common"
	LanguageOrrin  = "language-orrin"
	LanguageTrade  = "language-trade"

	ItemCoin = "item-coin"
)

func attributePtr(a rulebook.Attribute) *rulebook.Attribute { return &a }
func skillPtr(s rulebook.Skill) *rulebook.Skill             { return &s }

// Apply writes the demo world's reference data. Every write is an upsert,
// so re-seeding an existing database is safe.
func Apply(ctx context.Context, store storage.ReferenceStore) error {
	lineages := []rulebook.Lineage{
		{
			ID:               LineageHumain,
			WorldID:          WorldID,
			Name:             "Humain",
			AttributeBonuses: map[rulebook.Attribute]int{rulebook.AttributeVigor: 1},
			Speeds:           map[rulebook.SpeedKind]int{rulebook.SpeedWalk: 5},
			LanguageIDs:      []string{LanguageCommon},
			ExtraLanguages:   1,
			ExtraAttributes:  2,
		},
		{
			ID:               LineageOrrin,
			WorldID:          WorldID,
			ParentID:         LineageHumain,
			Name:             "Orrin",
			AttributeBonuses: map[rulebook.Attribute]int{rulebook.AttributeAgility: 1},
			Speeds:           map[rulebook.SpeedKind]int{rulebook.SpeedWalk: 6, rulebook.SpeedSwim: 3},
			LanguageIDs:      []string{LanguageOrrin},
		},
	}
	for _, lineage := range lineages {
		if err := store.PutLineage(ctx, lineage); err != nil {
			return fmt.Errorf("seed lineage %s: %w", lineage.ID, err)
		}
	}

	natures := []rulebook.Nature{
		{ID: NatureWanderer, WorldID: WorldID, Name: "Wanderer", Attribute: attributePtr(rulebook.AttributeAgility), GiftID: GiftKeenSenses},
		{ID: NatureStoic, WorldID: WorldID, Name: "Stoic", Attribute: attributePtr(rulebook.AttributeVigor)},
	}
	for _, nature := range natures {
		if err := store.PutNature(ctx, nature); err != nil {
			return fmt.Errorf("seed nature %s: %w", nature.ID, err)
		}
	}

	customizations := []rulebook.Customization{
		{ID: GiftKeenSenses, WorldID: WorldID, Kind: rulebook.CustomizationGift, Name: "Keen Senses"},
		{ID: GiftBrave, WorldID: WorldID, Kind: rulebook.CustomizationGift, Name: "Brave"},
		{ID: DisabilityFrail, WorldID: WorldID, Kind: rulebook.CustomizationDisability, Name: "Frail"},
	}
	for _, customization := range customizations {
		if err := store.PutCustomization(ctx, customization); err != nil {
			return fmt.Errorf("seed customization %s: %w", customization.ID, err)
		}
	}

	aspects := []rulebook.Aspect{
		{
			ID:                  AspectWarrior,
			WorldID:             WorldID,
			Name:                "Warrior",
			MandatoryAttribute1: attributePtr(rulebook.AttributeAgility),
			OptionalAttribute1:  attributePtr(rulebook.AttributeVigor),
			DiscountedSkill1:    skillPtr(rulebook.SkillMelee),
		},
		{
			ID:                  AspectScholar,
			WorldID:             WorldID,
			Name:                "Scholar",
			MandatoryAttribute1: attributePtr(rulebook.AttributeIntellect),
			OptionalAttribute1:  attributePtr(rulebook.AttributePresence),
			DiscountedSkill1:    skillPtr(rulebook.SkillKnowledge),
		},
		{
			ID:                  AspectDrifter,
			WorldID:             WorldID,
			Name:                "Drifter",
			MandatoryAttribute1: attributePtr(rulebook.AttributeSensitivity),
			OptionalAttribute1:  attributePtr(rulebook.AttributeCoordination),
			DiscountedSkill1:    skillPtr(rulebook.SkillSurvival),
		},
	}
	for _, aspect := range aspects {
		if err := store.PutAspect(ctx, aspect); err != nil {
			return fmt.Errorf("seed aspect %s: %w", aspect.ID, err)
		}
	}

	castes := []rulebook.Caste{
		{ID: CasteSoldier, WorldID: WorldID, Name: "Soldier", Skill: skillPtr(rulebook.SkillMelee), WealthRoll: "3d10"},
		{ID: CasteArtisan, WorldID: WorldID, Name: "Artisan", Skill: skillPtr(rulebook.SkillCraft), WealthRoll: "4d10"},
	}
	for _, caste := range castes {
		if err := store.PutCaste(ctx, caste); err != nil {
			return fmt.Errorf("seed caste %s: %w", caste.ID, err)
		}
	}

	educations := []rulebook.Education{
		{ID: EducationScribe, WorldID: WorldID, Name: "Scribe", Skill: skillPtr(rulebook.SkillKnowledge)},
		{ID: EducationBarracks, WorldID: WorldID, Name: "Barracks", Skill: skillPtr(rulebook.SkillMelee)},
	}
	for _, education := range educations {
		if err := store.PutEducation(ctx, education); err != nil {
			return fmt.Errorf("seed education %s: %w", education.ID, err)
		}
	}

	talents := []rulebook.Talent{
		{ID: TalentMelee, WorldID: WorldID, Tier: 0, Name: "Soldier's Arts", Skill: skillPtr(rulebook.SkillMelee)},
		{ID: TalentCraft, WorldID: WorldID, Tier: 0, Name: "Craftwork", Skill: skillPtr(rulebook.SkillCraft)},
		{ID: TalentKnowledge, WorldID: WorldID, Tier: 0, Name: "Scribe's Lore", Skill: skillPtr(rulebook.SkillKnowledge)},
		{ID: TalentSurvival, WorldID: WorldID, Tier: 0, Name: "Wayfinding", Skill: skillPtr(rulebook.SkillSurvival)},
		{ID: TalentTracking, WorldID: WorldID, Tier: 0, Name: "Tracking", RequiredTalentID: TalentSurvival},
	}
	for _, talent := range talents {
		if err := store.PutTalent(ctx, talent); err != nil {
			return fmt.Errorf("seed talent %s: %w", talent.ID, err)
		}
	}

	languages := []rulebook.Language{
		{ID: LanguageCommon, WorldID: WorldID, Name: "Common"},
		{ID: LanguageOrrin, WorldID: WorldID, Name: "Orrin"},
		{ID: LanguageTrade, WorldID: WorldID, Name: "Trade Cant"},
	}
	for _, language := range languages {
		if err := store.PutLanguage(ctx, language); err != nil {
			return fmt.Errorf("seed language %s: %w", language.ID, err)
		}
	}

	if err := store.PutItem(ctx, rulebook.Item{
		ID: ItemCoin, WorldID: WorldID, Category: rulebook.ItemCategoryMoney, Name: "Coin", Value: 1,
	}); err != nil {
		return fmt.Errorf("seed item %s: %w", ItemCoin, err)
	}
	return nil
}
