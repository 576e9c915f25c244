// Package domain holds the character aggregate: replayed state, the command
// decider, and the event fold. Every mutation is decided against current
// state, emits exactly one event, and is reconstructed by folding the stream.
package domain

import (
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// AttributeBonusRecord is one lineage-chain attribute bonus, frozen into the
// creation event so replay needs no reference-store access.
type AttributeBonusRecord struct {
	LineageID string             `json:"lineage_id"`
	Attribute rulebook.Attribute `json:"attribute"`
	Value     int                `json:"value"`
}

// SpeedRecord is one lineage-chain speed grant.
type SpeedRecord struct {
	LineageID string             `json:"lineage_id"`
	Kind      rulebook.SpeedKind `json:"kind"`
	Value     int                `json:"value"`
}

// Bonus is a character-specific modifier. The target string is validated
// against the category's enum when the bonus is set; derived views stay
// lenient and skip targets that no longer parse.
type Bonus struct {
	Category    rulebook.BonusCategory `json:"category"`
	Target      string                 `json:"target"`
	Value       int                    `json:"value"`
	IsTemporary bool                   `json:"is_temporary"`
	Precision   string                 `json:"precision,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
}

// TalentRelation links a character to a purchased talent. Cost is the cost
// actually paid, which may differ from the talent's nominal cost through
// discounts; Precision records why. RequiredTalentID is frozen from the
// talent definition so prerequisite checks replay without lookups.
type TalentRelation struct {
	TalentID         string `json:"talent_id"`
	Cost             int    `json:"cost"`
	RequiredTalentID string `json:"required_talent_id,omitempty"`
	Precision        string `json:"precision,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// LanguageRelation links a character to a known language.
type LanguageRelation struct {
	LanguageID string `json:"language_id"`
	Notes      string `json:"notes,omitempty"`
}

// ItemRelation is one inventory line.
type ItemRelation struct {
	ItemID    string  `json:"item_id"`
	Quantity  float64 `json:"quantity"`
	Precision string  `json:"precision,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// LevelUp records one level gained: the chosen attribute (+1 permanent) and
// the fractional statistic increments frozen from the attributes as they
// stood before that level's bump.
type LevelUp struct {
	Attribute  rulebook.Attribute             `json:"attribute"`
	Increments map[rulebook.Statistic]float64 `json:"increments"`
}

// State captures replayed character aggregate state.
type State struct {
	// Created indicates the character exists in the world.
	Created bool
	// CharacterID is the immutable identifier used in command payloads and events.
	CharacterID string
	// WorldID scopes the aggregate; identity is the (world, character) pair.
	WorldID string
	// Name is the display name; PlayerName is the optional owning player.
	Name       string
	PlayerName string

	// Reference selections recorded at creation.
	LineageID        string
	NatureID         string
	CustomizationIDs []string
	AspectIDs        []string
	CasteID          string
	EducationID      string

	// Physical traits. Height in meters, weight in kilograms, age in years.
	Height float64
	Weight float64
	Age    int

	// Experience accumulates; Level always equals len(LevelUps).
	Experience int

	// Condition counters.
	Vitality            int
	Stamina             int
	BloodAlcoholContent int
	Intoxication        int

	// BaseAttributes are the raw point-buy scores with their tags.
	BaseAttributes BaseAttributes

	// Lineage-chain grants frozen at creation, species records first.
	LineageAttributeBonuses []AttributeBonusRecord
	LineageSpeeds           []SpeedRecord
	LineageLanguageIDs      []string

	// NatureAttribute is the nature's +1 attribute tag, when present.
	NatureAttribute *rulebook.Attribute

	// Relations keyed by caller-chosen or generated relation ids.
	Bonuses   map[string]Bonus
	Talents   map[string]TalentRelation
	Languages map[string]LanguageRelation
	Inventory map[string]ItemRelation

	// SkillRanks accumulates +1 increases per skill.
	SkillRanks map[rulebook.Skill]int

	// LevelUps is the ordered append-only level history.
	LevelUps []LevelUp
}

// Level is derived from the level-up history.
func (s State) Level() int {
	return len(s.LevelUps)
}

// Tier returns the character's power tier for the current level.
func (s State) Tier() int {
	return rulebook.TierForLevel(s.Level())
}

// HoldsTalent reports whether any relation references the given talent.
func (s State) HoldsTalent(talentID string) bool {
	for _, relation := range s.Talents {
		if relation.TalentID == talentID {
			return true
		}
	}
	return false
}

// SpentTalentPoints sums the costs actually paid across talent relations,
// excluding the relation being replaced when relationID is non-empty.
func (s State) SpentTalentPoints(excludeRelationID string) int {
	total := 0
	for relationID, relation := range s.Talents {
		if excludeRelationID != "" && relationID == excludeRelationID {
			continue
		}
		total += relation.Cost
	}
	return total
}

// RemainingTalentPoints is the budget left at the current level, excluding
// the relation being replaced when relationID is non-empty.
func (s State) RemainingTalentPoints(excludeRelationID string) int {
	return rulebook.TalentPoints(s.Level()) - s.SpentTalentPoints(excludeRelationID)
}

// CanLevelUp reports whether experience satisfies the next level's gate.
func CanLevelUp(level, experience int) bool {
	if level >= rulebook.MaximumLevel {
		return false
	}
	return experience >= rulebook.TotalExperience(level+1)
}

// PermanentScore computes an attribute's permanent score: raw base, tag
// bonuses, lineage-chain bonuses, nature tag, level-up picks, and permanent
// attribute-category bonuses. Unparseable bonus targets are skipped.
func PermanentScore(s State, attribute rulebook.Attribute) int {
	score := s.BaseAttributes.Score(attribute) + s.BaseAttributes.TagBonus(attribute)
	for _, record := range s.LineageAttributeBonuses {
		if record.Attribute == attribute {
			score += record.Value
		}
	}
	if s.NatureAttribute != nil && *s.NatureAttribute == attribute {
		score++
	}
	for _, levelUp := range s.LevelUps {
		if levelUp.Attribute == attribute {
			score++
		}
	}
	for _, bonus := range s.Bonuses {
		if bonus.Category != rulebook.BonusCategoryAttribute || bonus.IsTemporary {
			continue
		}
		target, ok := rulebook.ParseAttribute(bonus.Target)
		if !ok || target != attribute {
			continue
		}
		score += bonus.Value
	}
	return score
}

// TemporaryOverlay sums the temporary attribute-category bonuses applying to
// an attribute. The temporary score is PermanentScore + overlay.
func TemporaryOverlay(s State, attribute rulebook.Attribute) int {
	overlay := 0
	for _, bonus := range s.Bonuses {
		if bonus.Category != rulebook.BonusCategoryAttribute || !bonus.IsTemporary {
			continue
		}
		target, ok := rulebook.ParseAttribute(bonus.Target)
		if !ok || target != attribute {
			continue
		}
		overlay += bonus.Value
	}
	return overlay
}
