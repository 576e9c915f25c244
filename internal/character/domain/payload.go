package domain

import "github.com/louisbranch/skillforge/internal/rulebook"

// CreatePayload captures the fully resolved creation context. It is produced
// by the creation pipeline after every resolution step has succeeded and is
// the payload of both the create command and the created event.
type CreatePayload struct {
	CharacterID      string   `json:"character_id"`
	Name             string   `json:"name"`
	PlayerName       string   `json:"player_name,omitempty"`
	LineageID        string   `json:"lineage_id"`
	NatureID         string   `json:"nature_id"`
	CustomizationIDs []string `json:"customization_ids,omitempty"`
	AspectIDs        []string `json:"aspect_ids,omitempty"`
	CasteID          string   `json:"caste_id"`
	EducationID      string   `json:"education_id"`

	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Age    int     `json:"age"`

	BaseAttributes BaseAttributes `json:"base_attributes"`

	LineageAttributeBonuses []AttributeBonusRecord `json:"lineage_attribute_bonuses,omitempty"`
	LineageSpeeds           []SpeedRecord          `json:"lineage_speeds,omitempty"`
	LineageLanguageIDs      []string               `json:"lineage_language_ids,omitempty"`

	NatureAttribute *rulebook.Attribute `json:"nature_attribute,omitempty"`

	// Languages holds the lineage-granted languages plus the extra picks.
	Languages map[string]LanguageRelation `json:"languages,omitempty"`
	// Talents holds the caste/education skill talents plus the extra picks.
	Talents map[string]TalentRelation `json:"talents,omitempty"`
	// Inventory holds the optional starting wealth line.
	Inventory map[string]ItemRelation `json:"inventory,omitempty"`
}

// UpdatePayload carries identity and physical-trait changes. Nil fields are
// left untouched.
type UpdatePayload struct {
	CharacterID string   `json:"character_id"`
	Name        *string  `json:"name,omitempty"`
	PlayerName  *string  `json:"player_name,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Age         *int     `json:"age,omitempty"`
}

// ExperienceGainedPayload records an experience award.
type ExperienceGainedPayload struct {
	CharacterID string `json:"character_id"`
	Amount      int    `json:"amount"`
	Total       int    `json:"total"`
}

// LeveledUpPayload records one level gained and its frozen increments.
type LeveledUpPayload struct {
	CharacterID string                         `json:"character_id"`
	Attribute   rulebook.Attribute             `json:"attribute"`
	Level       int                            `json:"level"`
	Increments  map[rulebook.Statistic]float64 `json:"increments"`
}

// LevelUpCancelledPayload records removal of the most recent level-up.
type LevelUpCancelledPayload struct {
	CharacterID string `json:"character_id"`
	Level       int    `json:"level"`
}

// SkillRankIncreasedPayload records a +1 rank purchase.
type SkillRankIncreasedPayload struct {
	CharacterID string         `json:"character_id"`
	Skill       rulebook.Skill `json:"skill"`
	Rank        int            `json:"rank"`
}

// BonusSetPayload upserts a bonus by relation id.
type BonusSetPayload struct {
	CharacterID string `json:"character_id"`
	BonusID     string `json:"bonus_id,omitempty"`
	Bonus       Bonus  `json:"bonus"`
}

// BonusRemovedPayload removes a bonus by relation id.
type BonusRemovedPayload struct {
	CharacterID string `json:"character_id"`
	BonusID     string `json:"bonus_id"`
}

// TalentSetPayload upserts a talent relation. Talent carries the resolved
// definition; Cost, when set, overrides the nominal cost to apply discounts.
type TalentSetPayload struct {
	CharacterID string          `json:"character_id"`
	RelationID  string          `json:"relation_id,omitempty"`
	Talent      rulebook.Talent `json:"talent"`
	Cost        *int            `json:"cost,omitempty"`
	Precision   string          `json:"precision,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// TalentRemovedPayload removes a talent relation.
type TalentRemovedPayload struct {
	CharacterID string `json:"character_id"`
	RelationID  string `json:"relation_id"`
}

// LanguageSetPayload upserts a language relation.
type LanguageSetPayload struct {
	CharacterID string `json:"character_id"`
	RelationID  string `json:"relation_id,omitempty"`
	LanguageID  string `json:"language_id"`
	Notes       string `json:"notes,omitempty"`
}

// LanguageRemovedPayload removes a language relation.
type LanguageRemovedPayload struct {
	CharacterID string `json:"character_id"`
	RelationID  string `json:"relation_id"`
}

// ItemSetPayload upserts an inventory line.
type ItemSetPayload struct {
	CharacterID string       `json:"character_id"`
	RelationID  string       `json:"relation_id,omitempty"`
	Item        ItemRelation `json:"item"`
}

// ItemRemovedPayload removes an inventory line.
type ItemRemovedPayload struct {
	CharacterID string `json:"character_id"`
	RelationID  string `json:"relation_id"`
}

// VitalsUpdatedPayload patches condition counters. Nil fields are untouched.
type VitalsUpdatedPayload struct {
	CharacterID         string `json:"character_id"`
	Vitality            *int   `json:"vitality,omitempty"`
	Stamina             *int   `json:"stamina,omitempty"`
	BloodAlcoholContent *int   `json:"blood_alcohol_content,omitempty"`
	Intoxication        *int   `json:"intoxication,omitempty"`
}
