// Package rulebook defines the reference data model shared by character
// creation and progression: attribute/skill/statistic enums, lineages,
// natures, aspects, castes, educations, talents, and the progression tables.
package rulebook

import "strings"

// Attribute identifies one of the seven character attributes.
type Attribute string

const (
	AttributeAgility      Attribute = "agility"
	AttributeCoordination Attribute = "coordination"
	AttributeIntellect    Attribute = "intellect"
	AttributePresence     Attribute = "presence"
	AttributeSensitivity  Attribute = "sensitivity"
	AttributeSpirit       Attribute = "spirit"
	AttributeVigor        Attribute = "vigor"
)

// Attributes lists every attribute in canonical order.
func Attributes() []Attribute {
	return []Attribute{
		AttributeAgility,
		AttributeCoordination,
		AttributeIntellect,
		AttributePresence,
		AttributeSensitivity,
		AttributeSpirit,
		AttributeVigor,
	}
}

// ParseAttribute returns the canonical attribute for a label.
func ParseAttribute(value string) (Attribute, bool) {
	switch Attribute(strings.ToLower(strings.TrimSpace(value))) {
	case AttributeAgility:
		return AttributeAgility, true
	case AttributeCoordination:
		return AttributeCoordination, true
	case AttributeIntellect:
		return AttributeIntellect, true
	case AttributePresence:
		return AttributePresence, true
	case AttributeSensitivity:
		return AttributeSensitivity, true
	case AttributeSpirit:
		return AttributeSpirit, true
	case AttributeVigor:
		return AttributeVigor, true
	default:
		return "", false
	}
}

// AttributeModifier maps an attribute score to its modifier. The same table
// applies to permanent and temporary scores; scores are never clamped.
func AttributeModifier(score int) int {
	// Integer division truncates toward zero, so shift negatives to floor.
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
