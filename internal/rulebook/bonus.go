package rulebook

import "strings"

// BonusCategory identifies what a bonus applies to.
type BonusCategory string

const (
	BonusCategoryAttribute BonusCategory = "attribute"
	BonusCategorySkill     BonusCategory = "skill"
	BonusCategorySpeed     BonusCategory = "speed"
	BonusCategoryStatistic BonusCategory = "statistic"
)

// ParseBonusCategory returns the canonical bonus category for a label.
func ParseBonusCategory(value string) (BonusCategory, bool) {
	switch BonusCategory(strings.ToLower(strings.TrimSpace(value))) {
	case BonusCategoryAttribute:
		return BonusCategoryAttribute, true
	case BonusCategorySkill:
		return BonusCategorySkill, true
	case BonusCategorySpeed:
		return BonusCategorySpeed, true
	case BonusCategoryStatistic:
		return BonusCategoryStatistic, true
	default:
		return "", false
	}
}

// ValidBonusTarget reports whether target parses against the category's enum.
func ValidBonusTarget(category BonusCategory, target string) bool {
	switch category {
	case BonusCategoryAttribute:
		_, ok := ParseAttribute(target)
		return ok
	case BonusCategorySkill:
		_, ok := ParseSkill(target)
		return ok
	case BonusCategorySpeed:
		_, ok := ParseSpeedKind(target)
		return ok
	case BonusCategoryStatistic:
		_, ok := ParseStatistic(target)
		return ok
	default:
		return false
	}
}
