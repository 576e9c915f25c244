package rulebook

import "strings"

// Statistic identifies one of the seven derived statistics.
type Statistic string

const (
	StatisticConstitution Statistic = "constitution"
	StatisticInitiative   Statistic = "initiative"
	StatisticLearning     Statistic = "learning"
	StatisticPower        Statistic = "power"
	StatisticPrecision    Statistic = "precision"
	StatisticReputation   Statistic = "reputation"
	StatisticStrength     Statistic = "strength"
)

// Statistics lists every statistic in canonical order.
func Statistics() []Statistic {
	return []Statistic{
		StatisticConstitution,
		StatisticInitiative,
		StatisticLearning,
		StatisticPower,
		StatisticPrecision,
		StatisticReputation,
		StatisticStrength,
	}
}

// ParseStatistic returns the canonical statistic for a label.
func ParseStatistic(value string) (Statistic, bool) {
	candidate := Statistic(strings.ToLower(strings.TrimSpace(value)))
	for _, statistic := range Statistics() {
		if candidate == statistic {
			return statistic, true
		}
	}
	return "", false
}

// StatisticAttribute returns the attribute each statistic is computed from.
func StatisticAttribute(statistic Statistic) Attribute {
	switch statistic {
	case StatisticConstitution:
		return AttributeVigor
	case StatisticInitiative:
		return AttributeSensitivity
	case StatisticLearning:
		return AttributeIntellect
	case StatisticPower:
		return AttributeSpirit
	case StatisticPrecision:
		return AttributeCoordination
	case StatisticReputation:
		return AttributePresence
	case StatisticStrength:
		return AttributeAgility
	default:
		return ""
	}
}
