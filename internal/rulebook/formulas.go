package rulebook

// Statistic formulas are fixed per statistic and operate on the score and
// modifier of the statistic's governing attribute. Bases and increments stay
// fractional; callers floor only the final accumulated value so later levels
// keep the precision of earlier fractional increments.

// StatisticBase returns the un-floored base value of a statistic.
func StatisticBase(statistic Statistic, score, modifier int) float64 {
	switch statistic {
	case StatisticConstitution:
		return float64(5 * (modifier + 5))
	case StatisticLearning:
		base := float64(5 + 2*modifier)
		if base < 5 {
			base = 5
		}
		return base
	case StatisticInitiative, StatisticPower, StatisticPrecision, StatisticReputation, StatisticStrength:
		return float64(modifier)
	default:
		return 0
	}
}

// StatisticIncrement returns the per-level fractional increment of a
// statistic for the given governing-attribute score and modifier.
func StatisticIncrement(statistic Statistic, score, modifier int) float64 {
	switch statistic {
	case StatisticConstitution:
		return float64(modifier + 5)
	case StatisticLearning:
		increment := float64(1 + modifier)
		if increment < 1 {
			increment = 1
		}
		return increment
	case StatisticReputation:
		return float64(score) / 20
	case StatisticInitiative, StatisticPower, StatisticPrecision, StatisticStrength:
		return float64(score) / 40
	default:
		return 0
	}
}
