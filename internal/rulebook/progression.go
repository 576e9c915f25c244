package rulebook

// MaximumLevel is the highest level a character can reach.
const MaximumLevel = 20

// totalExperience holds the cumulative experience required to reach level
// n (1-based index n-1). The curve doubles the previous total plus 100.
var totalExperience = [MaximumLevel]int{
	100,
	300,
	700,
	1500,
	3100,
	6300,
	12700,
	25500,
	51100,
	102300,
	204700,
	409500,
	819100,
	1638300,
	3276700,
	6553500,
	13107100,
	26214300,
	52428700,
	104857500,
}

// TotalExperience returns the cumulative experience required to reach the
// given level. Levels at or below 0 require none; levels beyond the maximum
// return the level-20 requirement.
func TotalExperience(level int) int {
	if level <= 0 {
		return 0
	}
	if level > MaximumLevel {
		level = MaximumLevel
	}
	return totalExperience[level-1]
}

// TierForLevel maps a character level to its power tier (0..3).
func TierForLevel(level int) int {
	switch {
	case level < 5:
		return 0
	case level < 10:
		return 1
	case level < 15:
		return 2
	default:
		return 3
	}
}

// MaximumSkillRank returns the skill-rank ceiling for a character tier.
func MaximumSkillRank(tier int) int {
	switch {
	case tier <= 0:
		return 2
	case tier == 1:
		return 5
	case tier == 2:
		return 9
	default:
		return 14
	}
}

// TalentPoints returns the total talent-point budget at a given level.
func TalentPoints(level int) int {
	if level < 0 {
		level = 0
	}
	return 8 + 4*level
}
