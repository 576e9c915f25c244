package rulebook

import "strings"

// Skill identifies a character skill.
type Skill string

const (
	SkillAcrobatics    Skill = "acrobatics"
	SkillAthletics     Skill = "athletics"
	SkillCraft         Skill = "craft"
	SkillDeception     Skill = "deception"
	SkillDiplomacy     Skill = "diplomacy"
	SkillDiscipline    Skill = "discipline"
	SkillInsight       Skill = "insight"
	SkillInvestigation Skill = "investigation"
	SkillKnowledge     Skill = "knowledge"
	SkillLinguistics   Skill = "linguistics"
	SkillMedicine      Skill = "medicine"
	SkillMelee         Skill = "melee"
	SkillOccultism     Skill = "occultism"
	SkillOrientation   Skill = "orientation"
	SkillPerception    Skill = "perception"
	SkillPerformance   Skill = "performance"
	SkillResistance    Skill = "resistance"
	SkillStealth       Skill = "stealth"
	SkillSurvival      Skill = "survival"
	SkillThievery      Skill = "thievery"
)

// Skills lists every skill in canonical order.
func Skills() []Skill {
	return []Skill{
		SkillAcrobatics, SkillAthletics, SkillCraft, SkillDeception,
		SkillDiplomacy, SkillDiscipline, SkillInsight, SkillInvestigation,
		SkillKnowledge, SkillLinguistics, SkillMedicine, SkillMelee,
		SkillOccultism, SkillOrientation, SkillPerception, SkillPerformance,
		SkillResistance, SkillStealth, SkillSurvival, SkillThievery,
	}
}

// ParseSkill returns the canonical skill for a label.
func ParseSkill(value string) (Skill, bool) {
	candidate := Skill(strings.ToLower(strings.TrimSpace(value)))
	for _, skill := range Skills() {
		if candidate == skill {
			return skill, true
		}
	}
	return "", false
}
