// Package errors provides structured error handling for SkillForge domains.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Base attribute errors
	CodeInvalidAttributeScore  Code = "CHARACTER_INVALID_ATTRIBUTE_SCORE"
	CodeInvalidAttributeSum    Code = "CHARACTER_INVALID_ATTRIBUTE_SUM"
	CodeInvalidBestAttribute   Code = "CHARACTER_INVALID_BEST_ATTRIBUTE"
	CodeInvalidWorstAttribute  Code = "CHARACTER_INVALID_WORST_ATTRIBUTE"
	CodeInvalidExtraAttributes Code = "CHARACTER_INVALID_EXTRA_ATTRIBUTES"

	// Creation pipeline errors
	CodeInvalidCharacterLineage             Code = "CREATION_INVALID_LINEAGE"
	CodeCustomizationsNotFound              Code = "CREATION_CUSTOMIZATIONS_NOT_FOUND"
	CodeCustomizationsCannotIncludeGift     Code = "CREATION_CUSTOMIZATIONS_CANNOT_INCLUDE_NATURE_GIFT"
	CodeInvalidCharacterCustomizations      Code = "CREATION_INVALID_CUSTOMIZATIONS"
	CodeAspectsNotFound                     Code = "CREATION_ASPECTS_NOT_FOUND"
	CodeInvalidAspectAttributeSelection     Code = "CREATION_INVALID_ASPECT_ATTRIBUTE_SELECTION"
	CodeCasteHasNoSkillTalent               Code = "CREATION_CASTE_HAS_NO_SKILL_TALENT"
	CodeEducationHasNoSkillTalent           Code = "CREATION_EDUCATION_HAS_NO_SKILL_TALENT"
	CodeInvalidCasteEducationSelection      Code = "CREATION_INVALID_CASTE_EDUCATION_SELECTION"
	CodeInvalidSkillTalentSelection         Code = "CREATION_INVALID_SKILL_TALENT_SELECTION"
	CodeTalentsNotFound                     Code = "CREATION_TALENTS_NOT_FOUND"
	CodeLanguagesCannotIncludeLineage       Code = "CREATION_LANGUAGES_CANNOT_INCLUDE_LINEAGE_LANGUAGE"
	CodeInvalidExtraLanguages               Code = "CREATION_INVALID_EXTRA_LANGUAGES"
	CodeInvalidStartingWealthSelection      Code = "CREATION_INVALID_STARTING_WEALTH_SELECTION"
	CodeInvalidCharacterPhysicalTraits      Code = "CHARACTER_INVALID_PHYSICAL_TRAITS"
	CodeInvalidCharacterName                Code = "CHARACTER_NAME_EMPTY"
	CodeInvalidCreationBaseAttributePayload Code = "CREATION_INVALID_BASE_ATTRIBUTES"

	// Progression errors
	CodeCharacterCannotLevelUpYet Code = "CHARACTER_CANNOT_LEVEL_UP_YET"
	CodeInvalidExperienceGain     Code = "CHARACTER_INVALID_EXPERIENCE_GAIN"

	// Talent errors
	CodeTalentTierExceedsCharacterTier Code = "TALENT_TIER_CANNOT_EXCEED_CHARACTER_TIER"
	CodeRequiredTalentNotPurchased     Code = "TALENT_REQUIRED_TALENT_NOT_PURCHASED"
	CodeTalentNotPurchasableMultiple   Code = "TALENT_CANNOT_BE_PURCHASED_MULTIPLE_TIMES"
	CodeTalentMaximumCostExceeded      Code = "TALENT_MAXIMUM_COST_EXCEEDED"
	CodeNotEnoughRemainingTalentPoints Code = "TALENT_NOT_ENOUGH_REMAINING_POINTS"
	CodeTalentRequiredByDependent      Code = "TALENT_REQUIRED_BY_DEPENDENT"

	// Skill errors
	CodeSkillMaximumRankReached Code = "SKILL_MAXIMUM_RANK_REACHED"
	CodeInvalidSkill            Code = "SKILL_INVALID"

	// Bonus errors
	CodeInvalidBonusCategory Code = "BONUS_INVALID_CATEGORY"
	CodeInvalidBonusTarget   Code = "BONUS_INVALID_TARGET"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps a domain error code to a gRPC status code.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound,
		CodeCustomizationsNotFound,
		CodeAspectsNotFound,
		CodeTalentsNotFound:
		return codes.NotFound
	case CodeCharacterCannotLevelUpYet,
		CodeTalentTierExceedsCharacterTier,
		CodeRequiredTalentNotPurchased,
		CodeTalentNotPurchasableMultiple,
		CodeTalentMaximumCostExceeded,
		CodeNotEnoughRemainingTalentPoints,
		CodeTalentRequiredByDependent,
		CodeSkillMaximumRankReached:
		return codes.FailedPrecondition
	case CodeUnknown:
		return codes.Internal
	default:
		return codes.InvalidArgument
	}
}
