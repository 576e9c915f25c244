package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/skillforge/internal/character/command"
	"github.com/louisbranch/skillforge/internal/character/event"
	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

const (
	CommandTypeCreate            command.Type = "character.create"
	CommandTypeUpdate            command.Type = "character.update"
	CommandTypeGainExperience    command.Type = "character.gain_experience"
	CommandTypeLevelUp           command.Type = "character.level_up"
	CommandTypeCancelLevelUp     command.Type = "character.cancel_level_up"
	CommandTypeSetBonus          command.Type = "character.set_bonus"
	CommandTypeRemoveBonus       command.Type = "character.remove_bonus"
	CommandTypeSetTalent         command.Type = "character.set_talent"
	CommandTypeRemoveTalent      command.Type = "character.remove_talent"
	CommandTypeSetLanguage       command.Type = "character.set_language"
	CommandTypeRemoveLanguage    command.Type = "character.remove_language"
	CommandTypeIncreaseSkillRank command.Type = "character.increase_skill_rank"
	CommandTypeSetItem           command.Type = "character.set_item"
	CommandTypeRemoveItem        command.Type = "character.remove_item"
	CommandTypeUpdateVitals      command.Type = "character.update_vitals"

	rejectionCodeCharacterAlreadyExists = "CHARACTER_ALREADY_EXISTS"
	rejectionCodeCharacterNotCreated    = "CHARACTER_NOT_CREATED"
	rejectionCodeCharacterIDRequired    = "CHARACTER_ID_REQUIRED"
	rejectionCodeRelationIDRequired     = "CHARACTER_RELATION_ID_REQUIRED"
	rejectionCodeRelationNotFound       = "CHARACTER_RELATION_NOT_FOUND"
)

func rejectDecode(cmd command.Command, err error) command.Decision {
	return command.Reject(command.Rejection{
		Code:    command.RejectionCodePayloadDecodeFailed,
		Message: fmt.Sprintf("decode %s payload: %v", cmd.Type, err),
	})
}

func rejectDomain(err *apperrors.Error) command.Decision {
	return command.Reject(command.Rejection{
		Code:     string(err.Code),
		Message:  err.Message,
		Metadata: err.Metadata,
	})
}

// Decide returns the decision for a character command against current state.
//
// Every accepted command emits exactly one event; rejections carry the domain
// error code plus metadata so callers can render precise messages. Decide is
// pure: reference data needed for validation travels inside the command
// payload, resolved by the caller.
func Decide(state State, cmd command.Command, now func() time.Time) command.Decision {
	if now == nil {
		now = time.Now
	}
	switch cmd.Type {
	case CommandTypeCreate:
		return decideCreate(state, cmd, now)
	case CommandTypeUpdate:
		return decideUpdate(state, cmd, now)
	case CommandTypeGainExperience:
		return decideGainExperience(state, cmd, now)
	case CommandTypeLevelUp:
		return decideLevelUp(state, cmd, now)
	case CommandTypeCancelLevelUp:
		return decideCancelLevelUp(state, cmd, now)
	case CommandTypeSetBonus:
		return decideSetBonus(state, cmd, now)
	case CommandTypeRemoveBonus:
		return decideRemoveBonus(state, cmd, now)
	case CommandTypeSetTalent:
		return decideSetTalent(state, cmd, now)
	case CommandTypeRemoveTalent:
		return decideRemoveTalent(state, cmd, now)
	case CommandTypeSetLanguage:
		return decideSetLanguage(state, cmd, now)
	case CommandTypeRemoveLanguage:
		return decideRemoveLanguage(state, cmd, now)
	case CommandTypeIncreaseSkillRank:
		return decideIncreaseSkillRank(state, cmd, now)
	case CommandTypeSetItem:
		return decideSetItem(state, cmd, now)
	case CommandTypeRemoveItem:
		return decideRemoveItem(state, cmd, now)
	case CommandTypeUpdateVitals:
		return decideUpdateVitals(state, cmd, now)
	default:
		return command.Reject(command.Rejection{
			Code:    command.RejectionCodeCommandTypeUnsupported,
			Message: fmt.Sprintf("command type %s is not supported by character decider", cmd.Type),
		})
	}
}

func decideCreate(state State, cmd command.Command, now func() time.Time) command.Decision {
	if state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterAlreadyExists,
			Message: "character already exists",
		})
	}
	var payload CreatePayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	payload.CharacterID = strings.TrimSpace(payload.CharacterID)
	if payload.CharacterID == "" {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterIDRequired,
			Message: "character id is required",
		})
	}
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		return rejectDomain(apperrors.New(apperrors.CodeInvalidCharacterName, "character name is required"))
	}
	if payload.Height <= 0 || payload.Weight <= 0 || payload.Age <= 0 {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidCharacterPhysicalTraits,
			"height, weight, and age must be positive",
			map[string]string{
				"Height": fmt.Sprintf("%g", payload.Height),
				"Weight": fmt.Sprintf("%g", payload.Weight),
				"Age":    fmt.Sprintf("%d", payload.Age),
			},
		))
	}
	if err := payload.BaseAttributes.Validate(); err != nil {
		return rejectDomain(err.(*apperrors.Error))
	}

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeCharacterCreated, payload.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideUpdate(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload UpdatePayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	if payload.Name != nil {
		trimmed := strings.TrimSpace(*payload.Name)
		if trimmed == "" {
			return rejectDomain(apperrors.New(apperrors.CodeInvalidCharacterName, "character name is required"))
		}
		payload.Name = &trimmed
	}
	if (payload.Height != nil && *payload.Height <= 0) ||
		(payload.Weight != nil && *payload.Weight <= 0) ||
		(payload.Age != nil && *payload.Age <= 0) {
		return rejectDomain(apperrors.New(apperrors.CodeInvalidCharacterPhysicalTraits, "height, weight, and age must be positive"))
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeCharacterUpdated, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideGainExperience(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload ExperienceGainedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	if payload.Amount <= 0 {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidExperienceGain,
			"experience amount must be positive",
			map[string]string{"Amount": fmt.Sprintf("%d", payload.Amount)},
		))
	}
	payload.CharacterID = state.CharacterID
	payload.Total = state.Experience + payload.Amount

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeExperienceGained, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideLevelUp(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload LeveledUpPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	attribute, ok := rulebook.ParseAttribute(string(payload.Attribute))
	if !ok {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidAttributeScore,
			"level-up attribute is invalid",
			map[string]string{"Attribute": string(payload.Attribute)},
		))
	}
	if !CanLevelUp(state.Level(), state.Experience) {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeCharacterCannotLevelUpYet,
			"experience does not satisfy the next level requirement",
			map[string]string{
				"Level":              fmt.Sprintf("%d", state.Level()),
				"Experience":         fmt.Sprintf("%d", state.Experience),
				"RequiredExperience": fmt.Sprintf("%d", rulebook.TotalExperience(state.Level()+1)),
			},
		))
	}

	// Increments freeze the attributes as they stand before this level's +1.
	increments := make(map[rulebook.Statistic]float64, len(rulebook.Statistics()))
	for _, statistic := range rulebook.Statistics() {
		governing := rulebook.StatisticAttribute(statistic)
		score := PermanentScore(state, governing)
		modifier := rulebook.AttributeModifier(score)
		increments[statistic] = rulebook.StatisticIncrement(statistic, score, modifier)
	}

	payload.CharacterID = state.CharacterID
	payload.Attribute = attribute
	payload.Level = state.Level() + 1
	payload.Increments = increments

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeLeveledUp, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideCancelLevelUp(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	// Cancelling with no recorded level-up is a no-op, but it still
	// journals one event so the attempt is replay-visible.
	payload := LevelUpCancelledPayload{CharacterID: state.CharacterID, Level: state.Level()}

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeLevelUpCancelled, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideSetBonus(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload BonusSetPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	payload.BonusID = strings.TrimSpace(payload.BonusID)
	if payload.BonusID == "" {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeRelationIDRequired,
			Message: "bonus id is required",
		})
	}
	category, ok := rulebook.ParseBonusCategory(string(payload.Bonus.Category))
	if !ok {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidBonusCategory,
			"bonus category is invalid",
			map[string]string{"Category": string(payload.Bonus.Category)},
		))
	}
	// Targets are validated at write time; derived views remain lenient on
	// replayed streams whose targets no longer parse.
	if !rulebook.ValidBonusTarget(category, payload.Bonus.Target) {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidBonusTarget,
			fmt.Sprintf("target %q does not parse against the %s enum", payload.Bonus.Target, category),
			map[string]string{
				"Category": string(category),
				"Target":   payload.Bonus.Target,
			},
		))
	}
	payload.CharacterID = state.CharacterID
	payload.Bonus.Category = category
	payload.Bonus.Target = strings.ToLower(strings.TrimSpace(payload.Bonus.Target))

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeBonusSet, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideRemoveBonus(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload BonusRemovedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	if _, ok := state.Bonuses[payload.BonusID]; !ok {
		return command.Reject(command.Rejection{
			Code:     rejectionCodeRelationNotFound,
			Message:  "bonus relation not found",
			Metadata: map[string]string{"BonusID": payload.BonusID},
		})
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeBonusRemoved, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideSetTalent(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload TalentSetPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	payload.RelationID = strings.TrimSpace(payload.RelationID)
	if payload.RelationID == "" {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeRelationIDRequired,
			Message: "talent relation id is required",
		})
	}
	talent := payload.Talent
	if strings.TrimSpace(talent.ID) == "" {
		return rejectDomain(apperrors.New(apperrors.CodeTalentsNotFound, "talent definition is required"))
	}

	// Validation order: tier, prerequisite, multiple purchase, maximum cost,
	// then remaining budget.
	if talent.Tier > state.Tier() {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeTalentTierExceedsCharacterTier,
			fmt.Sprintf("talent tier %d exceeds character tier %d", talent.Tier, state.Tier()),
			map[string]string{
				"TalentTier":    fmt.Sprintf("%d", talent.Tier),
				"CharacterTier": fmt.Sprintf("%d", state.Tier()),
			},
		))
	}
	if talent.RequiredTalentID != "" && !state.HoldsTalent(talent.RequiredTalentID) {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeRequiredTalentNotPurchased,
			"required talent has not been purchased",
			map[string]string{"RequiredTalentID": talent.RequiredTalentID},
		))
	}
	if !talent.AllowMultiplePurchases {
		for relationID, relation := range state.Talents {
			if relation.TalentID == talent.ID && relationID != payload.RelationID {
				return rejectDomain(apperrors.WithMetadata(
					apperrors.CodeTalentNotPurchasableMultiple,
					"talent cannot be purchased multiple times",
					map[string]string{"TalentID": talent.ID},
				))
			}
		}
	}
	cost := talent.Cost()
	if payload.Cost != nil {
		cost = *payload.Cost
	}
	if talent.MaximumCost != nil && cost > *talent.MaximumCost {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeTalentMaximumCostExceeded,
			fmt.Sprintf("cost %d exceeds the talent's maximum cost %d", cost, *talent.MaximumCost),
			map[string]string{
				"Cost":        fmt.Sprintf("%d", cost),
				"MaximumCost": fmt.Sprintf("%d", *talent.MaximumCost),
			},
		))
	}
	remaining := state.RemainingTalentPoints(payload.RelationID)
	if cost > remaining {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeNotEnoughRemainingTalentPoints,
			fmt.Sprintf("cost %d exceeds the %d remaining talent points", cost, remaining),
			map[string]string{
				"Cost":            fmt.Sprintf("%d", cost),
				"RemainingPoints": fmt.Sprintf("%d", remaining),
			},
		))
	}
	payload.CharacterID = state.CharacterID
	payload.Cost = &cost

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeTalentSet, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideRemoveTalent(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload TalentRemovedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	relation, ok := state.Talents[payload.RelationID]
	if !ok {
		return command.Reject(command.Rejection{
			Code:     rejectionCodeRelationNotFound,
			Message:  "talent relation not found",
			Metadata: map[string]string{"RelationID": payload.RelationID},
		})
	}
	// Removing a prerequisite is forbidden while a dependent still relies on
	// it and no other relation provides the same talent.
	for relationID, other := range state.Talents {
		if relationID == payload.RelationID || other.RequiredTalentID != relation.TalentID {
			continue
		}
		stillProvided := false
		for providerID, provider := range state.Talents {
			if providerID != payload.RelationID && provider.TalentID == relation.TalentID {
				stillProvided = true
				break
			}
		}
		if !stillProvided {
			return rejectDomain(apperrors.WithMetadata(
				apperrors.CodeTalentRequiredByDependent,
				"talent is required by another purchased talent",
				map[string]string{
					"TalentID":          relation.TalentID,
					"DependentTalentID": other.TalentID,
					"DependentRelation": relationID,
				},
			))
		}
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeTalentRemoved, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideSetLanguage(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload LanguageSetPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	payload.RelationID = strings.TrimSpace(payload.RelationID)
	if payload.RelationID == "" {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeRelationIDRequired,
			Message: "language relation id is required",
		})
	}
	if strings.TrimSpace(payload.LanguageID) == "" {
		return rejectDomain(apperrors.New(apperrors.CodeNotFound, "language id is required"))
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeLanguageSet, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideRemoveLanguage(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload LanguageRemovedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	if _, ok := state.Languages[payload.RelationID]; !ok {
		return command.Reject(command.Rejection{
			Code:     rejectionCodeRelationNotFound,
			Message:  "language relation not found",
			Metadata: map[string]string{"RelationID": payload.RelationID},
		})
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeLanguageRemoved, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideIncreaseSkillRank(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload SkillRankIncreasedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	skill, ok := rulebook.ParseSkill(string(payload.Skill))
	if !ok {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeInvalidSkill,
			"skill is invalid",
			map[string]string{"Skill": string(payload.Skill)},
		))
	}
	next := state.SkillRanks[skill] + 1
	maximum := rulebook.MaximumSkillRank(state.Tier())
	if next > maximum {
		return rejectDomain(apperrors.WithMetadata(
			apperrors.CodeSkillMaximumRankReached,
			fmt.Sprintf("skill %s is already at the tier %d ceiling of %d", skill, state.Tier(), maximum),
			map[string]string{
				"Skill":       string(skill),
				"Rank":        fmt.Sprintf("%d", state.SkillRanks[skill]),
				"MaximumRank": fmt.Sprintf("%d", maximum),
			},
		))
	}
	payload.CharacterID = state.CharacterID
	payload.Skill = skill
	payload.Rank = next

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeSkillRankIncreased, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideSetItem(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload ItemSetPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	payload.RelationID = strings.TrimSpace(payload.RelationID)
	if payload.RelationID == "" {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeRelationIDRequired,
			Message: "inventory relation id is required",
		})
	}
	if strings.TrimSpace(payload.Item.ItemID) == "" {
		return rejectDomain(apperrors.New(apperrors.CodeNotFound, "item id is required"))
	}
	if payload.Item.Quantity < 0 {
		return rejectDomain(apperrors.New(apperrors.CodeNotFound, "item quantity must be non-negative"))
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeItemSet, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideRemoveItem(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload ItemRemovedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	if _, ok := state.Inventory[payload.RelationID]; !ok {
		return command.Reject(command.Rejection{
			Code:     rejectionCodeRelationNotFound,
			Message:  "inventory relation not found",
			Metadata: map[string]string{"RelationID": payload.RelationID},
		})
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeItemRemoved, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}

func decideUpdateVitals(state State, cmd command.Command, now func() time.Time) command.Decision {
	if !state.Created {
		return command.Reject(command.Rejection{
			Code:    rejectionCodeCharacterNotCreated,
			Message: "character not created",
		})
	}
	var payload VitalsUpdatedPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
		return rejectDecode(cmd, err)
	}
	for name, value := range map[string]*int{
		"vitality":              payload.Vitality,
		"stamina":               payload.Stamina,
		"blood_alcohol_content": payload.BloodAlcoholContent,
		"intoxication":          payload.Intoxication,
	} {
		if value != nil && *value < 0 {
			return rejectDomain(apperrors.WithMetadata(
				apperrors.CodeInvalidCharacterPhysicalTraits,
				fmt.Sprintf("%s must be non-negative", name),
				map[string]string{"Field": name, "Value": fmt.Sprintf("%d", *value)},
			))
		}
	}
	payload.CharacterID = state.CharacterID

	payloadJSON, _ := json.Marshal(payload)
	evt := command.NewEvent(cmd, event.TypeVitalsUpdated, state.CharacterID, payloadJSON, now().UTC())
	return command.Accept(evt)
}
