package domain

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/skillforge/internal/character/event"
	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// FoldHandledTypes lists the event types Fold applies. Streams may carry
// other entity types; callers filter before folding.
func FoldHandledTypes() []event.Type {
	return []event.Type{
		event.TypeCharacterCreated,
		event.TypeCharacterUpdated,
		event.TypeExperienceGained,
		event.TypeLeveledUp,
		event.TypeLevelUpCancelled,
		event.TypeSkillRankIncreased,
		event.TypeBonusSet,
		event.TypeBonusRemoved,
		event.TypeTalentSet,
		event.TypeTalentRemoved,
		event.TypeLanguageSet,
		event.TypeLanguageRemoved,
		event.TypeItemSet,
		event.TypeItemRemoved,
		event.TypeVitalsUpdated,
	}
}

// Fold applies a single event to the state and returns the next state.
// Unknown event types are returned unchanged so that streams can grow new
// types without breaking old readers.
func Fold(state State, evt event.Event) (State, error) {
	switch evt.Type {
	case event.TypeCharacterCreated:
		return foldCreated(state, evt)
	case event.TypeCharacterUpdated:
		return foldUpdated(state, evt)
	case event.TypeExperienceGained:
		return foldExperienceGained(state, evt)
	case event.TypeLeveledUp:
		return foldLeveledUp(state, evt)
	case event.TypeLevelUpCancelled:
		return foldLevelUpCancelled(state, evt)
	case event.TypeSkillRankIncreased:
		return foldSkillRankIncreased(state, evt)
	case event.TypeBonusSet:
		return foldBonusSet(state, evt)
	case event.TypeBonusRemoved:
		return foldBonusRemoved(state, evt)
	case event.TypeTalentSet:
		return foldTalentSet(state, evt)
	case event.TypeTalentRemoved:
		return foldTalentRemoved(state, evt)
	case event.TypeLanguageSet:
		return foldLanguageSet(state, evt)
	case event.TypeLanguageRemoved:
		return foldLanguageRemoved(state, evt)
	case event.TypeItemSet:
		return foldItemSet(state, evt)
	case event.TypeItemRemoved:
		return foldItemRemoved(state, evt)
	case event.TypeVitalsUpdated:
		return foldVitalsUpdated(state, evt)
	default:
		return state, nil
	}
}

func decodePayload(evt event.Event, target any) error {
	if err := json.Unmarshal(evt.PayloadJSON, target); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, fmt.Sprintf("decode %s payload", evt.Type), err)
	}
	return nil
}

func foldCreated(state State, evt event.Event) (State, error) {
	var payload CreatePayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	next := State{
		Created:     true,
		CharacterID: payload.CharacterID,
		WorldID:     evt.WorldID,
		Name:        payload.Name,
		PlayerName:  payload.PlayerName,

		LineageID:        payload.LineageID,
		NatureID:         payload.NatureID,
		CustomizationIDs: append([]string(nil), payload.CustomizationIDs...),
		AspectIDs:        append([]string(nil), payload.AspectIDs...),
		CasteID:          payload.CasteID,
		EducationID:      payload.EducationID,

		Height: payload.Height,
		Weight: payload.Weight,
		Age:    payload.Age,

		BaseAttributes:          payload.BaseAttributes,
		LineageAttributeBonuses: append([]AttributeBonusRecord(nil), payload.LineageAttributeBonuses...),
		LineageSpeeds:           append([]SpeedRecord(nil), payload.LineageSpeeds...),
		LineageLanguageIDs:      append([]string(nil), payload.LineageLanguageIDs...),
		NatureAttribute:         payload.NatureAttribute,

		Bonuses:    map[string]Bonus{},
		Talents:    map[string]TalentRelation{},
		Languages:  map[string]LanguageRelation{},
		Inventory:  map[string]ItemRelation{},
		SkillRanks: map[rulebook.Skill]int{},
	}
	for relationID, relation := range payload.Languages {
		next.Languages[relationID] = relation
	}
	for relationID, relation := range payload.Talents {
		next.Talents[relationID] = relation
	}
	for relationID, relation := range payload.Inventory {
		next.Inventory[relationID] = relation
	}
	return next, nil
}

func foldUpdated(state State, evt event.Event) (State, error) {
	var payload UpdatePayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	if payload.Name != nil {
		state.Name = *payload.Name
	}
	if payload.PlayerName != nil {
		state.PlayerName = *payload.PlayerName
	}
	if payload.Height != nil {
		state.Height = *payload.Height
	}
	if payload.Weight != nil {
		state.Weight = *payload.Weight
	}
	if payload.Age != nil {
		state.Age = *payload.Age
	}
	return state, nil
}

func foldExperienceGained(state State, evt event.Event) (State, error) {
	var payload ExperienceGainedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	state.Experience += payload.Amount
	return state, nil
}

func foldLeveledUp(state State, evt event.Event) (State, error) {
	var payload LeveledUpPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	increments := make(map[rulebook.Statistic]float64, len(payload.Increments))
	for statistic, increment := range payload.Increments {
		increments[statistic] = increment
	}
	state.LevelUps = append(append([]LevelUp(nil), state.LevelUps...), LevelUp{
		Attribute:  payload.Attribute,
		Increments: increments,
	})
	return state, nil
}

func foldLevelUpCancelled(state State, evt event.Event) (State, error) {
	if len(state.LevelUps) == 0 {
		return state, nil
	}
	state.LevelUps = append([]LevelUp(nil), state.LevelUps[:len(state.LevelUps)-1]...)
	return state, nil
}

func foldSkillRankIncreased(state State, evt event.Event) (State, error) {
	var payload SkillRankIncreasedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	ranks := make(map[rulebook.Skill]int, len(state.SkillRanks)+1)
	for skill, rank := range state.SkillRanks {
		ranks[skill] = rank
	}
	ranks[payload.Skill] = payload.Rank
	state.SkillRanks = ranks
	return state, nil
}

func foldBonusSet(state State, evt event.Event) (State, error) {
	var payload BonusSetPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	bonuses := make(map[string]Bonus, len(state.Bonuses)+1)
	for relationID, bonus := range state.Bonuses {
		bonuses[relationID] = bonus
	}
	bonuses[payload.BonusID] = payload.Bonus
	state.Bonuses = bonuses
	return state, nil
}

func foldBonusRemoved(state State, evt event.Event) (State, error) {
	var payload BonusRemovedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	bonuses := make(map[string]Bonus, len(state.Bonuses))
	for relationID, bonus := range state.Bonuses {
		if relationID == payload.BonusID {
			continue
		}
		bonuses[relationID] = bonus
	}
	state.Bonuses = bonuses
	return state, nil
}

func foldTalentSet(state State, evt event.Event) (State, error) {
	var payload TalentSetPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	cost := payload.Talent.Cost()
	if payload.Cost != nil {
		cost = *payload.Cost
	}
	talents := make(map[string]TalentRelation, len(state.Talents)+1)
	for relationID, relation := range state.Talents {
		talents[relationID] = relation
	}
	talents[payload.RelationID] = TalentRelation{
		TalentID:         payload.Talent.ID,
		Cost:             cost,
		RequiredTalentID: payload.Talent.RequiredTalentID,
		Precision:        payload.Precision,
		Notes:            payload.Notes,
	}
	state.Talents = talents
	return state, nil
}

func foldTalentRemoved(state State, evt event.Event) (State, error) {
	var payload TalentRemovedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	talents := make(map[string]TalentRelation, len(state.Talents))
	for relationID, relation := range state.Talents {
		if relationID == payload.RelationID {
			continue
		}
		talents[relationID] = relation
	}
	state.Talents = talents
	return state, nil
}

func foldLanguageSet(state State, evt event.Event) (State, error) {
	var payload LanguageSetPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	languages := make(map[string]LanguageRelation, len(state.Languages)+1)
	for relationID, relation := range state.Languages {
		languages[relationID] = relation
	}
	languages[payload.RelationID] = LanguageRelation{
		LanguageID: payload.LanguageID,
		Notes:      payload.Notes,
	}
	state.Languages = languages
	return state, nil
}

func foldLanguageRemoved(state State, evt event.Event) (State, error) {
	var payload LanguageRemovedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	languages := make(map[string]LanguageRelation, len(state.Languages))
	for relationID, relation := range state.Languages {
		if relationID == payload.RelationID {
			continue
		}
		languages[relationID] = relation
	}
	state.Languages = languages
	return state, nil
}

func foldItemSet(state State, evt event.Event) (State, error) {
	var payload ItemSetPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	inventory := make(map[string]ItemRelation, len(state.Inventory)+1)
	for relationID, relation := range state.Inventory {
		inventory[relationID] = relation
	}
	inventory[payload.RelationID] = payload.Item
	state.Inventory = inventory
	return state, nil
}

func foldItemRemoved(state State, evt event.Event) (State, error) {
	var payload ItemRemovedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	inventory := make(map[string]ItemRelation, len(state.Inventory))
	for relationID, relation := range state.Inventory {
		if relationID == payload.RelationID {
			continue
		}
		inventory[relationID] = relation
	}
	state.Inventory = inventory
	return state, nil
}

func foldVitalsUpdated(state State, evt event.Event) (State, error) {
	var payload VitalsUpdatedPayload
	if err := decodePayload(evt, &payload); err != nil {
		return state, err
	}
	if payload.Vitality != nil {
		state.Vitality = *payload.Vitality
	}
	if payload.Stamina != nil {
		state.Stamina = *payload.Stamina
	}
	if payload.BloodAlcoholContent != nil {
		state.BloodAlcoholContent = *payload.BloodAlcoholContent
	}
	if payload.Intoxication != nil {
		state.Intoxication = *payload.Intoxication
	}
	return state, nil
}
