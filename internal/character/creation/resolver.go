package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/skillforge/internal/character/domain"
	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
	"github.com/louisbranch/skillforge/internal/platform/id"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// Request carries every creation choice a caller makes. The seven raw
// attribute scores come with the Best/Worst picks and the optional and
// lineage-extra tags; mandatory tags are derived from the selected aspects.
type Request struct {
	WorldID     string
	CharacterID string

	Name       string
	PlayerName string
	Height     float64
	Weight     float64
	Age        int

	LineageID        string
	NatureID         string
	CustomizationIDs []string
	AspectIDs        []string
	CasteID          string
	EducationID      string

	Agility      int
	Coordination int
	Intellect    int
	Presence     int
	Sensitivity  int
	Spirit       int
	Vigor        int
	Best         rulebook.Attribute
	Worst        rulebook.Attribute
	Optional     []rulebook.Attribute
	Extra        []rulebook.Attribute

	// TalentIDs selects extra talents beyond the caste and education skill
	// talents, which are granted automatically.
	TalentIDs []string
	// LanguageIDs selects extra languages beyond the lineage-chain grants.
	LanguageIDs []string

	// StartingWealthItemID optionally references a unit-value money item;
	// StartingWealthAmount is the rolled amount credited at creation.
	StartingWealthItemID string
	StartingWealthAmount float64
}

// Resolver runs the creation-resolution sequence. Each step fails
// independently with a structured error naming the offending field; no step
// writes anything, so cancellation mid-sequence leaves no partial state.
type Resolver struct {
	Stores Stores
	// NewID generates relation ids for the granted talent and language
	// relations. Defaults to the platform generator.
	NewID func() string
}

func (r Resolver) newID() (string, error) {
	if r.NewID != nil {
		return r.NewID(), nil
	}
	return id.NewID()
}

// Resolve validates the request against world reference data and returns the
// fully-populated create command payload.
func (r Resolver) Resolve(ctx context.Context, req Request) (domain.CreatePayload, error) {
	var payload domain.CreatePayload

	chain, err := r.resolveLineage(ctx, req)
	if err != nil {
		return payload, err
	}
	nature, err := r.resolveNature(ctx, req)
	if err != nil {
		return payload, err
	}
	customizationIDs, err := r.resolveCustomizations(ctx, req, nature)
	if err != nil {
		return payload, err
	}
	aspects, err := r.resolveAspects(ctx, req)
	if err != nil {
		return payload, err
	}
	baseAttributes, err := resolveBaseAttributes(req, aspects, chain)
	if err != nil {
		return payload, err
	}
	caste, education, err := r.resolveCasteEducation(ctx, req)
	if err != nil {
		return payload, err
	}
	talents, err := r.resolveTalents(ctx, req, aspects, caste, education)
	if err != nil {
		return payload, err
	}
	languages, err := r.resolveLanguages(ctx, req, chain)
	if err != nil {
		return payload, err
	}
	inventory, err := r.resolveStartingWealth(ctx, req)
	if err != nil {
		return payload, err
	}

	characterID := strings.TrimSpace(req.CharacterID)
	if characterID == "" {
		characterID, err = r.newID()
		if err != nil {
			return payload, err
		}
	}

	payload = domain.CreatePayload{
		CharacterID:      characterID,
		Name:             strings.TrimSpace(req.Name),
		PlayerName:       strings.TrimSpace(req.PlayerName),
		LineageID:        chainLineageID(chain),
		NatureID:         nature.ID,
		CustomizationIDs: customizationIDs,
		AspectIDs:        append([]string(nil), req.AspectIDs...),
		CasteID:          caste.ID,
		EducationID:      education.ID,

		Height: req.Height,
		Weight: req.Weight,
		Age:    req.Age,

		BaseAttributes: baseAttributes,

		LineageAttributeBonuses: chainAttributeRecords(chain),
		LineageSpeeds:           chainSpeedRecords(chain),
		LineageLanguageIDs:      chain.LanguageIDs(),
		NatureAttribute:         nature.Attribute,

		Talents:   talents,
		Languages: languages,
		Inventory: inventory,
	}
	return payload, nil
}

// resolveLineage loads the chosen lineage and completes the species/nation
// chain. A species with registered nations cannot be chosen directly; the
// caller must pick one of its nations.
func (r Resolver) resolveLineage(ctx context.Context, req Request) (rulebook.LineageChain, error) {
	var chain rulebook.LineageChain
	lineage, err := r.Stores.Lineages.GetLineage(ctx, req.WorldID, req.LineageID)
	if err != nil {
		return chain, err
	}
	if lineage == nil {
		return chain, apperrors.WithMetadata(apperrors.CodeInvalidCharacterLineage,
			"lineage not found", map[string]string{"Field": "lineage_id", "LineageID": req.LineageID})
	}
	if lineage.IsSpecies() {
		nations, err := r.Stores.Lineages.ListLineagesByParent(ctx, req.WorldID, lineage.ID)
		if err != nil {
			return chain, err
		}
		if len(nations) > 0 {
			return chain, apperrors.WithMetadata(apperrors.CodeInvalidCharacterLineage,
				"species has nations; select one of them", map[string]string{
					"Field":     "lineage_id",
					"LineageID": lineage.ID,
				})
		}
		chain.Species = *lineage
		return chain, nil
	}
	species, err := r.Stores.Lineages.GetLineage(ctx, req.WorldID, lineage.ParentID)
	if err != nil {
		return chain, err
	}
	if species == nil || !species.IsSpecies() {
		return chain, apperrors.WithMetadata(apperrors.CodeInvalidCharacterLineage,
			"nation has no valid species parent", map[string]string{
				"Field":     "lineage_id",
				"LineageID": lineage.ID,
				"ParentID":  lineage.ParentID,
			})
	}
	chain.Species = *species
	chain.Nation = lineage
	return chain, nil
}

func (r Resolver) resolveNature(ctx context.Context, req Request) (*rulebook.Nature, error) {
	nature, err := r.Stores.Natures.GetNature(ctx, req.WorldID, req.NatureID)
	if err != nil {
		return nil, err
	}
	if nature == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeNotFound,
			"nature not found", map[string]string{"Field": "nature_id", "NatureID": req.NatureID})
	}
	return nature, nil
}

// resolveCustomizations deduplicates the requested ids, resolves each, and
// enforces the gift/disability balance. The nature's own gift is granted
// automatically and must not be re-selected.
func (r Resolver) resolveCustomizations(ctx context.Context, req Request, nature *rulebook.Nature) ([]string, error) {
	seen := make(map[string]struct{}, len(req.CustomizationIDs))
	var ids []string
	gifts, disabilities := 0, 0
	for _, customizationID := range req.CustomizationIDs {
		if _, dup := seen[customizationID]; dup {
			continue
		}
		seen[customizationID] = struct{}{}
		if customizationID == nature.GiftID {
			return nil, apperrors.WithMetadata(apperrors.CodeCustomizationsCannotIncludeGift,
				"nature gift cannot be selected as a customization", map[string]string{
					"Field":  "customization_ids",
					"GiftID": nature.GiftID,
				})
		}
		customization, err := r.Stores.Customizations.GetCustomization(ctx, req.WorldID, customizationID)
		if err != nil {
			return nil, err
		}
		if customization == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeCustomizationsNotFound,
				"customization not found", map[string]string{
					"Field":           "customization_ids",
					"CustomizationID": customizationID,
				})
		}
		switch customization.Kind {
		case rulebook.CustomizationGift:
			gifts++
		case rulebook.CustomizationDisability:
			disabilities++
		}
		ids = append(ids, customizationID)
	}
	if gifts != disabilities {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidCharacterCustomizations,
			"gift and disability counts must balance", map[string]string{
				"Field":        "customization_ids",
				"Gifts":        fmt.Sprintf("%d", gifts),
				"Disabilities": fmt.Sprintf("%d", disabilities),
			})
	}
	return ids, nil
}

func (r Resolver) resolveAspects(ctx context.Context, req Request) ([]rulebook.Aspect, error) {
	seen := make(map[string]struct{}, len(req.AspectIDs))
	var aspects []rulebook.Aspect
	for _, aspectID := range req.AspectIDs {
		if _, dup := seen[aspectID]; dup {
			continue
		}
		seen[aspectID] = struct{}{}
		aspect, err := r.Stores.Aspects.GetAspect(ctx, req.WorldID, aspectID)
		if err != nil {
			return nil, err
		}
		if aspect == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeAspectsNotFound,
				"aspect not found", map[string]string{
					"Field":    "aspect_ids",
					"AspectID": aspectID,
				})
		}
		aspects = append(aspects, *aspect)
	}
	return aspects, nil
}

// resolveBaseAttributes assembles the tagged point-buy block. Best, Worst,
// and each optional pick must come from the attributes the selected aspects
// offer; mandatory tags are collected from the aspects themselves; extra tag
// count must match the lineage chain's grants. Full point-buy validation
// happens again in the decider.
func resolveBaseAttributes(req Request, aspects []rulebook.Aspect, chain rulebook.LineageChain) (domain.BaseAttributes, error) {
	base := domain.BaseAttributes{
		Agility:      req.Agility,
		Coordination: req.Coordination,
		Intellect:    req.Intellect,
		Presence:     req.Presence,
		Sensitivity:  req.Sensitivity,
		Spirit:       req.Spirit,
		Vigor:        req.Vigor,
		Best:         req.Best,
		Worst:        req.Worst,
		Optional:     append([]rulebook.Attribute(nil), req.Optional...),
		Extra:        append([]rulebook.Attribute(nil), req.Extra...),
	}

	offered := make(map[rulebook.Attribute]struct{})
	for _, aspect := range aspects {
		for _, candidate := range []*rulebook.Attribute{
			aspect.MandatoryAttribute1, aspect.MandatoryAttribute2,
			aspect.OptionalAttribute1, aspect.OptionalAttribute2,
		} {
			if candidate != nil {
				offered[*candidate] = struct{}{}
			}
		}
		if aspect.MandatoryAttribute1 != nil {
			base.Mandatory = append(base.Mandatory, *aspect.MandatoryAttribute1)
		}
		if aspect.MandatoryAttribute2 != nil {
			base.Mandatory = append(base.Mandatory, *aspect.MandatoryAttribute2)
		}
	}

	requireOffered := func(field string, attribute rulebook.Attribute) error {
		if _, ok := offered[attribute]; !ok {
			return apperrors.WithMetadata(apperrors.CodeInvalidAspectAttributeSelection,
				fmt.Sprintf("%s must be one of the attributes offered by the selected aspects", field),
				map[string]string{"Field": field, "Attribute": string(attribute)})
		}
		return nil
	}
	if err := requireOffered("best", base.Best); err != nil {
		return base, err
	}
	if err := requireOffered("worst", base.Worst); err != nil {
		return base, err
	}
	for i, optional := range base.Optional {
		if err := requireOffered(fmt.Sprintf("optional[%d]", i), optional); err != nil {
			return base, err
		}
	}

	if len(base.Extra) != chain.ExtraAttributes() {
		return base, apperrors.WithMetadata(apperrors.CodeInvalidExtraAttributes,
			fmt.Sprintf("extra attribute tags must number exactly %d", chain.ExtraAttributes()),
			map[string]string{
				"Field":    "extra",
				"Selected": fmt.Sprintf("%d", len(base.Extra)),
				"Granted":  fmt.Sprintf("%d", chain.ExtraAttributes()),
			})
	}
	return base, nil
}

func (r Resolver) resolveCasteEducation(ctx context.Context, req Request) (*rulebook.Caste, *rulebook.Education, error) {
	caste, err := r.Stores.Castes.GetCaste(ctx, req.WorldID, req.CasteID)
	if err != nil {
		return nil, nil, err
	}
	if caste == nil {
		return nil, nil, apperrors.WithMetadata(apperrors.CodeNotFound,
			"caste not found", map[string]string{"Field": "caste_id", "CasteID": req.CasteID})
	}
	education, err := r.Stores.Educations.GetEducation(ctx, req.WorldID, req.EducationID)
	if err != nil {
		return nil, nil, err
	}
	if education == nil {
		return nil, nil, apperrors.WithMetadata(apperrors.CodeNotFound,
			"education not found", map[string]string{"Field": "education_id", "EducationID": req.EducationID})
	}
	return caste, education, nil
}

// resolveTalents grants the caste and education skill talents and resolves
// the extra selections. Extra talents must be skill talents targeting skills
// distinct from both granted skills; aspect skill discounts lower the paid
// cost by one point. The summed cost may not exceed the level 0 talent
// point budget.
func (r Resolver) resolveTalents(ctx context.Context, req Request, aspects []rulebook.Aspect, caste *rulebook.Caste, education *rulebook.Education) (map[string]domain.TalentRelation, error) {
	if caste.Skill == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeCasteHasNoSkillTalent,
			"caste has no associated skill", map[string]string{"Field": "caste_id", "CasteID": caste.ID})
	}
	casteTalent, err := r.Stores.Talents.GetTalentBySkill(ctx, req.WorldID, *caste.Skill)
	if err != nil {
		return nil, err
	}
	if casteTalent == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeCasteHasNoSkillTalent,
			"caste skill has no matching talent", map[string]string{
				"Field": "caste_id",
				"Skill": string(*caste.Skill),
			})
	}
	if education.Skill == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeEducationHasNoSkillTalent,
			"education has no associated skill", map[string]string{"Field": "education_id", "EducationID": education.ID})
	}
	educationTalent, err := r.Stores.Talents.GetTalentBySkill(ctx, req.WorldID, *education.Skill)
	if err != nil {
		return nil, err
	}
	if educationTalent == nil {
		return nil, apperrors.WithMetadata(apperrors.CodeEducationHasNoSkillTalent,
			"education skill has no matching talent", map[string]string{
				"Field": "education_id",
				"Skill": string(*education.Skill),
			})
	}
	if *caste.Skill == *education.Skill {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidCasteEducationSelection,
			"caste and education must map to different skills", map[string]string{
				"Field": "education_id",
				"Skill": string(*caste.Skill),
			})
	}

	discounted := make(map[rulebook.Skill]struct{})
	for _, aspect := range aspects {
		if aspect.DiscountedSkill1 != nil {
			discounted[*aspect.DiscountedSkill1] = struct{}{}
		}
		if aspect.DiscountedSkill2 != nil {
			discounted[*aspect.DiscountedSkill2] = struct{}{}
		}
	}

	relations := make(map[string]domain.TalentRelation)
	grant := func(talent rulebook.Talent, precision string) error {
		cost := talent.Cost()
		if talent.Skill != nil {
			if _, ok := discounted[*talent.Skill]; ok {
				if cost > 0 {
					cost--
				}
				precision = "aspect discount"
			}
		}
		relationID, err := r.newID()
		if err != nil {
			return err
		}
		relations[relationID] = domain.TalentRelation{
			TalentID:         talent.ID,
			Cost:             cost,
			RequiredTalentID: talent.RequiredTalentID,
			Precision:        precision,
		}
		return nil
	}
	if err := grant(*casteTalent, "caste skill"); err != nil {
		return nil, err
	}
	if err := grant(*educationTalent, "education skill"); err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	for _, talentID := range req.TalentIDs {
		if _, dup := seen[talentID]; dup {
			continue
		}
		seen[talentID] = struct{}{}
		talent, err := r.Stores.Talents.GetTalent(ctx, req.WorldID, talentID)
		if err != nil {
			return nil, err
		}
		if talent == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeTalentsNotFound,
				"talent not found", map[string]string{
					"Field":    "talent_ids",
					"TalentID": talentID,
				})
		}
		if talent.Skill == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidSkillTalentSelection,
				"extra talent has no associated skill", map[string]string{
					"Field":    "talent_ids",
					"TalentID": talentID,
				})
		}
		if *talent.Skill == *caste.Skill || *talent.Skill == *education.Skill {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidSkillTalentSelection,
				"extra talent duplicates a granted skill talent", map[string]string{
					"Field":    "talent_ids",
					"TalentID": talentID,
					"Skill":    string(*talent.Skill),
				})
		}
		if err := grant(*talent, ""); err != nil {
			return nil, err
		}
	}

	budget := rulebook.TalentPoints(0)
	total := 0
	for _, relation := range relations {
		total += relation.Cost
	}
	if total > budget {
		return nil, apperrors.WithMetadata(apperrors.CodeNotEnoughRemainingTalentPoints,
			"starting talents exceed the level 0 talent point budget", map[string]string{
				"Field":  "talent_ids",
				"Cost":   fmt.Sprintf("%d", total),
				"Budget": fmt.Sprintf("%d", budget),
			})
	}
	return relations, nil
}

// resolveLanguages resolves the extra language selections. None may repeat a
// lineage-chain grant, and the count must match the chain's extra-language
// budget exactly.
func (r Resolver) resolveLanguages(ctx context.Context, req Request, chain rulebook.LineageChain) (map[string]domain.LanguageRelation, error) {
	granted := make(map[string]struct{})
	for _, languageID := range chain.LanguageIDs() {
		granted[languageID] = struct{}{}
	}

	relations := make(map[string]domain.LanguageRelation)
	seen := map[string]struct{}{}
	selected := 0
	for _, languageID := range req.LanguageIDs {
		if _, dup := seen[languageID]; dup {
			continue
		}
		seen[languageID] = struct{}{}
		if _, dup := granted[languageID]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeLanguagesCannotIncludeLineage,
				"language is already granted by the lineage chain", map[string]string{
					"Field":      "language_ids",
					"LanguageID": languageID,
				})
		}
		language, err := r.Stores.Languages.GetLanguage(ctx, req.WorldID, languageID)
		if err != nil {
			return nil, err
		}
		if language == nil {
			return nil, apperrors.WithMetadata(apperrors.CodeNotFound,
				"language not found", map[string]string{
					"Field":      "language_ids",
					"LanguageID": languageID,
				})
		}
		relationID, err := r.newID()
		if err != nil {
			return nil, err
		}
		relations[relationID] = domain.LanguageRelation{LanguageID: languageID}
		selected++
	}
	if selected != chain.ExtraLanguages() {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidExtraLanguages,
			fmt.Sprintf("extra languages must number exactly %d", chain.ExtraLanguages()),
			map[string]string{
				"Field":    "language_ids",
				"Selected": fmt.Sprintf("%d", selected),
				"Granted":  fmt.Sprintf("%d", chain.ExtraLanguages()),
			})
	}
	return relations, nil
}

// resolveStartingWealth optionally credits a money item. The referenced item
// must be of the money category with unit value exactly 1 so the credited
// quantity maps one-to-one to currency.
func (r Resolver) resolveStartingWealth(ctx context.Context, req Request) (map[string]domain.ItemRelation, error) {
	if req.StartingWealthItemID == "" {
		return nil, nil
	}
	item, err := r.Stores.Items.GetItem(ctx, req.WorldID, req.StartingWealthItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Category != rulebook.ItemCategoryMoney || item.Value != 1 {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidStartingWealthSelection,
			"starting wealth must reference a unit-value money item", map[string]string{
				"Field":  "starting_wealth_item_id",
				"ItemID": req.StartingWealthItemID,
			})
	}
	if req.StartingWealthAmount < 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidStartingWealthSelection,
			"starting wealth amount must be non-negative", map[string]string{
				"Field":  "starting_wealth_amount",
				"Amount": fmt.Sprintf("%g", req.StartingWealthAmount),
			})
	}
	relationID, err := r.newID()
	if err != nil {
		return nil, err
	}
	return map[string]domain.ItemRelation{
		relationID: {
			ItemID:    item.ID,
			Quantity:  req.StartingWealthAmount,
			Precision: "starting wealth",
		},
	}, nil
}

func chainLineageID(chain rulebook.LineageChain) string {
	if chain.Nation != nil {
		return chain.Nation.ID
	}
	return chain.Species.ID
}

// chainAttributeRecords flattens the chain's bonuses, species first, into
// the per-lineage records frozen in the creation event.
func chainAttributeRecords(chain rulebook.LineageChain) []domain.AttributeBonusRecord {
	var records []domain.AttributeBonusRecord
	appendFor := func(lineage rulebook.Lineage) {
		for _, attribute := range rulebook.Attributes() {
			if value := lineage.AttributeBonuses[attribute]; value != 0 {
				records = append(records, domain.AttributeBonusRecord{
					LineageID: lineage.ID,
					Attribute: attribute,
					Value:     value,
				})
			}
		}
	}
	appendFor(chain.Species)
	if chain.Nation != nil {
		appendFor(*chain.Nation)
	}
	return records
}

func chainSpeedRecords(chain rulebook.LineageChain) []domain.SpeedRecord {
	var records []domain.SpeedRecord
	appendFor := func(lineage rulebook.Lineage) {
		for _, kind := range rulebook.SpeedKinds() {
			if value := lineage.Speeds[kind]; value != 0 {
				records = append(records, domain.SpeedRecord{
					LineageID: lineage.ID,
					Kind:      kind,
					Value:     value,
				})
			}
		}
	}
	appendFor(chain.Species)
	if chain.Nation != nil {
		appendFor(*chain.Nation)
	}
	return records
}
