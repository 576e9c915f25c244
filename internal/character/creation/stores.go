// Package creation resolves a creation request against world reference data
// and produces the fully-populated create command payload. Resolution is a
// strict sequence of read-only lookups; nothing is written until every step
// has passed.
package creation

import (
	"context"

	"github.com/louisbranch/skillforge/internal/rulebook"
)

// Store lookups return (nil, nil) when the entity does not exist in the
// world; errors are reserved for infrastructure failures.

// LineageStore loads lineages and their child nations.
type LineageStore interface {
	GetLineage(ctx context.Context, worldID, id string) (*rulebook.Lineage, error)
	ListLineagesByParent(ctx context.Context, worldID, parentID string) ([]rulebook.Lineage, error)
}

// NatureStore loads personality natures.
type NatureStore interface {
	GetNature(ctx context.Context, worldID, id string) (*rulebook.Nature, error)
}

// CustomizationStore loads gifts and disabilities.
type CustomizationStore interface {
	GetCustomization(ctx context.Context, worldID, id string) (*rulebook.Customization, error)
}

// AspectStore loads aspects.
type AspectStore interface {
	GetAspect(ctx context.Context, worldID, id string) (*rulebook.Aspect, error)
}

// CasteStore loads castes.
type CasteStore interface {
	GetCaste(ctx context.Context, worldID, id string) (*rulebook.Caste, error)
}

// EducationStore loads educations.
type EducationStore interface {
	GetEducation(ctx context.Context, worldID, id string) (*rulebook.Education, error)
}

// TalentStore loads talents by id and by associated skill.
type TalentStore interface {
	GetTalent(ctx context.Context, worldID, id string) (*rulebook.Talent, error)
	GetTalentBySkill(ctx context.Context, worldID string, skill rulebook.Skill) (*rulebook.Talent, error)
}

// LanguageStore loads languages.
type LanguageStore interface {
	GetLanguage(ctx context.Context, worldID, id string) (*rulebook.Language, error)
}

// ItemStore loads items.
type ItemStore interface {
	GetItem(ctx context.Context, worldID, id string) (*rulebook.Item, error)
}

// Stores bundles every reference lookup the resolver needs.
type Stores struct {
	Lineages       LineageStore
	Natures        NatureStore
	Customizations CustomizationStore
	Aspects        AspectStore
	Castes         CasteStore
	Educations     EducationStore
	Talents        TalentStore
	Languages      LanguageStore
	Items          ItemStore
}
