package rulebook

// Lineage describes a species or one of its nations. A species has an empty
// ParentID; a nation's ParentID names its species.
type Lineage struct {
	ID               string
	WorldID          string
	ParentID         string
	Name             string
	AttributeBonuses map[Attribute]int
	Speeds           map[SpeedKind]int
	LanguageIDs      []string
	ExtraLanguages   int
	ExtraAttributes  int
}

// IsSpecies reports whether the lineage is a species root.
func (l Lineage) IsSpecies() bool {
	return l.ParentID == ""
}

// LineageChain pairs a species with an optionally chosen nation. Grants and
// bonuses combine additively across the chain; speeds take the maximum.
type LineageChain struct {
	Species Lineage
	Nation  *Lineage
}

// ExtraAttributes sums the extra-attribute grants across the chain.
func (c LineageChain) ExtraAttributes() int {
	total := c.Species.ExtraAttributes
	if c.Nation != nil {
		total += c.Nation.ExtraAttributes
	}
	return total
}

// ExtraLanguages sums the extra-language grants across the chain.
func (c LineageChain) ExtraLanguages() int {
	total := c.Species.ExtraLanguages
	if c.Nation != nil {
		total += c.Nation.ExtraLanguages
	}
	return total
}

// LanguageIDs returns the deduplicated languages granted by the chain.
func (c LineageChain) LanguageIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(values []string) {
		for _, id := range values {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	add(c.Species.LanguageIDs)
	if c.Nation != nil {
		add(c.Nation.LanguageIDs)
	}
	return ids
}

// Nature describes a character personality archetype. Its attribute tag, when
// present, grants +1 to that attribute; its gift is granted automatically and
// may never be re-selected as a free-standing customization.
type Nature struct {
	ID        string
	WorldID   string
	Name      string
	Attribute *Attribute
	GiftID    string
}

// CustomizationKind distinguishes paired customization types.
type CustomizationKind string

const (
	CustomizationGift       CustomizationKind = "gift"
	CustomizationDisability CustomizationKind = "disability"
)

// Customization describes a gift or disability selectable at creation.
type Customization struct {
	ID      string
	WorldID string
	Kind    CustomizationKind
	Name    string
}

// Aspect describes a creation option granting attribute tags and skill
// discounts. Mandatory attributes receive +2, optional attributes +1.
type Aspect struct {
	ID                  string
	WorldID             string
	Name                string
	MandatoryAttribute1 *Attribute
	MandatoryAttribute2 *Attribute
	OptionalAttribute1  *Attribute
	OptionalAttribute2  *Attribute
	DiscountedSkill1    *Skill
	DiscountedSkill2    *Skill
}

// Caste describes a social origin with an associated skill.
type Caste struct {
	ID         string
	WorldID    string
	Name       string
	Skill      *Skill
	WealthRoll string
}

// Education describes an upbringing with an associated skill.
type Education struct {
	ID      string
	WorldID string
	Name    string
	Skill   *Skill
}

// Talent describes a purchasable talent. The nominal cost is Tier+2 but
// callers may pay a discounted cost, bounded by MaximumCost when set.
type Talent struct {
	ID                     string
	WorldID                string
	Tier                   int
	Name                   string
	AllowMultiplePurchases bool
	RequiredTalentID       string
	Skill                  *Skill
	MaximumCost            *int
}

// Cost returns the nominal purchase cost of the talent.
func (t Talent) Cost() int {
	return t.Tier + 2
}

// Language describes a world language.
type Language struct {
	ID      string
	WorldID string
	Name    string
}

// ItemCategoryMoney is the item category accepted for starting wealth.
const ItemCategoryMoney = "money"

// Item describes a world item. Starting wealth must reference a money item
// with unit value 1.
type Item struct {
	ID       string
	WorldID  string
	Category string
	Name     string
	Value    float64
}
