package domain

import (
	"fmt"

	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// Point-buy bounds for raw attribute scores.
const (
	AttributeScoreMinimum = 6
	AttributeScoreMaximum = 11
	// AttributeScoreSum is the required total of the seven raw scores (7×8+1).
	AttributeScoreSum = 57
)

// Tag bonus values applied on top of raw scores.
const (
	BestAttributeBonus      = 3
	WorstAttributeBonus     = 1
	MandatoryAttributeBonus = 2
	OptionalAttributeBonus  = 1
	ExtraAttributeBonus     = 1
)

// BaseAttributes holds the seven raw point-buy scores and the attribute tags
// granted by creation choices: a Best (+3) and Worst (+1) pick, up to two
// mandatory (+2) and two optional (+1) aspect picks, and the lineage-granted
// extra tags (+1 each, a multiset).
type BaseAttributes struct {
	Agility      int `json:"agility"`
	Coordination int `json:"coordination"`
	Intellect    int `json:"intellect"`
	Presence     int `json:"presence"`
	Sensitivity  int `json:"sensitivity"`
	Spirit       int `json:"spirit"`
	Vigor        int `json:"vigor"`

	Best      rulebook.Attribute   `json:"best"`
	Worst     rulebook.Attribute   `json:"worst"`
	Mandatory []rulebook.Attribute `json:"mandatory,omitempty"`
	Optional  []rulebook.Attribute `json:"optional,omitempty"`
	Extra     []rulebook.Attribute `json:"extra,omitempty"`
}

// Score returns the raw score for one attribute.
func (b BaseAttributes) Score(attribute rulebook.Attribute) int {
	switch attribute {
	case rulebook.AttributeAgility:
		return b.Agility
	case rulebook.AttributeCoordination:
		return b.Coordination
	case rulebook.AttributeIntellect:
		return b.Intellect
	case rulebook.AttributePresence:
		return b.Presence
	case rulebook.AttributeSensitivity:
		return b.Sensitivity
	case rulebook.AttributeSpirit:
		return b.Spirit
	case rulebook.AttributeVigor:
		return b.Vigor
	default:
		return 0
	}
}

// Sum totals the seven raw scores.
func (b BaseAttributes) Sum() int {
	return b.Agility + b.Coordination + b.Intellect + b.Presence + b.Sensitivity + b.Spirit + b.Vigor
}

// TagBonus sums the tag bonuses applying to one attribute.
func (b BaseAttributes) TagBonus(attribute rulebook.Attribute) int {
	bonus := 0
	if b.Best == attribute {
		bonus += BestAttributeBonus
	}
	if b.Worst == attribute {
		bonus += WorstAttributeBonus
	}
	for _, tag := range b.Mandatory {
		if tag == attribute {
			bonus += MandatoryAttributeBonus
		}
	}
	for _, tag := range b.Optional {
		if tag == attribute {
			bonus += OptionalAttributeBonus
		}
	}
	for _, tag := range b.Extra {
		if tag == attribute {
			bonus += ExtraAttributeBonus
		}
	}
	return bonus
}

// Validate checks the point-buy invariants: every raw score within bounds,
// the scores summing exactly, Best/Worst present and distinct, and the
// mandatory/optional tag counts within their caps.
func (b BaseAttributes) Validate() error {
	for _, attribute := range rulebook.Attributes() {
		score := b.Score(attribute)
		if score < AttributeScoreMinimum || score > AttributeScoreMaximum {
			return apperrors.WithMetadata(
				apperrors.CodeInvalidAttributeScore,
				fmt.Sprintf("attribute %s has score %d, must be in range %d..%d",
					attribute, score, AttributeScoreMinimum, AttributeScoreMaximum),
				map[string]string{
					"Attribute": string(attribute),
					"Score":     fmt.Sprintf("%d", score),
				},
			)
		}
	}
	if sum := b.Sum(); sum != AttributeScoreSum {
		return apperrors.WithMetadata(
			apperrors.CodeInvalidAttributeSum,
			fmt.Sprintf("attribute scores sum to %d, must sum to %d", sum, AttributeScoreSum),
			map[string]string{"Sum": fmt.Sprintf("%d", sum)},
		)
	}
	if _, ok := rulebook.ParseAttribute(string(b.Best)); !ok {
		return apperrors.New(apperrors.CodeInvalidBestAttribute, "best attribute is required")
	}
	if _, ok := rulebook.ParseAttribute(string(b.Worst)); !ok {
		return apperrors.New(apperrors.CodeInvalidWorstAttribute, "worst attribute is required")
	}
	if b.Best == b.Worst {
		return apperrors.New(apperrors.CodeInvalidWorstAttribute, "best and worst attributes must differ")
	}
	if len(b.Mandatory) > 2 {
		return apperrors.New(apperrors.CodeInvalidCreationBaseAttributePayload, "at most two mandatory attribute tags are allowed")
	}
	if len(b.Optional) > 2 {
		return apperrors.New(apperrors.CodeInvalidCreationBaseAttributePayload, "at most two optional attribute tags are allowed")
	}
	return nil
}
