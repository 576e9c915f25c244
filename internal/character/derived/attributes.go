// Package derived computes read-model views (attributes, statistics, speeds)
// from replayed character state. Derived views are lenient: bonus targets
// that no longer parse are skipped rather than failing the whole sheet.
package derived

import (
	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// AttributeView is one attribute's derived scores and modifiers. The
// temporary side includes temporary bonuses on top of the permanent score.
type AttributeView struct {
	Attribute         rulebook.Attribute `json:"attribute"`
	PermanentScore    int                `json:"permanent_score"`
	PermanentModifier int                `json:"permanent_modifier"`
	TemporaryScore    int                `json:"temporary_score"`
	TemporaryModifier int                `json:"temporary_modifier"`
}

// Attributes derives the seven attribute views in canonical order.
func Attributes(state domain.State) []AttributeView {
	views := make([]AttributeView, 0, len(rulebook.Attributes()))
	for _, attribute := range rulebook.Attributes() {
		views = append(views, AttributeFor(state, attribute))
	}
	return views
}

// AttributeFor derives a single attribute view.
func AttributeFor(state domain.State, attribute rulebook.Attribute) AttributeView {
	permanent := domain.PermanentScore(state, attribute)
	temporary := permanent + domain.TemporaryOverlay(state, attribute)
	return AttributeView{
		Attribute:         attribute,
		PermanentScore:    permanent,
		PermanentModifier: rulebook.AttributeModifier(permanent),
		TemporaryScore:    temporary,
		TemporaryModifier: rulebook.AttributeModifier(temporary),
	}
}
