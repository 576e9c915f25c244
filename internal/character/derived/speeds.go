package derived

import (
	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// SpeedView is one movement kind's derived value.
type SpeedView struct {
	Kind rulebook.SpeedKind `json:"kind"`
	// Lineage is the best value across the lineage chain's grants.
	Lineage int `json:"lineage"`
	// Bonuses is the flat sum of speed-category bonuses.
	Bonuses int `json:"bonuses"`
	// Value is Lineage + Bonuses, never below zero.
	Value int `json:"value"`
}

// Speeds derives the six speed views in canonical order.
func Speeds(state domain.State) []SpeedView {
	views := make([]SpeedView, 0, len(rulebook.SpeedKinds()))
	for _, kind := range rulebook.SpeedKinds() {
		views = append(views, SpeedFor(state, kind))
	}
	return views
}

// SpeedFor derives a single speed view. Penalties can drive the sum
// negative; the value clamps at zero.
func SpeedFor(state domain.State, kind rulebook.SpeedKind) SpeedView {
	view := SpeedView{Kind: kind}
	for _, record := range state.LineageSpeeds {
		if record.Kind == kind && record.Value > view.Lineage {
			view.Lineage = record.Value
		}
	}
	for _, bonus := range state.Bonuses {
		if bonus.Category != rulebook.BonusCategorySpeed {
			continue
		}
		target, ok := rulebook.ParseSpeedKind(bonus.Target)
		if !ok || target != kind {
			continue
		}
		view.Bonuses += bonus.Value
	}
	view.Value = view.Lineage + view.Bonuses
	if view.Value < 0 {
		view.Value = 0
	}
	return view
}
