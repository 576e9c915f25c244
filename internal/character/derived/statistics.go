package derived

import (
	"math"

	"github.com/louisbranch/skillforge/internal/character/domain"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// StatisticView is one statistic's derived value alongside the fractional
// parts it was accumulated from.
type StatisticView struct {
	Statistic rulebook.Statistic `json:"statistic"`
	// Base is the un-floored base from the governing attribute's current
	// permanent score.
	Base float64 `json:"base"`
	// Increments is the sum of the per-level increments frozen at each
	// level-up.
	Increments float64 `json:"increments"`
	// Bonuses is the flat sum of statistic-category bonuses.
	Bonuses int `json:"bonuses"`
	// Value floors Base + Increments + Bonuses. Flooring happens once, at
	// the end, so fractional increments from different levels still add up.
	Value int `json:"value"`
}

// Statistics derives the seven statistic views in canonical order.
func Statistics(state domain.State) []StatisticView {
	views := make([]StatisticView, 0, len(rulebook.Statistics()))
	for _, statistic := range rulebook.Statistics() {
		views = append(views, StatisticFor(state, statistic))
	}
	return views
}

// StatisticFor derives a single statistic view.
func StatisticFor(state domain.State, statistic rulebook.Statistic) StatisticView {
	governing := rulebook.StatisticAttribute(statistic)
	score := domain.PermanentScore(state, governing)
	modifier := rulebook.AttributeModifier(score)

	view := StatisticView{
		Statistic: statistic,
		Base:      rulebook.StatisticBase(statistic, score, modifier),
	}
	for _, levelUp := range state.LevelUps {
		view.Increments += levelUp.Increments[statistic]
	}
	for _, bonus := range state.Bonuses {
		if bonus.Category != rulebook.BonusCategoryStatistic {
			continue
		}
		target, ok := rulebook.ParseStatistic(bonus.Target)
		if !ok || target != statistic {
			continue
		}
		view.Bonuses += bonus.Value
	}
	view.Value = int(math.Floor(view.Base + view.Increments + float64(view.Bonuses)))
	return view
}
