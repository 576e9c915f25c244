package domain

import (
	"fmt"

	"github.com/louisbranch/skillforge/internal/character/event"
	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
)

// Replay folds an ordered event stream into the character state it encodes.
// Events must be sorted by sequence number; events for other entities are
// skipped.
func Replay(events []event.Event) (State, error) {
	var state State
	for _, evt := range events {
		if evt.EntityType != event.EntityTypeCharacter {
			continue
		}
		next, err := Fold(state, evt)
		if err != nil {
			return State{}, apperrors.Wrap(apperrors.CodeUnknown,
				fmt.Sprintf("replay %s at seq %d", evt.Type, evt.Seq), err)
		}
		state = next
	}
	return state, nil
}
