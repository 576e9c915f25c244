package command

import (
	"fmt"

	"github.com/louisbranch/skillforge/internal/character/event"
)

// Shared rejection codes used by every decider branch.
const (
	RejectionCodePayloadDecodeFailed    = "PAYLOAD_DECODE_FAILED"
	RejectionCodeCommandTypeUnsupported = "COMMAND_TYPE_UNSUPPORTED"
)

// Decision represents the pure outcome of handling a command.
type Decision struct {
	Events     []event.Event
	Rejections []Rejection
}

// Rejection captures a domain-level reason a command was declined. Metadata
// carries the contextual values (limits, current values, offending fields)
// needed to render a precise user message.
type Rejection struct {
	Code     string
	Message  string
	Metadata map[string]string
}

// Accept returns a decision that emits the provided events.
func Accept(events ...event.Event) Decision {
	return Decision{Events: append([]event.Event(nil), events...)}
}

// Reject returns a decision that carries the provided rejections.
func Reject(rejections ...Rejection) Decision {
	return Decision{Rejections: append([]Rejection(nil), rejections...)}
}

// Rejected reports whether the decision declined the command.
func (d Decision) Rejected() bool {
	return len(d.Rejections) > 0
}

// Validate checks that the decision carries events or rejections, not neither.
func (d Decision) Validate() error {
	if len(d.Events) == 0 && len(d.Rejections) == 0 {
		return fmt.Errorf("decision must carry events or rejections")
	}
	return nil
}
