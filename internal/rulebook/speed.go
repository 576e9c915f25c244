package rulebook

import "strings"

// SpeedKind identifies a movement mode.
type SpeedKind string

const (
	SpeedWalk   SpeedKind = "walk"
	SpeedClimb  SpeedKind = "climb"
	SpeedSwim   SpeedKind = "swim"
	SpeedFly    SpeedKind = "fly"
	SpeedHover  SpeedKind = "hover"
	SpeedBurrow SpeedKind = "burrow"
)

// SpeedKinds lists every movement mode in canonical order.
func SpeedKinds() []SpeedKind {
	return []SpeedKind{SpeedWalk, SpeedClimb, SpeedSwim, SpeedFly, SpeedHover, SpeedBurrow}
}

// ParseSpeedKind returns the canonical speed kind for a label.
func ParseSpeedKind(value string) (SpeedKind, bool) {
	candidate := SpeedKind(strings.ToLower(strings.TrimSpace(value)))
	for _, kind := range SpeedKinds() {
		if candidate == kind {
			return kind, true
		}
	}
	return "", false
}
