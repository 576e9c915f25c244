// Package command defines the canonical command envelope and decision
// contract used across the character write path.
//
// Commands express business intent from callers and tooling. They are the
// stable boundary before the domain decider so that business rules are
// evaluated only against normalized inputs.
package command

import (
	"time"

	"github.com/louisbranch/skillforge/internal/character/event"
)

// Type identifies the type of a character command.
type Type string

// ActorType identifies who issued a command.
type ActorType string

const (
	// ActorTypeSystem indicates a system-issued command.
	ActorTypeSystem ActorType = "system"
	// ActorTypeUser indicates a user-issued command.
	ActorTypeUser ActorType = "user"
)

// Command is the envelope carried by every character mutation request.
type Command struct {
	// WorldID scopes the command to a tenant world.
	WorldID string
	// Type identifies the command.
	Type Type
	// ActorType identifies who issued the command.
	ActorType ActorType
	// ActorID is the user id when ActorType is user.
	ActorID string
	// EntityID is the target character id.
	EntityID string
	// PayloadJSON holds command-specific data as JSON.
	PayloadJSON []byte
}

// NewEvent builds an event.Event by copying the shared envelope fields from a
// command. Callers supply the event-specific type, payload, and timestamp.
// This eliminates per-branch boilerplate and ensures new envelope fields are
// automatically forwarded.
func NewEvent(cmd Command, eventType event.Type, entityID string, payloadJSON []byte, now time.Time) event.Event {
	return event.Event{
		WorldID:     cmd.WorldID,
		Type:        eventType,
		Timestamp:   now,
		ActorType:   event.ActorType(cmd.ActorType),
		ActorID:     cmd.ActorID,
		EntityType:  event.EntityTypeCharacter,
		EntityID:    entityID,
		PayloadJSON: payloadJSON,
	}
}
