// Package event defines the character event envelope and event types.
//
// Events represent facts that have occurred, not commands/requests. A
// character's current state is reconstructed by folding its ordered event
// stream; the stream is the only persisted source of truth.
package event

import (
	"strings"
	"time"
)

// Type identifies the type of a character event.
type Type string

// Lifecycle events.
const (
	// TypeCharacterCreated records the one-time creation of a character.
	TypeCharacterCreated Type = "character.created"
	// TypeCharacterUpdated records updates to identity and physical traits.
	TypeCharacterUpdated Type = "character.updated"
)

// Progression events.
const (
	// TypeExperienceGained records an experience award.
	TypeExperienceGained Type = "character.experience_gained"
	// TypeLeveledUp records a level-up with its frozen statistic increments.
	TypeLeveledUp Type = "character.leveled_up"
	// TypeLevelUpCancelled records removal of the most recent level-up.
	TypeLevelUpCancelled Type = "character.level_up_cancelled"
	// TypeSkillRankIncreased records a +1 skill rank purchase.
	TypeSkillRankIncreased Type = "character.skill_rank_increased"
)

// Relation events.
const (
	// TypeBonusSet records an upserted bonus.
	TypeBonusSet Type = "character.bonus_set"
	// TypeBonusRemoved records a removed bonus.
	TypeBonusRemoved Type = "character.bonus_removed"
	// TypeTalentSet records an upserted talent relation.
	TypeTalentSet Type = "character.talent_set"
	// TypeTalentRemoved records a removed talent relation.
	TypeTalentRemoved Type = "character.talent_removed"
	// TypeLanguageSet records an upserted language relation.
	TypeLanguageSet Type = "character.language_set"
	// TypeLanguageRemoved records a removed language relation.
	TypeLanguageRemoved Type = "character.language_removed"
	// TypeItemSet records an upserted inventory line.
	TypeItemSet Type = "character.item_set"
	// TypeItemRemoved records a removed inventory line.
	TypeItemRemoved Type = "character.item_removed"
)

// Condition events.
const (
	// TypeVitalsUpdated records changes to vitality/stamina/intoxication counters.
	TypeVitalsUpdated Type = "character.vitals_updated"
)

// EntityTypeCharacter is the entity type for every event in this package.
const EntityTypeCharacter = "character"

// ActorType identifies who or what triggered an event.
type ActorType string

const (
	// ActorTypeSystem indicates the event was triggered by the system.
	ActorTypeSystem ActorType = "system"
	// ActorTypeUser indicates the event was triggered by a user.
	ActorTypeUser ActorType = "user"
)

// Event represents an immutable event in a character's journal.
type Event struct {
	// WorldID is the tenant world this event belongs to. Characters in
	// different worlds never compare equal even with the same entity id.
	WorldID string
	// Seq is the event sequence number within the character stream
	// (starts at 1). Assigned by storage on append.
	Seq uint64
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// Type identifies the kind of event.
	Type Type
	// ActorType identifies who triggered the event.
	ActorType ActorType
	// ActorID is the user id when ActorType is user.
	ActorID string
	// EntityType is the type of entity affected (always "character" here).
	EntityType string
	// EntityID is the character id the event belongs to.
	EntityID string
	// PayloadJSON holds event-specific data as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Domain returns the domain prefix of the event type (e.g., "character").
func (t Type) Domain() string {
	for i, c := range t {
		if c == '.' {
			return string(t[:i])
		}
	}
	return string(t)
}
