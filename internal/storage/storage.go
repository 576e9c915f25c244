// Package storage defines the persistence contracts for the character event
// journal, the audit trail, and world reference data. Implementations live
// in subpackages (sqlite).
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/skillforge/internal/character/creation"
	"github.com/louisbranch/skillforge/internal/character/event"
	"github.com/louisbranch/skillforge/internal/rulebook"
)

// EventStore appends and reads character event streams. AppendEvent assigns
// the next per-character sequence number atomically and returns the stored
// event; ListEvents returns the stream ordered by sequence.
type EventStore interface {
	AppendEvent(ctx context.Context, evt event.Event) (event.Event, error)
	ListEvents(ctx context.Context, worldID, characterID string) ([]event.Event, error)
}

// AuditEvent records the outcome of one command dispatch for operational
// queries. TraceID and SpanID are set when a trace span was active.
type AuditEvent struct {
	ID          string
	WorldID     string
	CharacterID string
	CommandType string
	Outcome     string
	Code        string
	ActorType   string
	ActorID     string
	TraceID     string
	SpanID      string
	Timestamp   time.Time
}

// Audit outcomes.
const (
	AuditOutcomeAccepted = "accepted"
	AuditOutcomeRejected = "rejected"
	AuditOutcomeFailed   = "failed"
)

// AuditStore appends audit entries.
type AuditStore interface {
	AppendAuditEvent(ctx context.Context, entry AuditEvent) error
}

// ReferenceStore reads and writes world reference data. The read side
// satisfies the creation resolver's lookup interfaces; the write side is
// used by seeding.
type ReferenceStore interface {
	creation.LineageStore
	creation.NatureStore
	creation.CustomizationStore
	creation.AspectStore
	creation.CasteStore
	creation.EducationStore
	creation.TalentStore
	creation.LanguageStore
	creation.ItemStore

	PutLineage(ctx context.Context, lineage rulebook.Lineage) error
	PutNature(ctx context.Context, nature rulebook.Nature) error
	PutCustomization(ctx context.Context, customization rulebook.Customization) error
	PutAspect(ctx context.Context, aspect rulebook.Aspect) error
	PutCaste(ctx context.Context, caste rulebook.Caste) error
	PutEducation(ctx context.Context, education rulebook.Education) error
	PutTalent(ctx context.Context, talent rulebook.Talent) error
	PutLanguage(ctx context.Context, language rulebook.Language) error
	PutItem(ctx context.Context, item rulebook.Item) error
}
