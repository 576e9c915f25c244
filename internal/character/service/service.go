// Package service orchestrates the character write and read paths: creation
// resolution, command dispatch over the event journal, and sheet loading.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/skillforge/internal/character/command"
	"github.com/louisbranch/skillforge/internal/character/creation"
	"github.com/louisbranch/skillforge/internal/character/derived"
	"github.com/louisbranch/skillforge/internal/character/domain"
	apperrors "github.com/louisbranch/skillforge/internal/platform/errors"
	"github.com/louisbranch/skillforge/internal/platform/id"
	"github.com/louisbranch/skillforge/internal/storage"
)

// Service is the character application service. Events is required; Audit
// and Resolver stores are optional depending on which paths are used.
type Service struct {
	Events   storage.EventStore
	Audit    storage.AuditStore
	Resolver creation.Resolver

	// Now and NewID default to the real clock and generator.
	Now   func() time.Time
	NewID func() string
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() (string, error) {
	if s.NewID != nil {
		return s.NewID(), nil
	}
	return id.NewID()
}

// Sheet is a character's full derived view at one stream version.
type Sheet struct {
	State      domain.State
	Version    int
	Level      int
	Tier       int
	Attributes []derived.AttributeView
	Statistics []derived.StatisticView
	Speeds     []derived.SpeedView

	TalentPointsRemaining int
}

// Create resolves a creation request and dispatches the create command. The
// resolver performs only reads, so a failure at any step writes nothing.
func (s *Service) Create(ctx context.Context, req creation.Request, actorType command.ActorType, actorID string) (Sheet, error) {
	payload, err := s.Resolver.Resolve(ctx, req)
	if err != nil {
		s.audit(ctx, storage.AuditEvent{
			WorldID:     req.WorldID,
			CommandType: string(domain.CommandTypeCreate),
			Outcome:     storage.AuditOutcomeFailed,
			Code:        errorCode(err),
			ActorType:   string(actorType),
			ActorID:     actorID,
		})
		return Sheet{}, err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return Sheet{}, apperrors.Wrap(apperrors.CodeUnknown, "encode create payload", err)
	}
	return s.Dispatch(ctx, command.Command{
		WorldID:     req.WorldID,
		Type:        domain.CommandTypeCreate,
		ActorType:   actorType,
		ActorID:     actorID,
		EntityID:    payload.CharacterID,
		PayloadJSON: payloadJSON,
	})
}

// Dispatch replays the target character's stream, decides the command, and
// appends the accepted event. Exactly one event is written per accepted
// command; rejections surface as structured domain errors.
func (s *Service) Dispatch(ctx context.Context, cmd command.Command) (Sheet, error) {
	events, err := s.Events.ListEvents(ctx, cmd.WorldID, cmd.EntityID)
	if err != nil {
		return Sheet{}, apperrors.Wrap(apperrors.CodeUnknown, "list events", err)
	}
	state, err := domain.Replay(events)
	if err != nil {
		return Sheet{}, err
	}

	decision := domain.Decide(state, cmd, s.Now)
	if err := decision.Validate(); err != nil {
		return Sheet{}, apperrors.Wrap(apperrors.CodeUnknown, "invalid decision", err)
	}
	if decision.Rejected() {
		rejection := decision.Rejections[0]
		s.audit(ctx, storage.AuditEvent{
			WorldID:     cmd.WorldID,
			CharacterID: cmd.EntityID,
			CommandType: string(cmd.Type),
			Outcome:     storage.AuditOutcomeRejected,
			Code:        rejection.Code,
			ActorType:   string(cmd.ActorType),
			ActorID:     cmd.ActorID,
		})
		return Sheet{}, apperrors.WithMetadata(apperrors.Code(rejection.Code), rejection.Message, rejection.Metadata)
	}

	stored, err := s.Events.AppendEvent(ctx, decision.Events[0])
	if err != nil {
		return Sheet{}, apperrors.Wrap(apperrors.CodeUnknown, "append event", err)
	}
	next, err := domain.Fold(state, stored)
	if err != nil {
		return Sheet{}, err
	}
	s.audit(ctx, storage.AuditEvent{
		WorldID:     cmd.WorldID,
		CharacterID: stored.EntityID,
		CommandType: string(cmd.Type),
		Outcome:     storage.AuditOutcomeAccepted,
		ActorType:   string(cmd.ActorType),
		ActorID:     cmd.ActorID,
	})
	return s.sheet(next, len(events)+1), nil
}

// Load replays a character to its current sheet.
func (s *Service) Load(ctx context.Context, worldID, characterID string) (Sheet, error) {
	events, err := s.Events.ListEvents(ctx, worldID, characterID)
	if err != nil {
		return Sheet{}, apperrors.Wrap(apperrors.CodeUnknown, "list events", err)
	}
	state, err := domain.Replay(events)
	if err != nil {
		return Sheet{}, err
	}
	if !state.Created {
		return Sheet{}, apperrors.WithMetadata(apperrors.CodeNotFound, "character not found",
			map[string]string{"WorldID": worldID, "CharacterID": characterID})
	}
	return s.sheet(state, len(events)), nil
}

func (s *Service) sheet(state domain.State, version int) Sheet {
	return Sheet{
		State:      state,
		Version:    version,
		Level:      state.Level(),
		Tier:       state.Tier(),
		Attributes: derived.Attributes(state),
		Statistics: derived.Statistics(state),
		Speeds:     derived.Speeds(state),

		TalentPointsRemaining: state.RemainingTalentPoints(""),
	}
}

// audit best-effort appends an audit entry; audit failures never fail the
// command they describe.
func (s *Service) audit(ctx context.Context, entry storage.AuditEvent) {
	if s.Audit == nil {
		return
	}
	entryID, err := s.newID()
	if err != nil {
		return
	}
	entry.ID = entryID
	entry.Timestamp = s.now().UTC()
	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		entry.TraceID = span.SpanContext().TraceID().String()
		entry.SpanID = span.SpanContext().SpanID().String()
	}
	_ = s.Audit.AppendAuditEvent(ctx, entry)
}

func errorCode(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return string(appErr.Code)
	}
	return string(apperrors.CodeUnknown)
}
