package command

import (
	"testing"
	"time"

	"github.com/louisbranch/skillforge/internal/character/event"
)

func TestNewEventCopiesCommandEnvelope(t *testing.T) {
	cmd := Command{
		WorldID:   "world-1",
		ActorType: ActorTypeUser,
		ActorID:   "actor-1",
		EntityID:  "char-1",
	}
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	evt := NewEvent(cmd, event.TypeCharacterCreated, "char-1", []byte(`{"name":"test"}`), now)

	if evt.WorldID != "world-1" {
		t.Errorf("WorldID = %q, want world-1", evt.WorldID)
	}
	if evt.Type != event.TypeCharacterCreated {
		t.Errorf("Type = %q, want character.created", evt.Type)
	}
	if evt.ActorType != event.ActorTypeUser {
		t.Errorf("ActorType = %q, want user", evt.ActorType)
	}
	if evt.ActorID != "actor-1" {
		t.Errorf("ActorID = %q, want actor-1", evt.ActorID)
	}
	if evt.EntityType != "character" {
		t.Errorf("EntityType = %q, want character", evt.EntityType)
	}
	if evt.EntityID != "char-1" {
		t.Errorf("EntityID = %q, want char-1", evt.EntityID)
	}
	if !evt.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", evt.Timestamp, now)
	}
}

func TestAcceptDecisionReturnsEventsOnly(t *testing.T) {
	evt := event.Event{WorldID: "world-1"}
	decision := Accept(evt)

	if len(decision.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(decision.Events))
	}
	if len(decision.Rejections) != 0 {
		t.Fatalf("expected no rejections, got %d", len(decision.Rejections))
	}
	if decision.Rejected() {
		t.Fatal("accepted decision must not report rejected")
	}
}

func TestRejectDecisionReturnsRejectionsOnly(t *testing.T) {
	decision := Reject(Rejection{Code: "INVALID"})

	if len(decision.Rejections) != 1 {
		t.Fatalf("expected 1 rejection, got %d", len(decision.Rejections))
	}
	if decision.Rejections[0].Code != "INVALID" {
		t.Fatalf("rejection code = %s, want INVALID", decision.Rejections[0].Code)
	}
	if !decision.Rejected() {
		t.Fatal("rejecting decision must report rejected")
	}
}

func TestDecisionValidate(t *testing.T) {
	if err := (Decision{}).Validate(); err == nil {
		t.Fatal("expected error for empty decision")
	}
	if err := Accept(event.Event{WorldID: "w"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Reject(Rejection{Code: "NOPE"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
