// Package sqlite persists the character event journal, audit trail, and
// world reference data in a sqlite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/skillforge/internal/character/event"
	"github.com/louisbranch/skillforge/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/skillforge/internal/rulebook"
	"github.com/louisbranch/skillforge/internal/storage"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Store implements storage.EventStore, storage.AuditStore, and
// storage.ReferenceStore over a sqlite database.
type Store struct {
	db *sql.DB
}

var (
	_ storage.EventStore     = (*Store)(nil)
	_ storage.AuditStore     = (*Store)(nil)
	_ storage.ReferenceStore = (*Store)(nil)
)

// Open opens (creating if needed) a sqlite database at path and applies the
// embedded migrations. Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// table-lock errors under concurrent use.
	db.SetMaxOpenConns(1)

	migrations, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	if err := sqlitemigrate.Apply(db, migrations); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// AppendEvent assigns the next per-character sequence number and stores the
// event in one transaction.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return event.Event{}, fmt.Errorf("begin append tx: %w", err)
	}
	defer tx.Rollback()

	var seq uint64
	err = tx.QueryRowContext(ctx, `
INSERT INTO character_sequences (world_id, character_id, seq)
VALUES (?, ?, 1)
ON CONFLICT (world_id, character_id) DO UPDATE SET seq = seq + 1
RETURNING seq`, evt.WorldID, evt.EntityID).Scan(&seq)
	if err != nil {
		return event.Event{}, fmt.Errorf("next sequence: %w", err)
	}
	evt.Seq = seq

	_, err = tx.ExecContext(ctx, `
INSERT INTO events (world_id, entity_type, entity_id, seq, timestamp_ms, type, actor_type, actor_id, payload)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		evt.WorldID, evt.EntityType, evt.EntityID, evt.Seq, toMillis(evt.Timestamp),
		string(evt.Type), string(evt.ActorType), evt.ActorID, evt.PayloadJSON)
	if err != nil {
		return event.Event{}, fmt.Errorf("insert event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return event.Event{}, fmt.Errorf("commit append tx: %w", err)
	}
	evt.Timestamp = fromMillis(toMillis(evt.Timestamp))
	return evt, nil
}

// ListEvents returns a character's stream ordered by sequence number.
func (s *Store) ListEvents(ctx context.Context, worldID, characterID string) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT world_id, entity_type, entity_id, seq, timestamp_ms, type, actor_type, actor_id, payload
FROM events
WHERE world_id = ? AND entity_id = ?
ORDER BY seq`, worldID, characterID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var evt event.Event
		var eventType, actorType string
		var timestampMS int64
		if err := rows.Scan(&evt.WorldID, &evt.EntityType, &evt.EntityID, &evt.Seq,
			&timestampMS, &eventType, &actorType, &evt.ActorID, &evt.PayloadJSON); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.Type = event.Type(eventType)
		evt.ActorType = event.ActorType(actorType)
		evt.Timestamp = fromMillis(timestampMS)
		events = append(events, evt)
	}
	return events, rows.Err()
}

// AppendAuditEvent stores one audit entry.
func (s *Store) AppendAuditEvent(ctx context.Context, entry storage.AuditEvent) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO audit_events (id, world_id, character_id, command_type, outcome, code, actor_type, actor_id, trace_id, span_id, timestamp_ms)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.WorldID, entry.CharacterID, entry.CommandType, entry.Outcome,
		entry.Code, entry.ActorType, entry.ActorID, entry.TraceID, entry.SpanID,
		toMillis(entry.Timestamp))
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListAuditEvents returns a world's audit entries, newest first.
func (s *Store) ListAuditEvents(ctx context.Context, worldID string, limit int) ([]storage.AuditEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, world_id, character_id, command_type, outcome, code, actor_type, actor_id, trace_id, span_id, timestamp_ms
FROM audit_events
WHERE world_id = ?
ORDER BY timestamp_ms DESC, id DESC
LIMIT ?`, worldID, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var entries []storage.AuditEvent
	for rows.Next() {
		var entry storage.AuditEvent
		var timestampMS int64
		if err := rows.Scan(&entry.ID, &entry.WorldID, &entry.CharacterID, &entry.CommandType,
			&entry.Outcome, &entry.Code, &entry.ActorType, &entry.ActorID,
			&entry.TraceID, &entry.SpanID, &timestampMS); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		entry.Timestamp = fromMillis(timestampMS)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Reference entities are stored as JSON payloads keyed by (world, id), with
// the columns needed for lookups (lineage parent, talent skill) extracted.

func (s *Store) putReference(ctx context.Context, table, worldID, id string, entity any) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encode %s: %w", table, err)
	}
	query := fmt.Sprintf(`
INSERT INTO %s (world_id, id, payload) VALUES (?, ?, ?)
ON CONFLICT (world_id, id) DO UPDATE SET payload = excluded.payload`, table)
	if _, err := s.db.ExecContext(ctx, query, worldID, id, payload); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}

func (s *Store) getReference(ctx context.Context, table, worldID, id string, entity any) (bool, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE world_id = ? AND id = ?`, table)
	var payload []byte
	err := s.db.QueryRowContext(ctx, query, worldID, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query %s: %w", table, err)
	}
	if err := json.Unmarshal(payload, entity); err != nil {
		return false, fmt.Errorf("decode %s: %w", table, err)
	}
	return true, nil
}

func (s *Store) PutLineage(ctx context.Context, lineage rulebook.Lineage) error {
	payload, err := json.Marshal(lineage)
	if err != nil {
		return fmt.Errorf("encode lineage: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO lineages (world_id, id, parent_id, payload) VALUES (?, ?, ?, ?)
ON CONFLICT (world_id, id) DO UPDATE SET parent_id = excluded.parent_id, payload = excluded.payload`,
		lineage.WorldID, lineage.ID, lineage.ParentID, payload)
	if err != nil {
		return fmt.Errorf("upsert lineage: %w", err)
	}
	return nil
}

func (s *Store) GetLineage(ctx context.Context, worldID, id string) (*rulebook.Lineage, error) {
	var lineage rulebook.Lineage
	found, err := s.getReference(ctx, "lineages", worldID, id, &lineage)
	if err != nil || !found {
		return nil, err
	}
	return &lineage, nil
}

func (s *Store) ListLineagesByParent(ctx context.Context, worldID, parentID string) ([]rulebook.Lineage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM lineages WHERE world_id = ? AND parent_id = ? ORDER BY id`, worldID, parentID)
	if err != nil {
		return nil, fmt.Errorf("query lineages: %w", err)
	}
	defer rows.Close()

	var lineages []rulebook.Lineage
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan lineage: %w", err)
		}
		var lineage rulebook.Lineage
		if err := json.Unmarshal(payload, &lineage); err != nil {
			return nil, fmt.Errorf("decode lineage: %w", err)
		}
		lineages = append(lineages, lineage)
	}
	return lineages, rows.Err()
}

func (s *Store) PutNature(ctx context.Context, nature rulebook.Nature) error {
	return s.putReference(ctx, "natures", nature.WorldID, nature.ID, nature)
}

func (s *Store) GetNature(ctx context.Context, worldID, id string) (*rulebook.Nature, error) {
	var nature rulebook.Nature
	found, err := s.getReference(ctx, "natures", worldID, id, &nature)
	if err != nil || !found {
		return nil, err
	}
	return &nature, nil
}

func (s *Store) PutCustomization(ctx context.Context, customization rulebook.Customization) error {
	return s.putReference(ctx, "customizations", customization.WorldID, customization.ID, customization)
}

func (s *Store) GetCustomization(ctx context.Context, worldID, id string) (*rulebook.Customization, error) {
	var customization rulebook.Customization
	found, err := s.getReference(ctx, "customizations", worldID, id, &customization)
	if err != nil || !found {
		return nil, err
	}
	return &customization, nil
}

func (s *Store) PutAspect(ctx context.Context, aspect rulebook.Aspect) error {
	return s.putReference(ctx, "aspects", aspect.WorldID, aspect.ID, aspect)
}

func (s *Store) GetAspect(ctx context.Context, worldID, id string) (*rulebook.Aspect, error) {
	var aspect rulebook.Aspect
	found, err := s.getReference(ctx, "aspects", worldID, id, &aspect)
	if err != nil || !found {
		return nil, err
	}
	return &aspect, nil
}

func (s *Store) PutCaste(ctx context.Context, caste rulebook.Caste) error {
	return s.putReference(ctx, "castes", caste.WorldID, caste.ID, caste)
}

func (s *Store) GetCaste(ctx context.Context, worldID, id string) (*rulebook.Caste, error) {
	var caste rulebook.Caste
	found, err := s.getReference(ctx, "castes", worldID, id, &caste)
	if err != nil || !found {
		return nil, err
	}
	return &caste, nil
}

func (s *Store) PutEducation(ctx context.Context, education rulebook.Education) error {
	return s.putReference(ctx, "educations", education.WorldID, education.ID, education)
}

func (s *Store) GetEducation(ctx context.Context, worldID, id string) (*rulebook.Education, error) {
	var education rulebook.Education
	found, err := s.getReference(ctx, "educations", worldID, id, &education)
	if err != nil || !found {
		return nil, err
	}
	return &education, nil
}

func (s *Store) PutTalent(ctx context.Context, talent rulebook.Talent) error {
	payload, err := json.Marshal(talent)
	if err != nil {
		return fmt.Errorf("encode talent: %w", err)
	}
	skill := ""
	if talent.Skill != nil {
		skill = string(*talent.Skill)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO talents (world_id, id, skill, payload) VALUES (?, ?, ?, ?)
ON CONFLICT (world_id, id) DO UPDATE SET skill = excluded.skill, payload = excluded.payload`,
		talent.WorldID, talent.ID, skill, payload)
	if err != nil {
		return fmt.Errorf("upsert talent: %w", err)
	}
	return nil
}

func (s *Store) GetTalent(ctx context.Context, worldID, id string) (*rulebook.Talent, error) {
	var talent rulebook.Talent
	found, err := s.getReference(ctx, "talents", worldID, id, &talent)
	if err != nil || !found {
		return nil, err
	}
	return &talent, nil
}

func (s *Store) GetTalentBySkill(ctx context.Context, worldID string, skill rulebook.Skill) (*rulebook.Talent, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM talents WHERE world_id = ? AND skill = ? ORDER BY id LIMIT 1`,
		worldID, string(skill)).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query talent by skill: %w", err)
	}
	var talent rulebook.Talent
	if err := json.Unmarshal(payload, &talent); err != nil {
		return nil, fmt.Errorf("decode talent: %w", err)
	}
	return &talent, nil
}

func (s *Store) PutLanguage(ctx context.Context, language rulebook.Language) error {
	return s.putReference(ctx, "languages", language.WorldID, language.ID, language)
}

func (s *Store) GetLanguage(ctx context.Context, worldID, id string) (*rulebook.Language, error) {
	var language rulebook.Language
	found, err := s.getReference(ctx, "languages", worldID, id, &language)
	if err != nil || !found {
		return nil, err
	}
	return &language, nil
}

func (s *Store) PutItem(ctx context.Context, item rulebook.Item) error {
	return s.putReference(ctx, "items", item.WorldID, item.ID, item)
}

func (s *Store) GetItem(ctx context.Context, worldID, id string) (*rulebook.Item, error) {
	var item rulebook.Item
	found, err := s.getReference(ctx, "items", worldID, id, &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}
