// Package store owns the authoritative safety-state document: all tourists,
// alerts, zones and settings, persisted as a single JSON value under one key.
//
// Mutations are synchronous read-modify-write replacements of the whole
// document; two writers racing from independent processes resolve by
// last-write-wins. Persistence failures degrade gracefully: reads fall back
// to the seed dataset and writes are dropped after logging, so no operation
// fails loudly in front of a demo audience. Both degradations are logged
// rather than silent.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

// DefaultKey is the persistence key the original client stored its document
// under; it is part of the compatibility surface.
const DefaultKey = "smartSafarData"

var (
	// ErrNotFound is returned when an operation targets an unknown tourist
	// or alert.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned when adding a tourist whose ID is taken.
	ErrDuplicateID = errors.New("duplicate id")
)

// TouristUpdate is a partial tourist mutation. Nil fields are left untouched.
type TouristUpdate struct {
	SafetyScore      *int
	Location         *model.Location
	EmergencyContact *string
	TripEndDate      *string
}

// Store is the aggregate root. One instance is constructed in main and
// injected into every collaborator; there is no ambient singleton.
type Store struct {
	mu  sync.Mutex
	kv  KV
	key string
	bus bus.Bus
}

// New constructs a store over the given persistence collaborator and
// notification bus.
func New(kv KV, key string, b bus.Bus) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key, bus: b}
}

// Read returns the current document. When no persisted state exists the seed
// dataset is persisted and returned; when persistence fails or the payload
// is corrupt the seed is returned after logging.
func (s *Store) Read(ctx context.Context) model.Document {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Printf("[Store] Read failed, falling back to seed: %v", err)
		return seedDocument()
	}
	if !ok {
		doc := seedDocument()
		s.persist(ctx, doc)
		return doc
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("[Store] Corrupt document, reseeding: %v", err)
		doc = seedDocument()
		s.persist(ctx, doc)
		return doc
	}
	return doc
}

// Write replaces the persisted document wholesale and notifies observers.
// Last writer wins; there is no merge or conflict detection.
func (s *Store) Write(ctx context.Context, doc model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked(ctx, doc)
}

// CreateAlert assigns a unique ID, prepends the alert to the list (newest
// first), persists and notifies. The referenced tourist must exist.
func (s *Store) CreateAlert(ctx context.Context, draft model.Alert) (model.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Read(ctx)
	if findTourist(doc.Tourists, draft.TouristID) < 0 {
		return model.Alert{}, fmt.Errorf("create alert for tourist %s: %w", draft.TouristID, ErrNotFound)
	}

	draft.ID = newAlertID()
	doc.Alerts = append([]model.Alert{draft}, doc.Alerts...)
	s.writeLocked(ctx, doc)
	return draft, nil
}

// AddTourist appends a tourist. IDs are unique; a collision is rejected.
func (s *Store) AddTourist(ctx context.Context, t model.Tourist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Read(ctx)
	if findTourist(doc.Tourists, t.ID) >= 0 {
		return fmt.Errorf("add tourist %s: %w", t.ID, ErrDuplicateID)
	}

	// The per-tourist alert list stays empty in the persisted form; the
	// global list is the single source of truth.
	t.Alerts = []model.Alert{}
	doc.Tourists = append(doc.Tourists, t)
	s.writeLocked(ctx, doc)
	return nil
}

// UpdateTourist shallow-merges the partial fields into an existing record.
func (s *Store) UpdateTourist(ctx context.Context, id string, upd TouristUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Read(ctx)
	i := findTourist(doc.Tourists, id)
	if i < 0 {
		return fmt.Errorf("update tourist %s: %w", id, ErrNotFound)
	}

	if upd.SafetyScore != nil {
		doc.Tourists[i].SafetyScore = *upd.SafetyScore
	}
	if upd.Location != nil {
		doc.Tourists[i].Location = *upd.Location
	}
	if upd.EmergencyContact != nil {
		doc.Tourists[i].EmergencyContact = *upd.EmergencyContact
	}
	if upd.TripEndDate != nil {
		doc.Tourists[i].TripEndDate = *upd.TripEndDate
	}

	s.writeLocked(ctx, doc)
	return nil
}

// GetTourist looks up a tourist by ID.
func (s *Store) GetTourist(ctx context.Context, id string) (model.Tourist, error) {
	doc := s.Read(ctx)
	i := findTourist(doc.Tourists, id)
	if i < 0 {
		return model.Tourist{}, fmt.Errorf("tourist %s: %w", id, ErrNotFound)
	}
	return doc.Tourists[i], nil
}

// ListTourists returns all registered tourists.
func (s *Store) ListTourists(ctx context.Context) []model.Tourist {
	return s.Read(ctx).Tourists
}

// ListAlerts returns all alerts, newest first.
func (s *Store) ListAlerts(ctx context.Context) []model.Alert {
	return s.Read(ctx).Alerts
}

// AlertsByTourist returns one tourist's alert history, newest first. This is
// the query that replaces the denormalized per-tourist alert copies the
// original client kept.
func (s *Store) AlertsByTourist(ctx context.Context, touristID string) []model.Alert {
	var out []model.Alert
	for _, a := range s.Read(ctx).Alerts {
		if a.TouristID == touristID {
			out = append(out, a)
		}
	}
	return out
}

// ResolveAlert marks an alert resolved. The resolved flag is the only field
// of an alert that changes after creation.
func (s *Store) ResolveAlert(ctx context.Context, alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Read(ctx)
	for i := range doc.Alerts {
		if doc.Alerts[i].ID == alertID {
			doc.Alerts[i].Resolved = true
			s.writeLocked(ctx, doc)
			return nil
		}
	}
	return fmt.Errorf("resolve alert %s: %w", alertID, ErrNotFound)
}

// GetSettings returns the settings record.
func (s *Store) GetSettings(ctx context.Context) model.Settings {
	return s.Read(ctx).Settings
}

// UpdateSettings shallow-merges the partial update into the settings record.
func (s *Store) UpdateSettings(ctx context.Context, upd model.UpdateSettingsRequest) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.Read(ctx)
	if upd.Language != nil {
		doc.Settings.Language = *upd.Language
	}
	if upd.Notifications != nil {
		doc.Settings.Notifications = *upd.Notifications
	}
	if upd.ShareLocation != nil {
		doc.Settings.ShareLocation = *upd.ShareLocation
	}
	if upd.DeveloperMode != nil {
		doc.Settings.DeveloperMode = *upd.DeveloperMode
	}

	s.writeLocked(ctx, doc)
	return doc.Settings
}

// writeLocked persists the document and fires the change notification. The
// document is durable before the notification goes out, so a slow subscriber
// never affects durability. Callers hold s.mu.
func (s *Store) writeLocked(ctx context.Context, doc model.Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[Store] Dropping write, marshal failed: %v", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		log.Printf("[Store] Dropping write, persistence failed: %v", err)
		return
	}
	if s.bus != nil {
		s.bus.Publish()
	}
}

// persist writes without notifying; used for seeding on first read.
func (s *Store) persist(ctx context.Context, doc model.Document) {
	raw, err := json.Marshal(doc)
	if err != nil {
		log.Printf("[Store] Failed to marshal seed: %v", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		log.Printf("[Store] Failed to persist seed: %v", err)
	}
}

func findTourist(tourists []model.Tourist, id string) int {
	for i := range tourists {
		if tourists[i].ID == id {
			return i
		}
	}
	return -1
}

// newAlertID builds a time-ordered ID that stays unique under rapid
// successive calls within the same millisecond.
func newAlertID() string {
	return fmt.Sprintf("alert-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
