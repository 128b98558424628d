package rules

import (
	"sync"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

// ZoneTracker remembers, per tourist, whether the last evaluated position was
// inside a zone. Geofence alerts are edge-triggered: one fires only on the
// transition from outside every zone to inside one, never while the tourist
// stays inside.
type ZoneTracker struct {
	mu     sync.Mutex
	inside map[string]string // tourist ID -> containing zone ID, absent when outside
}

// NewZoneTracker constructs an empty tracker.
func NewZoneTracker() *ZoneTracker {
	return &ZoneTracker{inside: make(map[string]string)}
}

// Transition records the containment result for a tourist and reports
// whether this evaluation crossed from outside into a zone. A nil zone means
// the position is outside every zone and resets the state.
func (t *ZoneTracker) Transition(touristID string, zone *model.GeofenceZone) (entered bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, wasInside := t.inside[touristID]
	if zone == nil {
		delete(t.inside, touristID)
		return false
	}

	t.inside[touristID] = zone.ID
	return !wasInside
}
