// Package rules maps detected events to alert drafts and safety-score
// adjustments. Everything here is a pure function over the store's data
// shapes; persistence and notification stay in the store.
package rules

import (
	"fmt"
	"time"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

// Score penalties per event type. The panic penalty is applied uniformly in
// every flow, including the scripted demo.
const (
	GeofencePenalty     = 15
	PanicPenalty        = 25
	AnomalyMinorPenalty = 10
	AnomalyMajorPenalty = 20
)

// Event is a detected occurrence to be converted into an alert.
type Event struct {
	Type model.AlertType
	// Zone is set for geofence events only.
	Zone *model.GeofenceZone
	// Severity overrides the anomaly grade; low and medium are valid.
	Severity model.Severity
	// Description overrides the default alert description when non-empty.
	Description string
}

// Outcome pairs the alert draft (no ID assigned yet) with the score delta to
// apply to the tourist.
type Outcome struct {
	Draft      model.Alert
	ScoreDelta int
}

// Evaluate produces the alert draft and score delta for an event against the
// tourist's current state. The draft carries the tourist's current location,
// the firing timestamp and resolved=false.
func Evaluate(event Event, tourist model.Tourist, now time.Time) Outcome {
	draft := model.Alert{
		TouristID: tourist.ID,
		Type:      event.Type,
		Location:  tourist.Location,
		Timestamp: now,
		Resolved:  false,
	}

	var delta int
	switch event.Type {
	case model.AlertTypeGeofence:
		draft.Title = "Geofence Violation"
		draft.Severity = model.SeverityMedium
		draft.Description = "Tourist entered a monitored area"
		if event.Zone != nil {
			draft.Description = fmt.Sprintf("Tourist entered %s area: %s", event.Zone.Type, event.Zone.Name)
			if event.Zone.Type == model.ZoneTypeRestricted {
				draft.Severity = model.SeverityHigh
			}
		}
		delta = GeofencePenalty

	case model.AlertTypePanic:
		draft.Title = "Emergency SOS Triggered"
		draft.Severity = model.SeverityHigh
		draft.Description = "Tourist activated panic button - immediate assistance required"
		delta = PanicPenalty

	case model.AlertTypeAnomaly:
		draft.Title = "Unusual Activity Detected"
		draft.Severity = model.SeverityLow
		draft.Description = "Irregular movement pattern detected"
		delta = AnomalyMinorPenalty
		if event.Severity == model.SeverityMedium {
			draft.Severity = model.SeverityMedium
			delta = AnomalyMajorPenalty
		}
	}

	if event.Description != "" {
		draft.Description = event.Description
	}

	return Outcome{Draft: draft, ScoreDelta: delta}
}

// ApplyScore subtracts delta from score and clamps the result to [0, 100].
// The only upward move modeled is the reset to 100 at registration.
func ApplyScore(score, delta int) int {
	next := score - delta
	if next < 0 {
		return 0
	}
	if next > 100 {
		return 100
	}
	return next
}
