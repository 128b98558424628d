package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/krish-027/safar-guardian-pilot/internal/geo"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/rules"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// SubjectLocation carries simulated movement from the simulator to the
// tracker.
const SubjectLocation = "safar.uplink.LOCATION"

// TrackerService turns location updates and manual triggers into alerts and
// score adjustments via the rule engine.
type TrackerService struct {
	store   *store.Store
	zones   *rules.ZoneTracker
	archive *AlertArchive
	sub     *nats.Subscription
}

// NewTrackerService creates a new tracker. archive may be nil.
func NewTrackerService(st *store.Store, archive *AlertArchive) *TrackerService {
	return &TrackerService{
		store:   st,
		zones:   rules.NewZoneTracker(),
		archive: archive,
	}
}

// Start subscribes to the simulated location feed.
func (s *TrackerService) Start(nc *nats.Conn) error {
	sub, err := nc.Subscribe(SubjectLocation, func(msg *nats.Msg) {
		var locMsg model.LocationMessage
		if err := json.Unmarshal(msg.Data, &locMsg); err != nil {
			log.Printf("[Tracker] Failed to unmarshal location message: %v", err)
			return
		}

		loc := model.Location{Lat: locMsg.Lat, Lng: locMsg.Lng}
		if _, err := s.UpdateLocation(context.Background(), locMsg.TouristID, loc); err != nil {
			log.Printf("[Tracker] Failed to process location update: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", SubjectLocation, err)
	}

	s.sub = sub
	log.Println("[Tracker] Subscribed to location updates")
	return nil
}

// Stop drops the location subscription.
func (s *TrackerService) Stop() {
	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			log.Printf("[Tracker] Failed to unsubscribe: %v", err)
		}
	}
}

// UpdateLocation moves a tourist and runs the edge-triggered geofence check.
// It returns the alert created by a zone entry, or nil when the move crossed
// no boundary. Repeated updates inside the same zone do not re-fire.
func (s *TrackerService) UpdateLocation(ctx context.Context, touristID string, loc model.Location) (*model.Alert, error) {
	if err := s.store.UpdateTourist(ctx, touristID, store.TouristUpdate{Location: &loc}); err != nil {
		return nil, err
	}

	doc := s.store.Read(ctx)
	zone := geo.CheckViolation(loc, doc.GeofenceZones)
	entered := s.zones.Transition(touristID, zone)
	if !entered {
		return nil, nil
	}

	// Entering a safe zone is tracked but produces no alert.
	if zone.Type == model.ZoneTypeSafe {
		return nil, nil
	}

	alert, err := s.fire(ctx, touristID, rules.Event{Type: model.AlertTypeGeofence, Zone: zone})
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// Panic fires an emergency SOS for a tourist.
func (s *TrackerService) Panic(ctx context.Context, touristID string) (model.Alert, error) {
	return s.fire(ctx, touristID, rules.Event{Type: model.AlertTypePanic})
}

// Anomaly fires an anomaly alert. Severity low and medium map to the minor
// and major penalties.
func (s *TrackerService) Anomaly(ctx context.Context, touristID string, severity model.Severity, description string) (model.Alert, error) {
	if severity == "" {
		severity = model.SeverityLow
	}
	if severity != model.SeverityLow && severity != model.SeverityMedium {
		return model.Alert{}, fmt.Errorf("unsupported anomaly severity: %s", severity)
	}
	return s.fire(ctx, touristID, rules.Event{
		Type:        model.AlertTypeAnomaly,
		Severity:    severity,
		Description: description,
	})
}

// fire evaluates the event, persists the alert and applies the score delta.
func (s *TrackerService) fire(ctx context.Context, touristID string, event rules.Event) (model.Alert, error) {
	tourist, err := s.store.GetTourist(ctx, touristID)
	if err != nil {
		return model.Alert{}, err
	}

	outcome := rules.Evaluate(event, tourist, time.Now().UTC())
	alert, err := s.store.CreateAlert(ctx, outcome.Draft)
	if err != nil {
		return model.Alert{}, err
	}

	score := rules.ApplyScore(tourist.SafetyScore, outcome.ScoreDelta)
	if err := s.store.UpdateTourist(ctx, touristID, store.TouristUpdate{SafetyScore: &score}); err != nil {
		return model.Alert{}, err
	}

	if s.archive != nil {
		s.archive.Record(ctx, alert)
	}

	log.Printf("[Tracker] %s alert for %s, score %d -> %d", alert.Type, touristID, tourist.SafetyScore, score)
	return alert, nil
}
