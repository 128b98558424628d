package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// DemoService runs the scripted event sequence against the first registered
// tourist: geofence entry, panic, anomaly, with a fixed pacing delay between
// steps. The score deltas come from the rule engine, so the demo applies the
// same uniform panic penalty as every other flow.
type DemoService struct {
	store     *store.Store
	tracker   *TrackerService
	stepDelay time.Duration
}

// NewDemoService creates a demo runner. stepDelay spaces the scripted events
// to feel like real-time detections.
func NewDemoService(st *store.Store, tracker *TrackerService, stepDelay time.Duration) *DemoService {
	return &DemoService{store: st, tracker: tracker, stepDelay: stepDelay}
}

// Run executes the script to completion. The geofence step moves the tourist
// into the restricted Forest Reserve so the entry alert comes out of the
// normal edge-triggered path.
func (s *DemoService) Run(ctx context.Context) error {
	tourists := s.store.ListTourists(ctx)
	if len(tourists) == 0 {
		return errors.New("demo: no tourists registered")
	}
	tourist := tourists[0]

	log.Printf("[Demo] Running scripted sequence for %s", tourist.ID)

	if _, err := s.tracker.UpdateLocation(ctx, tourist.ID, model.Location{Lat: 31.5200, Lng: 77.3200}); err != nil {
		return err
	}
	log.Println("[Demo] Step 1: geofence violation created")

	time.Sleep(s.stepDelay)
	if _, err := s.tracker.Panic(ctx, tourist.ID); err != nil {
		return err
	}
	log.Println("[Demo] Step 2: panic alert created")

	time.Sleep(s.stepDelay)
	if _, err := s.tracker.Anomaly(ctx, tourist.ID, model.SeverityMedium, "Automated demo: unusual movement pattern detected"); err != nil {
		return err
	}
	log.Println("[Demo] Step 3: anomaly alert created")

	log.Println("[Demo] Sequence completed")
	return nil
}
