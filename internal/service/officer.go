package service

import (
	"context"
	"math"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// OfficerService backs the officer dashboard: aggregate stats and alert
// resolution.
type OfficerService struct {
	store *store.Store
}

// NewOfficerService creates a new officer service.
func NewOfficerService(st *store.Store) *OfficerService {
	return &OfficerService{store: st}
}

// Stats summarizes the current document for the dashboard header.
func (s *OfficerService) Stats(ctx context.Context) model.DashboardStats {
	doc := s.store.Read(ctx)

	stats := model.DashboardStats{TotalTourists: len(doc.Tourists)}
	for _, a := range doc.Alerts {
		if a.Resolved {
			stats.ResolvedAlerts++
		} else {
			stats.ActiveAlerts++
		}
	}

	if len(doc.Tourists) > 0 {
		sum := 0
		for _, t := range doc.Tourists {
			sum += t.SafetyScore
		}
		stats.AverageSafetyScore = int(math.Round(float64(sum) / float64(len(doc.Tourists))))
	}

	return stats
}

// Resolve marks an alert handled. Resolution is the one mutation allowed on
// an alert after creation.
func (s *OfficerService) Resolve(ctx context.Context, alertID string) error {
	return s.store.ResolveAlert(ctx, alertID)
}
