package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

var testTourist = model.Tourist{
	ID:          "tourist-1",
	SafetyScore: 85,
	Location:    model.Location{Lat: 31.52, Lng: 77.32},
}

func TestEvaluate(t *testing.T) {
	restricted := model.GeofenceZone{ID: "z1", Name: "Forest Reserve", Type: model.ZoneTypeRestricted}
	danger := model.GeofenceZone{ID: "z2", Name: "Cliff Trail", Type: model.ZoneTypeDanger}

	tests := []struct {
		name         string
		event        Event
		wantTitle    string
		wantSeverity model.Severity
		wantDelta    int
	}{
		{
			name:         "restricted zone entry",
			event:        Event{Type: model.AlertTypeGeofence, Zone: &restricted},
			wantTitle:    "Geofence Violation",
			wantSeverity: model.SeverityHigh,
			wantDelta:    15,
		},
		{
			name:         "danger zone entry",
			event:        Event{Type: model.AlertTypeGeofence, Zone: &danger},
			wantTitle:    "Geofence Violation",
			wantSeverity: model.SeverityMedium,
			wantDelta:    15,
		},
		{
			name:         "panic",
			event:        Event{Type: model.AlertTypePanic},
			wantTitle:    "Emergency SOS Triggered",
			wantSeverity: model.SeverityHigh,
			wantDelta:    25,
		},
		{
			name:         "minor anomaly",
			event:        Event{Type: model.AlertTypeAnomaly, Severity: model.SeverityLow},
			wantTitle:    "Unusual Activity Detected",
			wantSeverity: model.SeverityLow,
			wantDelta:    10,
		},
		{
			name:         "major anomaly",
			event:        Event{Type: model.AlertTypeAnomaly, Severity: model.SeverityMedium},
			wantTitle:    "Unusual Activity Detected",
			wantSeverity: model.SeverityMedium,
			wantDelta:    20,
		},
	}

	now := time.Date(2024, 1, 17, 9, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate(tt.event, testTourist, now)

			assert.Equal(t, tt.wantTitle, out.Draft.Title)
			assert.Equal(t, tt.wantSeverity, out.Draft.Severity)
			assert.Equal(t, tt.wantDelta, out.ScoreDelta)
			assert.Equal(t, testTourist.ID, out.Draft.TouristID)
			assert.Equal(t, testTourist.Location, out.Draft.Location)
			assert.Equal(t, now, out.Draft.Timestamp)
			assert.False(t, out.Draft.Resolved)
			assert.Empty(t, out.Draft.ID, "the store assigns IDs, not the rule engine")
		})
	}
}

func TestEvaluateGeofenceDescriptionNamesZone(t *testing.T) {
	zone := model.GeofenceZone{ID: "z1", Name: "Forest Reserve", Type: model.ZoneTypeRestricted}
	out := Evaluate(Event{Type: model.AlertTypeGeofence, Zone: &zone}, testTourist, time.Now())
	assert.Equal(t, "Tourist entered restricted area: Forest Reserve", out.Draft.Description)
}

func TestEvaluateDescriptionOverride(t *testing.T) {
	out := Evaluate(Event{Type: model.AlertTypeAnomaly, Description: "Tourist stationary for 3 hours"}, testTourist, time.Now())
	assert.Equal(t, "Tourist stationary for 3 hours", out.Draft.Description)
}

func TestApplyScore(t *testing.T) {
	tests := []struct {
		score, delta, want int
	}{
		{100, 15, 85},
		{85, 25, 60},
		{10, 25, 0},
		{0, 40, 0},
		{100, 0, 100},
		{95, -10, 100}, // upward adjustments still clamp at 100
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyScore(tt.score, tt.delta), "ApplyScore(%d, %d)", tt.score, tt.delta)
	}
}
