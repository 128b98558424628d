package model

import "time"

// AlertType classifies the event that produced an alert.
type AlertType string

const (
	AlertTypeGeofence AlertType = "geofence"
	AlertTypePanic    AlertType = "panic"
	AlertTypeAnomaly  AlertType = "anomaly"
)

// Severity grades an alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Alert is an immutable event record. Only the Resolved flag changes after
// creation, and only through an officer action against the store.
type Alert struct {
	ID          string    `json:"id"`
	TouristID   string    `json:"touristId"`
	Type        AlertType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    Location  `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Severity    Severity  `json:"severity"`
	Resolved    bool      `json:"resolved"`
}
