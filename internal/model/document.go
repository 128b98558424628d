package model

// Settings is the process-wide configuration record. A single instance lives
// in the store document and is mutated in place.
type Settings struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	ShareLocation bool   `json:"shareLocation"`
	DeveloperMode bool   `json:"developerMode"`
}

// Document is the aggregate root persisted as one JSON value under a single
// key. The persisted form is the only authoritative copy; every observer
// re-reads it after a change notification.
type Document struct {
	Tourists      []Tourist      `json:"tourists"`
	Alerts        []Alert        `json:"alerts"`
	GeofenceZones []GeofenceZone `json:"geofenceZones"`
	Settings      Settings       `json:"settings"`
}
