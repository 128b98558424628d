package model

// ZoneType is the safety classification of a geofence zone.
type ZoneType string

const (
	ZoneTypeRestricted ZoneType = "restricted"
	ZoneTypeDanger     ZoneType = "danger"
	ZoneTypeSafe       ZoneType = "safe"
)

// GeofenceZone is a polygonal region with a safety classification. Zones are
// seeded once and treated as read-only reference data by the engine.
//
// Coordinates are [lng, lat] pairs forming a simple polygon. The ring may be
// closed explicitly (first vertex repeated at the end) or left open; the
// evaluator treats both identically.
type GeofenceZone struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ZoneType     `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
	Description string       `json:"description"`
	Color       string       `json:"color"`
}
