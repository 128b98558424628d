// Package geo evaluates tourist positions against geofence zones.
package geo

import (
	"math"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

const earthRadiusKm = 6371

// PointInPolygon reports whether loc falls inside the polygon using the
// even-odd ray-casting test. Polygon vertices are [lng, lat] pairs; the ring
// is treated as closed whether or not the first vertex is repeated at the
// end, since a duplicated closing vertex forms a degenerate edge that never
// flips the parity. Self-intersecting polygons are undefined behavior.
func PointInPolygon(loc model.Location, polygon [][2]float64) bool {
	x, y := loc.Lng, loc.Lat
	inside := false

	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i][0], polygon[i][1]
		xj, yj := polygon[j][0], polygon[j][1]

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

// CheckViolation returns the first zone in list order whose polygon contains
// loc, or nil when no zone does. Overlapping zones are resolved by list
// order, not severity.
func CheckViolation(loc model.Location, zones []model.GeofenceZone) *model.GeofenceZone {
	for i := range zones {
		if PointInPolygon(loc, zones[i].Coordinates) {
			return &zones[i]
		}
	}
	return nil
}

// Distance returns the haversine great-circle distance between two points in
// kilometers. Inputs are not validated.
func Distance(p1, p2 model.Location) float64 {
	dLat := (p2.Lat - p1.Lat) * math.Pi / 180
	dLng := (p2.Lng - p1.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1.Lat*math.Pi/180)*math.Cos(p2.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
