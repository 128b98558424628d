package model

// RegisterTouristRequest is the registration payload.
type RegisterTouristRequest struct {
	FullName         string       `json:"fullName" binding:"required"`
	DocumentType     DocumentType `json:"documentType" binding:"required"`
	DocumentNumber   string       `json:"documentNumber" binding:"required"`
	TripStartDate    string       `json:"tripStartDate" binding:"required"`
	TripEndDate      string       `json:"tripEndDate" binding:"required"`
	EmergencyContact string       `json:"emergencyContact"`
}

// UpdateLocationRequest moves a tourist to a new position. Coordinates are
// not validated; lat=0 and lng=0 are legitimate positions, so no binding
// constraint is placed on them.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AnomalyRequest reports a detected anomaly. Severity must be low or medium;
// an empty value defaults to low.
type AnomalyRequest struct {
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// UpdateSettingsRequest carries a partial settings update. Nil fields are
// left untouched.
type UpdateSettingsRequest struct {
	Language      *string `json:"language"`
	Notifications *bool   `json:"notifications"`
	ShareLocation *bool   `json:"shareLocation"`
	DeveloperMode *bool   `json:"developerMode"`
}

// LoginRequest is the officer login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DashboardStats summarizes the store for the officer dashboard.
type DashboardStats struct {
	TotalTourists      int `json:"totalTourists"`
	ActiveAlerts       int `json:"activeAlerts"`
	ResolvedAlerts     int `json:"resolvedAlerts"`
	AverageSafetyScore int `json:"averageSafetyScore"`
}

// LocationMessage is a simulated location update carried over NATS, published
// by the simulator and consumed by the tracker.
type LocationMessage struct {
	TouristID string  `json:"touristId"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"`
}
