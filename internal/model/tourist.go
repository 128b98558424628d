package model

import "time"

// DocumentType identifies the identity document used at registration.
type DocumentType string

const (
	DocumentTypeAadhaar  DocumentType = "aadhaar"
	DocumentTypePassport DocumentType = "passport"
)

// Location represents a GPS location point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DigitalID is the registration credential issued once per tourist. The
// blockchain hash is a content fingerprint for display, not a ledger entry.
type DigitalID struct {
	QRCode         string    `json:"qrCode"`
	BlockchainHash string    `json:"blockchainHash"`
	IssuedAt       time.Time `json:"issuedAt"`
}

// Tourist holds a registered tourist's identity and live safety state.
type Tourist struct {
	ID               string       `json:"id"`
	FullName         string       `json:"fullName"`
	DocumentType     DocumentType `json:"documentType"`
	DocumentNumber   string       `json:"documentNumber"`
	TripStartDate    string       `json:"tripStartDate"`
	TripEndDate      string       `json:"tripEndDate"`
	EmergencyContact string       `json:"emergencyContact"`
	SafetyScore      int          `json:"safetyScore"`
	Location         Location     `json:"location"`
	DigitalID        DigitalID    `json:"digitalId"`

	// Alerts is part of the serialized document format but is always written
	// empty. The global alert list is the single source of truth; use
	// Store.AlertsByTourist for a tourist's history.
	Alerts []Alert `json:"alerts"`
}
