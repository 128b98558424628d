package store

import (
	"time"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

// seedDocument returns the deterministic demo dataset used when no persisted
// state exists: three tourists around Himachal Pradesh, five alerts and two
// monitored zones.
func seedDocument() model.Document {
	return model.Document{
		Tourists: []model.Tourist{
			{
				ID:               "tourist-1",
				FullName:         "Rajesh Kumar",
				DocumentType:     model.DocumentTypeAadhaar,
				DocumentNumber:   "1234-5678-9012",
				TripStartDate:    "2024-01-15",
				TripEndDate:      "2024-01-22",
				EmergencyContact: "Priya Kumar +91-9876543210",
				SafetyScore:      85,
				Location:         model.Location{Lat: 31.1048, Lng: 77.1734},
				DigitalID: model.DigitalID{
					QRCode:         "QR_CODE_DATA_1",
					BlockchainHash: "a1b2c3d4e5f6789012345678901234567890abcdef1234567890abcdef123456",
					IssuedAt:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
				},
				Alerts: []model.Alert{},
			},
			{
				ID:               "tourist-2",
				FullName:         "Priya Sharma",
				DocumentType:     model.DocumentTypePassport,
				DocumentNumber:   "P1234567",
				TripStartDate:    "2024-01-10",
				TripEndDate:      "2024-01-20",
				EmergencyContact: "Amit Sharma +91-9876543211",
				SafetyScore:      70,
				Location:         model.Location{Lat: 31.2000, Lng: 77.2000},
				DigitalID: model.DigitalID{
					QRCode:         "QR_CODE_DATA_2",
					BlockchainHash: "b2c3d4e5f6789012345678901234567890abcdef1234567890abcdef1234567",
					IssuedAt:       time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
				},
				Alerts: []model.Alert{},
			},
			{
				ID:               "tourist-3",
				FullName:         "David Johnson",
				DocumentType:     model.DocumentTypePassport,
				DocumentNumber:   "US123456789",
				TripStartDate:    "2024-01-12",
				TripEndDate:      "2024-01-25",
				EmergencyContact: "Sarah Johnson +1-555-123-4567",
				SafetyScore:      95,
				Location:         model.Location{Lat: 31.0500, Lng: 77.1200},
				DigitalID: model.DigitalID{
					QRCode:         "QR_CODE_DATA_3",
					BlockchainHash: "c3d4e5f6789012345678901234567890abcdef1234567890abcdef12345678",
					IssuedAt:       time.Date(2024, 1, 12, 14, 20, 0, 0, time.UTC),
				},
				Alerts: []model.Alert{},
			},
		},
		Alerts: []model.Alert{
			{
				ID:          "alert-1",
				TouristID:   "tourist-1",
				Type:        model.AlertTypeGeofence,
				Title:       "Geofence Violation",
				Description: "Tourist entered restricted area: Forest Reserve",
				Location:    model.Location{Lat: 31.5200, Lng: 77.3200},
				Timestamp:   time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC),
				Severity:    model.SeverityHigh,
				Resolved:    false,
			},
			{
				ID:          "alert-2",
				TouristID:   "tourist-2",
				Type:        model.AlertTypePanic,
				Title:       "Emergency SOS Triggered",
				Description: "Tourist activated panic button",
				Location:    model.Location{Lat: 31.2000, Lng: 77.2000},
				Timestamp:   time.Date(2024, 1, 16, 12, 15, 0, 0, time.UTC),
				Severity:    model.SeverityHigh,
				Resolved:    true,
			},
			{
				ID:          "alert-3",
				TouristID:   "tourist-1",
				Type:        model.AlertTypeAnomaly,
				Title:       "Unusual Movement Pattern",
				Description: "Tourist has been stationary for over 3 hours",
				Location:    model.Location{Lat: 31.1048, Lng: 77.1734},
				Timestamp:   time.Date(2024, 1, 16, 16, 45, 0, 0, time.UTC),
				Severity:    model.SeverityMedium,
				Resolved:    false,
			},
			{
				ID:          "alert-4",
				TouristID:   "tourist-3",
				Type:        model.AlertTypeGeofence,
				Title:       "High Risk Zone Entry",
				Description: "Tourist approaching cliff trail danger zone",
				Location:    model.Location{Lat: 31.0750, Lng: 77.1250},
				Timestamp:   time.Date(2024, 1, 16, 11, 20, 0, 0, time.UTC),
				Severity:    model.SeverityMedium,
				Resolved:    true,
			},
			{
				ID:          "alert-5",
				TouristID:   "tourist-2",
				Type:        model.AlertTypeAnomaly,
				Title:       "Low Battery Alert",
				Description: "Tourist device battery critically low",
				Location:    model.Location{Lat: 31.2000, Lng: 77.2000},
				Timestamp:   time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC),
				Severity:    model.SeverityLow,
				Resolved:    true,
			},
		},
		GeofenceZones: []model.GeofenceZone{
			{
				ID:   "zone-1",
				Name: "Forest Reserve",
				Type: model.ZoneTypeRestricted,
				Coordinates: [][2]float64{
					{77.3000, 31.5000},
					{77.3500, 31.5000},
					{77.3500, 31.5500},
					{77.3000, 31.5500},
					{77.3000, 31.5000},
				},
				Description: "Protected wildlife sanctuary with limited access",
				Color:       "#E53935",
			},
			{
				ID:   "zone-2",
				Name: "Cliff Trail",
				Type: model.ZoneTypeDanger,
				Coordinates: [][2]float64{
					{77.1000, 31.0500},
					{77.1500, 31.0500},
					{77.1500, 31.1000},
					{77.1000, 31.1000},
					{77.1000, 31.0500},
				},
				Description: "Steep cliff area prone to landslides",
				Color:       "#FF9800",
			},
		},
		Settings: model.Settings{
			Language:      "en",
			Notifications: true,
			ShareLocation: true,
			DeveloperMode: false,
		},
	}
}
