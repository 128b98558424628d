package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/krish-027/safar-guardian-pilot/internal/crypto"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// RegistrationService issues digital IDs and adds tourists to the store.
type RegistrationService struct {
	store *store.Store
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(st *store.Store) *RegistrationService {
	return &RegistrationService{store: st}
}

// Register creates a tourist with a fresh safety score of 100 and a digital
// ID computed once at registration; the ID is immutable afterwards.
func (s *RegistrationService) Register(ctx context.Context, req model.RegisterTouristRequest) (model.Tourist, error) {
	if req.DocumentType != model.DocumentTypeAadhaar && req.DocumentType != model.DocumentTypePassport {
		return model.Tourist{}, fmt.Errorf("unsupported document type: %s", req.DocumentType)
	}

	now := time.Now().UTC().Truncate(time.Second)
	fingerprint := crypto.IdentityFingerprint(
		req.FullName,
		string(req.DocumentType),
		req.DocumentNumber,
		now.Format(time.RFC3339),
	)

	tourist := model.Tourist{
		ID:               newTouristID(),
		FullName:         req.FullName,
		DocumentType:     req.DocumentType,
		DocumentNumber:   req.DocumentNumber,
		TripStartDate:    req.TripStartDate,
		TripEndDate:      req.TripEndDate,
		EmergencyContact: req.EmergencyContact,
		SafetyScore:      100,
		Location:         model.Location{Lat: 31.1048, Lng: 77.1734}, // Himachal center until first update
		DigitalID: model.DigitalID{
			QRCode:         fmt.Sprintf("%s-%s-%d", req.FullName, req.DocumentNumber, now.UnixMilli()),
			BlockchainHash: fingerprint,
			IssuedAt:       now,
		},
		Alerts: []model.Alert{},
	}

	if err := s.store.AddTourist(ctx, tourist); err != nil {
		return model.Tourist{}, err
	}

	log.Printf("[Registration] Issued digital ID for %s (%s)", tourist.FullName, tourist.ID)
	return tourist, nil
}

// QRCodePNG renders the digital-ID payload of a tourist as a QR code image.
func (s *RegistrationService) QRCodePNG(ctx context.Context, touristID string) ([]byte, error) {
	tourist, err := s.store.GetTourist(ctx, touristID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{
		"id":           tourist.ID,
		"name":         tourist.FullName,
		"documentType": string(tourist.DocumentType),
		"hash":         tourist.DigitalID.BlockchainHash,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}

	return crypto.EncodeQR(string(payload), 256)
}

func newTouristID() string {
	return fmt.Sprintf("tourist-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
