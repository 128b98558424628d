package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish-027/safar-guardian-pilot/internal/crypto"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	reg := NewRegistrationService(st)

	tourist, err := reg.Register(ctx, model.RegisterTouristRequest{
		FullName:         "Asha Verma",
		DocumentType:     model.DocumentTypeAadhaar,
		DocumentNumber:   "9999-8888-7777",
		TripStartDate:    "2024-02-01",
		TripEndDate:      "2024-02-10",
		EmergencyContact: "Ravi Verma +91-9000000000",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tourist.ID, "tourist-"))
	assert.Equal(t, 100, tourist.SafetyScore, "every registration starts at a full score")
	assert.Equal(t, model.Location{Lat: 31.1048, Lng: 77.1734}, tourist.Location)
	assert.Empty(t, tourist.Alerts)

	// The fingerprint is recomputable from the identity fields plus the
	// issuance time, which is what makes the digital ID verifiable.
	want := crypto.IdentityFingerprint(
		"Asha Verma",
		"aadhaar",
		"9999-8888-7777",
		tourist.DigitalID.IssuedAt.Format(time.RFC3339),
	)
	assert.Equal(t, want, tourist.DigitalID.BlockchainHash)
	assert.Contains(t, tourist.DigitalID.QRCode, "Asha Verma")
	assert.Contains(t, tourist.DigitalID.QRCode, "9999-8888-7777")

	stored, err := st.GetTourist(ctx, tourist.ID)
	require.NoError(t, err)
	assert.Equal(t, tourist.FullName, stored.FullName)
	assert.Len(t, st.ListTourists(ctx), 4)
}

func TestRegisterRejectsUnknownDocumentType(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistrationService(newTestStore())

	_, err := reg.Register(ctx, model.RegisterTouristRequest{
		FullName:       "Asha Verma",
		DocumentType:   "driving-license",
		DocumentNumber: "DL-123",
	})
	assert.Error(t, err)
}

func TestRegisterIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistrationService(newTestStore())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tourist, err := reg.Register(ctx, model.RegisterTouristRequest{
			FullName:       "Bulk Tourist",
			DocumentType:   model.DocumentTypePassport,
			DocumentNumber: "P0000000",
		})
		require.NoError(t, err)
		assert.False(t, seen[tourist.ID])
		seen[tourist.ID] = true
	}
}

func TestQRCodePNG(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistrationService(newTestStore())

	png, err := reg.QRCodePNG(ctx, "tourist-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"), "QR endpoint returns a PNG image")

	_, err = reg.QRCodePNG(ctx, "tourist-999")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
