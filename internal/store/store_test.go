package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

func newTestStore() (*Store, *MemoryKV, *bus.MemoryBus) {
	kv := NewMemoryKV()
	b := bus.NewMemory()
	return New(kv, DefaultKey, b), kv, b
}

func TestReadSeedsOnFirstUse(t *testing.T) {
	ctx := context.Background()
	st, kv, _ := newTestStore()

	doc := st.Read(ctx)
	assert.Len(t, doc.Tourists, 3)
	assert.Len(t, doc.Alerts, 5)
	assert.Len(t, doc.GeofenceZones, 2)
	assert.Equal(t, "en", doc.Settings.Language)

	// The seed is persisted on first read.
	raw1, ok, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)

	// A second read with no intervening write returns the identical bytes.
	doc2 := st.Read(ctx)
	assert.Equal(t, doc, doc2)
	raw2, _, _ := kv.Get(ctx, DefaultKey)
	assert.Equal(t, raw1, raw2)
}

func TestSeedSerializationSurface(t *testing.T) {
	ctx := context.Background()
	st, kv, _ := newTestStore()
	st.Read(ctx)

	raw, _, err := kv.Get(ctx, DefaultKey)
	require.NoError(t, err)

	// Field names and enum strings are the compatibility surface with the
	// original client's persisted document.
	payload := string(raw)
	for _, want := range []string{
		`"documentType":"aadhaar"`,
		`"documentType":"passport"`,
		`"qrCode"`,
		`"blockchainHash"`,
		`"geofenceZones"`,
		`"shareLocation"`,
		`"type":"restricted"`,
		`"severity":"high"`,
	} {
		assert.True(t, strings.Contains(payload, want), "persisted document must contain %s", want)
	}
}

func TestCreateAlertPrependsAndNotifies(t *testing.T) {
	ctx := context.Background()
	st, _, b := newTestStore()
	st.Read(ctx)

	var notified int
	b.Subscribe(func() { notified++ })

	alert, err := st.CreateAlert(ctx, model.Alert{
		TouristID: "tourist-1",
		Type:      model.AlertTypePanic,
		Title:     "Emergency SOS Triggered",
		Severity:  model.SeverityHigh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, alert.ID)

	alerts := st.ListAlerts(ctx)
	require.Len(t, alerts, 6)
	assert.Equal(t, alert.ID, alerts[0].ID, "newest alert goes first")
	assert.Equal(t, 1, notified)
}

func TestCreateAlertRejectsUnknownTourist(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	_, err := st.CreateAlert(ctx, model.Alert{TouristID: "tourist-999"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, st.ListAlerts(ctx), 5, "rejected alert must not be stored")
}

func TestCreateAlertIDsUniqueUnderRapidCalls(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		alert, err := st.CreateAlert(ctx, model.Alert{TouristID: "tourist-1", Type: model.AlertTypeAnomaly})
		require.NoError(t, err)
		assert.False(t, seen[alert.ID], "duplicate alert id %s", alert.ID)
		seen[alert.ID] = true
	}
	assert.Len(t, seen, 100)
}

func TestAddTourist(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	tourist := model.Tourist{
		ID:          "tourist-new",
		FullName:    "Asha Verma",
		SafetyScore: 100,
		Alerts:      []model.Alert{{ID: "stray"}}, // must not survive
	}
	require.NoError(t, st.AddTourist(ctx, tourist))

	got, err := st.GetTourist(ctx, "tourist-new")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", got.FullName)
	assert.Empty(t, got.Alerts, "per-tourist alert copies are not stored")

	err = st.AddTourist(ctx, model.Tourist{ID: "tourist-new"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, st.ListTourists(ctx), 4)
}

func TestUpdateTouristPartialMerge(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	score := 42
	require.NoError(t, st.UpdateTourist(ctx, "tourist-1", TouristUpdate{SafetyScore: &score}))

	got, err := st.GetTourist(ctx, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, 42, got.SafetyScore)
	assert.Equal(t, "Rajesh Kumar", got.FullName, "untouched fields survive")
	assert.Equal(t, model.Location{Lat: 31.1048, Lng: 77.1734}, got.Location)

	loc := model.Location{Lat: 31.52, Lng: 77.32}
	require.NoError(t, st.UpdateTourist(ctx, "tourist-1", TouristUpdate{Location: &loc}))
	got, _ = st.GetTourist(ctx, "tourist-1")
	assert.Equal(t, loc, got.Location)
	assert.Equal(t, 42, got.SafetyScore)
}

func TestUpdateTouristNotFound(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	score := 10
	err := st.UpdateTourist(ctx, "tourist-999", TouristUpdate{SafetyScore: &score})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertsByTourist(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	alerts := st.AlertsByTourist(ctx, "tourist-1")
	require.Len(t, alerts, 2)
	for _, a := range alerts {
		assert.Equal(t, "tourist-1", a.TouristID)
	}
	assert.Empty(t, st.AlertsByTourist(ctx, "tourist-999"))
}

func TestResolveAlert(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	require.NoError(t, st.ResolveAlert(ctx, "alert-1"))
	for _, a := range st.ListAlerts(ctx) {
		if a.ID == "alert-1" {
			assert.True(t, a.Resolved)
		}
	}

	assert.ErrorIs(t, st.ResolveAlert(ctx, "alert-999"), ErrNotFound)
}

func TestUpdateSettingsShallowMerge(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	dev := true
	got := st.UpdateSettings(ctx, model.UpdateSettingsRequest{DeveloperMode: &dev})
	assert.True(t, got.DeveloperMode)
	assert.Equal(t, "en", got.Language)
	assert.True(t, got.Notifications, "unspecified fields keep their value")
}

func TestReadFallsBackToSeedOnCorruptPayload(t *testing.T) {
	ctx := context.Background()
	st, kv, _ := newTestStore()

	require.NoError(t, kv.Set(ctx, DefaultKey, []byte("{not json")))

	doc := st.Read(ctx)
	assert.Len(t, doc.Tourists, 3, "corrupt document falls back to seed")

	// The reseed is persisted, so the next read is clean.
	doc2 := st.Read(ctx)
	assert.Equal(t, doc, doc2)
}

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("quota exceeded")
}
func (brokenKV) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestDegradesGracefullyWhenPersistenceFails(t *testing.T) {
	ctx := context.Background()
	b := bus.NewMemory()
	st := New(brokenKV{}, DefaultKey, b)

	var notified int
	b.Subscribe(func() { notified++ })

	doc := st.Read(ctx)
	assert.Len(t, doc.Tourists, 3, "read degrades to the seed dataset")

	// The dropped write must not notify observers of a change that never
	// became durable.
	st.Write(ctx, doc)
	assert.Zero(t, notified)
}

func TestSafetyScoreStaysInRangeAcrossOperations(t *testing.T) {
	ctx := context.Background()
	st, _, _ := newTestStore()

	for i := 0; i < 20; i++ {
		score := 100 - i*15
		if score < 0 {
			score = 0
		}
		require.NoError(t, st.UpdateTourist(ctx, "tourist-1", TouristUpdate{SafetyScore: &score}))
		got, err := st.GetTourist(ctx, "tourist-1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.SafetyScore, 0)
		assert.LessOrEqual(t, got.SafetyScore, 100)
	}
}

func TestWriteNotifiesEveryObserver(t *testing.T) {
	ctx := context.Background()
	st, _, b := newTestStore()
	doc := st.Read(ctx)

	counts := make([]int, 3)
	for i := range counts {
		i := i
		b.Subscribe(func() { counts[i]++ })
	}

	st.Write(ctx, doc)
	for i, c := range counts {
		assert.Equal(t, 1, c, fmt.Sprintf("observer %d", i))
	}
}
