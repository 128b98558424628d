package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 3000, cfg.APIPort)
	assert.Equal(t, "smartSafarData", cfg.StoreKey)
	assert.Equal(t, "officer", cfg.OfficerUsername)
	assert.Equal(t, 2*time.Second, cfg.DemoStepDelay)
	assert.Empty(t, cfg.DatabaseURL, "archive is opt-in")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "8080")
	t.Setenv("STORE_KEY", "testData")
	t.Setenv("DEMO_STEP_DELAY_MS", "50")

	cfg := Load()
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, "testData", cfg.StoreKey)
	assert.Equal(t, 50*time.Millisecond, cfg.DemoStepDelay)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("API_PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 3000, cfg.APIPort)
}
