package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	// Known SHA-256 vector.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Hash(""))

	digest := Hash("rajesh-aadhaar-1234")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, Hash("rajesh-aadhaar-1234"), "hash must be deterministic")
	assert.NotEqual(t, digest, Hash("rajesh-aadhaar-1235"))
}

func TestIdentityFingerprint(t *testing.T) {
	got := IdentityFingerprint("Rajesh Kumar", "aadhaar", "1234-5678-9012", "2024-01-15T10:30:00Z")
	want := Hash("Rajesh Kumar-aadhaar-1234-5678-9012-2024-01-15T10:30:00Z")
	assert.Equal(t, want, got)
}

func TestEncodeQR(t *testing.T) {
	png, err := EncodeQR(`{"id":"tourist-1"}`, 128)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
