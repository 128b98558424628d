package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krish-027/safar-guardian-pilot/internal/config"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	auth, err := NewAuthService(&config.Config{
		OfficerUsername: "officer",
		OfficerPassword: "letmein",
		JWTSecret:       "test-secret",
	})
	require.NoError(t, err)
	return auth
}

func TestLoginAndVerify(t *testing.T) {
	auth := newTestAuth(t)

	token, err := auth.Login("officer", "letmein")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "officer", sub)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.Login("officer", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("admin", "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	auth := newTestAuth(t)

	other, err := NewAuthService(&config.Config{
		OfficerUsername: "officer",
		OfficerPassword: "letmein",
		JWTSecret:       "different-secret",
	})
	require.NoError(t, err)

	token, err := other.Login("officer", "letmein")
	require.NoError(t, err)

	_, err = auth.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
