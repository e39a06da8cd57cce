package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_AccessToken(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	token, err := svc.GenerateAccessToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)

	// An access token must not verify as a refresh token.
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	token, err := svc.GenerateRefreshToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID, "refresh tokens carry a unique JTI")

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")
	other := NewJWTService("other-access", "other-refresh")

	token, err := other.GenerateAccessToken(1, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	svc := NewJWTService("access-secret", "refresh-secret")

	first, err := svc.GenerateRefreshToken(1, "admin")
	require.NoError(t, err)
	second, err := svc.GenerateRefreshToken(1, "admin")
	require.NoError(t, err)

	// The uuid JTI guarantees distinct tokens per login, so storing the
	// newest one invalidates the previous session.
	assert.NotEqual(t, first, second)
}
