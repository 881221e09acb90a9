package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "test-access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	token, err := SignAccessToken("u1")
	require.NoError(t, err)

	userID, err := VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	token, err := SignRefreshToken("u1")
	require.NoError(t, err)

	userID, err := VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	setSecrets(t)

	access, err := SignAccessToken("u1")
	require.NoError(t, err)
	refresh, err := SignRefreshToken("u1")
	require.NoError(t, err)

	_, err = VerifyRefreshToken(access)
	assert.Error(t, err)
	_, err = VerifyAccessToken(refresh)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	setSecrets(t)

	_, err := VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestSignFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := SignAccessToken("u1")
	assert.Error(t, err)
}
