package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "sid-1", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseRejectsOtherSecret(t *testing.T) {
	token, err := GenerateToken([]byte("a"), "sid-1", 0)
	require.NoError(t, err)

	_, err = ParseToken([]byte("b"), token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "sid-1", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, token)
	assert.Error(t, err)
}
