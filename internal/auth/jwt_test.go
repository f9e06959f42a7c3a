package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndVerifyToken(t *testing.T) {
	maker := NewJWTMaker(testSecret)

	signed, claims, err := maker.GenerateToken("user-1", "mina@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.Equal(t, "user-1", claims.UserID)

	parsed, err := maker.VerifyToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, "mina@example.com", parsed.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	maker := NewJWTMaker(testSecret)

	signed, _, err := maker.GenerateToken("user-1", "mina@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(signed)
	assert.Error(t, err)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	signed, _, err := NewJWTMaker(testSecret).GenerateToken("user-1", "mina@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTMaker("another-secret-another-secret-12").VerifyToken(signed)
	assert.Error(t, err)
}
