package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret-123", 24*time.Hour)

	token, err := svc.GenerateToken("hallitus", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "hallitus", claims.Username)
	assert.Equal(t, "admin", claims.Role)

	// Expiry sits roughly 24h out.
	expires := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expires, time.Minute)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, err := issuer.GenerateToken("hallitus", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_Expired(t *testing.T) {
	svc := New("test-secret-123", -time.Minute)

	token, err := svc.GenerateToken("hallitus", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestValidate_Garbage(t *testing.T) {
	svc := New("test-secret-123", time.Hour)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalid)
}
