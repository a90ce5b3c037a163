package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldmoreira/fuellog/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	s := NewService("test-secret", time.Hour)

	hash, err := s.HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, s.CheckPassword("password123", hash))
	assert.False(t, s.CheckPassword("wrong", hash))
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	user := &models.User{ID: "1700000000000", Username: "owner"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", claims.UserID)
	assert.Equal(t, "owner", claims.Username)
	assert.Greater(t, claims.Exp, time.Now().Unix())
}

func TestValidateToken_BearerPrefix(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	token, err := s.GenerateToken(&models.User{ID: "1", Username: "owner"})
	require.NoError(t, err)

	claims, err := s.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(&models.User{ID: "1", Username: "owner"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	s := NewService("test-secret", -time.Hour)

	token, err := s.GenerateToken(&models.User{ID: "1", Username: "owner"})
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	_, err := s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidatePassword(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	assert.Error(t, s.ValidatePassword("short"))
	assert.NoError(t, s.ValidatePassword("long-enough"))
}

func TestValidateUsername(t *testing.T) {
	s := NewService("test-secret", time.Hour)
	assert.Error(t, s.ValidateUsername("ab"))
	assert.NoError(t, s.ValidateUsername("owner"))
}
