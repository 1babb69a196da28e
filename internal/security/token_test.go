package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campushub-backend/internal/domain"
)

const testSecret = "test-secret-at-least-32-characters!!"

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 60*24)

	token, err := m.GenerateAccessToken("u1", "alice@test.com", domain.UserRoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@test.com", claims.Email)
	assert.Equal(t, domain.UserRoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "campushub", claims.Issuer)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 60*24)

	token, err := m.GenerateRefreshToken("u1", "alice@test.com")
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 60*24)
	other := NewTokenManager("another-secret-also-32-characters!!!", 60, 60*24)

	token, err := m.GenerateAccessToken("u1", "alice@test.com", domain.UserRoleStudent)
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	// Zero-minute expiry issues a token that is already expired.
	m := NewTokenManager(testSecret, 0, 0)

	token, err := m.GenerateAccessToken("u1", "alice@test.com", domain.UserRoleStudent)
	assert.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager(testSecret, 60, 60)

	_, err := m.ValidateToken("definitely.not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
