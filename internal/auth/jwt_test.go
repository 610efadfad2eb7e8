package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectone/platform/internal/config"
	"github.com/conectone/platform/models"
)

func testJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(&config.Config{
		Security: config.SecurityConfig{
			JWTSecret:              "test-secret",
			JWTExpiration:          expiration,
			RefreshTokenExpiration: 7 * 24 * time.Hour,
		},
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       "user-1",
		TenantID: "acme",
		Username: "alice",
		Roles:    []models.Role{models.RoleAdmin},
		Enabled:  true,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "acme", claims.TenantID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []models.Role{models.RoleAdmin}, claims.Roles)
	assert.Equal(t, "conectone", claims.Issuer)
}

func TestGenerateTokenDisabledUser(t *testing.T) {
	svc := testJWTService(time.Hour)

	u := testUser()
	u.Enabled = false
	_, err := svc.GenerateToken(u)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testJWTService(time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(&config.Config{
		Security: config.SecurityConfig{JWTSecret: "other-secret", JWTExpiration: time.Hour},
	})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)

	pair, refresh, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, refresh, pair.RefreshToken)

	hash, err := svc.HashRefreshToken(refresh)
	require.NoError(t, err)
	assert.NoError(t, svc.CompareRefreshToken(refresh, hash))
	assert.Error(t, svc.CompareRefreshToken("tampered", hash))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword("s3cret", hash))
	assert.ErrorIs(t, ComparePassword("wrong", hash), ErrInvalidCredentials)
}

func TestAPIKeys(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.Contains(t, key, "ck_")

	hash, err := HashAPIKey(key)
	require.NoError(t, err)
	assert.NoError(t, CompareAPIKey(key, hash))
	assert.Error(t, CompareAPIKey("ck_bogus", hash))
}
