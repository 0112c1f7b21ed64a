package auth

import (
	"testing"
	"time"

	"workhours/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "test_access_secret_key_very_long_for_testing"},
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	ownerID := uuid.New()
	token, err := jwtService.GenerateAccessToken(ownerID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, ownerID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "another-secret"}})
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	cfg := newTestJWTConfig()
	claims := accessClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNonOwnerSubject(t *testing.T) {
	cfg := newTestJWTConfig()
	claims := accessClaims{
		Type:             tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "someone"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorContains(t, err, "owner id")
}

func TestJWTService_RejectsOtherTokenType(t *testing.T) {
	cfg := newTestJWTConfig()
	claims := accessClaims{
		Type:             "refresh",
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString()},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")

	valid, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	_, err = valid.GenerateAccessToken(uuid.New(), 0)
	assert.Error(t, err)
}
