package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by an access token.
type Claims struct {
	OwnerID uuid.UUID
	Type    string
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens. Tokens are normally issued by the
// identity provider; GenerateAccessToken exists for local tooling.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an owner.
	GenerateAccessToken(ownerID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
