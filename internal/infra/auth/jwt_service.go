package auth

import (
	"time"

	"workhours/config"
	"workhours/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const tokenTypeAccess = "access"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string // Secret key for signing access tokens.
}

// accessClaims is the wire form of service.Claims; the owner travels in "sub".
type accessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// GenerateAccessToken creates a signed HS256 access token for ownerID.
func (s *jwtService) GenerateAccessToken(ownerID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := time.Now()
	claims := accessClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, expiry and type, and resolves the owner from "sub".
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not an owner id")
	}

	return &service.Claims{
		OwnerID:          ownerID,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
