package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// TokenIssuer signs and verifies the HS256 access tokens carrying the caller's
// user ID as subject.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuerFromEnv builds the issuer from JWT_SECRET and optional
// JWT_TTL (Go duration string).
func NewTokenIssuerFromEnv() (*TokenIssuer, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("auth: JWT_SECRET is not set")
	}
	ttl := defaultTokenTTL
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("auth: invalid JWT_TTL: %w", err)
		}
		ttl = parsed
	}
	return NewTokenIssuer([]byte(secret), ttl), nil
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue returns a signed token for the given user.
func (i *TokenIssuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the caller's user ID.
func (i *TokenIssuer) Verify(raw string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: invalid token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("auth: invalid token claims")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth: invalid subject in token: %w", err)
	}
	return userID, nil
}
