package auth

import (
	"context"
	"time"
)

// IdentityProvider resolves the caller identity carried by a bearer token.
// The identity is an opaque, non-empty string issued by the external
// authentication provider.
type IdentityProvider interface {
	Identify(ctx context.Context, token string) (string, error)
}

// JWTService defines operations for issuing and verifying JWT identity tokens.
type JWTService interface {
	IdentityProvider

	// GenerateToken creates a signed JWT whose subject is userID.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an identity token.
type Claims struct {
	Subject   string    `json:"sub,omitempty"`
	Issuer    string    `json:"iss,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
