package auth

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	}
}

// RequireTestJWTService creates a JWT service with the default test configuration.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	service, err := NewJWTService(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// NewTestJWTServiceAt creates a JWT service whose clock is pinned to now.
func NewTestJWTServiceAt(t *testing.T, cfg config.AuthConfig, now time.Time) JWTService {
	t.Helper()
	service, err := newHMACJWTService(cfg, func() time.Time { return now })
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// GenerateAuthHeaderForTestingT returns an Authorization header value carrying
// a valid token for userID, signed with the default test configuration.
func GenerateAuthHeaderForTestingT(t *testing.T, userID string) string {
	t.Helper()
	token, err := RequireTestJWTService(t).GenerateToken(context.Background(), userID)
	require.NoError(t, err, "Failed to generate auth token")
	return "Bearer " + token
}
