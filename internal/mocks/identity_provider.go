package mocks

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/service/auth"
)

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	// IdentifyFn allows test cases to mock the Identify behavior
	IdentifyFn func(ctx context.Context, token string) (string, error)

	// Default values used when IdentifyFn isn't set
	Identity string
	Err      error

	// Tokens records every token passed to Identify.
	Tokens []string
}

var _ auth.IdentityProvider = (*MockIdentityProvider)(nil)

// Identify implements the auth.IdentityProvider interface
func (m *MockIdentityProvider) Identify(ctx context.Context, token string) (string, error) {
	m.Tokens = append(m.Tokens, token)

	if m.IdentifyFn != nil {
		return m.IdentifyFn(ctx, token)
	}
	return m.Identity, m.Err
}
