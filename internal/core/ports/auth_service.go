package ports

import (
	"context"

	"github.com/nestera/savings-api/internal/core/domain"
)

// AuthService orchestrates registration, login and credential validation.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (domain.Identity, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	// ValidateUser returns the identity for matching credentials, or nil
	// (with a nil error) when they do not match. It only errors on store
	// failures; the nil result is non-error control flow for callers.
	ValidateUser(ctx context.Context, email, password string) (*domain.Identity, error)
}

// TokenVerifier validates a bearer token and returns its claims.
// Implemented by the token service; consumed by the auth middleware.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// TokenClaims is the decoded content of a verified bearer token.
type TokenClaims struct {
	Subject string
	Email   string
}
