package ports

import (
	"context"

	"github.com/nestera/savings-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// FindByEmail is an exact-match lookup; no normalization happens here or
// in callers. Create must enforce email uniqueness and return
// domain.ErrUserExists on conflict, which makes it the authority when two
// concurrent registrations race past the duplicate pre-check.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
