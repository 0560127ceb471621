package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

// identityKey is the echo context key under which the authenticated
// identity is stored. Access goes through Identity/SetIdentity so the key
// never leaks outside this package.
const identityKey = "auth.identity"

// UserLoader resolves the credential record for a verified token. The
// role attached to the request is read from the store here, at
// authentication time, not from the token.
type UserLoader interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Auth validates the bearer token and attaches the resulting identity to
// the request context. A valid token whose user no longer exists is
// rejected the same way as a forged one.
func Auth(verifier ports.TokenVerifier, users UserLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return domain.ErrInvalidToken
			}

			user, err := users.FindByEmail(c.Request().Context(), claims.Email)
			if errors.Is(err, domain.ErrUserNotFound) {
				return domain.ErrInvalidToken
			}
			if err != nil {
				// Store outage, not a security failure; surfaces as 500.
				return err
			}

			SetIdentity(c, user.Identity())
			return next(c)
		}
	}
}

// SetIdentity attaches an authenticated identity to the request context.
func SetIdentity(c echo.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
}

// Identity returns the identity attached by Auth, if any.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}
