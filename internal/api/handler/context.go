package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/api/middleware"
	"github.com/nestera/savings-api/internal/core/domain"
)

// ctxIdentity extracts the identity attached by the Auth middleware and
// fast-fails before any service call when it is absent. Presence proves
// the middleware ran; handlers behind Auth should never see a miss.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
