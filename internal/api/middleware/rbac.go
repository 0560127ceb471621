package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/api/metrics"
	"github.com/nestera/savings-api/internal/core/domain"
)

// RolePolicy is a static table of required-role declarations, built at
// router construction and immutable afterwards. Roles can be declared for
// a route group (by path prefix) or for a single route (method + path);
// a route-level declaration entirely overrides the group-level one, it
// does not merge with it. An empty or absent declaration means the route
// is open to any authenticated caller.
//
// The policy performs no token verification itself: mounting Auth before
// Enforce on protected groups is the router's responsibility.
type RolePolicy struct {
	groups map[string][]domain.Role
	routes map[string][]domain.Role
}

func NewRolePolicy() *RolePolicy {
	return &RolePolicy{
		groups: make(map[string][]domain.Role),
		routes: make(map[string][]domain.Role),
	}
}

// Group declares the required roles for every route whose registered path
// starts with prefix. The longest matching prefix wins.
func (p *RolePolicy) Group(prefix string, roles ...domain.Role) *RolePolicy {
	p.groups[prefix] = roles
	return p
}

// Route declares the required roles for a single method + path pair,
// overriding any group declaration covering it.
func (p *RolePolicy) Route(method, path string, roles ...domain.Role) *RolePolicy {
	p.routes[method+" "+path] = roles
	return p
}

// Required resolves the declaration for a route: route-level entry if
// present, else the longest group prefix entry, else nil.
func (p *RolePolicy) Required(method, path string) []domain.Role {
	if roles, ok := p.routes[method+" "+path]; ok {
		return roles
	}

	var (
		best    string
		roles   []domain.Role
		matched bool
	)
	for prefix, r := range p.groups {
		if len(prefix) >= len(best) && hasPrefix(path, prefix) {
			best, roles, matched = prefix, r, true
		}
	}
	if !matched {
		return nil
	}
	return roles
}

// Enforce returns the guard middleware. Decision order: no declared roles
// allows the request through; no attached identity is Forbidden; a role
// inside the declared set is allowed; anything else is Forbidden.
func (p *RolePolicy) Enforce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			required := p.Required(c.Request().Method, c.Path())
			if len(required) == 0 {
				return next(c)
			}

			identity, ok := Identity(c)
			if !ok {
				metrics.RoleDenialsTotal.WithLabelValues("none").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "no authenticated identity")
			}

			for _, role := range required {
				if identity.Role == role {
					return next(c)
				}
			}

			metrics.RoleDenialsTotal.WithLabelValues(string(identity.Role)).Inc()
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("role %s not in %v", identity.Role, required))
		}
	}
}

// hasPrefix matches whole path segments, so "/v1/admin" covers
// "/v1/admin/plans" but not "/v1/administrators".
func hasPrefix(path, prefix string) bool {
	if len(path) < len(prefix) || path[:len(prefix)] != prefix {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
