package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/api/metrics"
	"github.com/gatewatch/access-system/internal/core/domain"
)

// RBAC restricts a route to the given roles. It composes strictly after Auth:
// the role check is a pure comparison on the already resolved account and
// never runs for a caller that failed authorization.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := CurrentAccount(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[account.Role]; !ok {
				metrics.AuthDecisionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
