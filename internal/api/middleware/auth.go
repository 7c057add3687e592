package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gatewatch/access-system/internal/api/metrics"
	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// AccountKey is the context key under which the resolved account is stored.
// Handlers must go through CurrentAccount instead of reading it directly.
const AccountKey = "auth.account"

// Auth resolves the bearer token into the current account on every request.
// The resolver re-checks the account's standing against the identity store
// each time; a token whose account has been revoked is rejected here no
// matter how long the token itself remains valid.
func Auth(authorizer ports.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := bearerToken(c)

			account, err := authorizer.Authorize(c.Request().Context(), raw)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues(outcome(err)).Inc()
				return err
			}

			metrics.AuthDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(AccountKey, account)
			return next(c)
		}
	}
}

// CurrentAccount returns the account resolved by the Auth middleware.
func CurrentAccount(c echo.Context) (*domain.Account, bool) {
	account, ok := c.Get(AccountKey).(*domain.Account)
	return account, ok && account != nil
}

// bearerToken extracts the token from the Authorization header. An empty
// result stands for "no credential"; the authorizer handles it.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrAccessRevoked):
		return "revoked"
	default:
		return "error"
	}
}
