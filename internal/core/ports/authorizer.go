package ports

import (
	"context"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// Authorizer decides whether the holder of a bearer token may proceed. It
// combines token verification with a live lookup of the account's current
// standing; the token alone is never sufficient proof of authorization.
type Authorizer interface {
	// Authorize fails with domain.ErrUnauthenticated when the token is
	// absent, invalid, expired, or names an unknown account, and with
	// domain.ErrAccessRevoked when the account's standing has been
	// withdrawn since the token was issued.
	Authorize(ctx context.Context, raw string) (*domain.Account, error)
}
