package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// Authorizer resolves a bearer token into an account that is allowed to
// proceed right now. Token validity and current standing are independent
// facts; both must hold on every single request.
type Authorizer struct {
	tokens   ports.TokenService
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewAuthorizer(tokens ports.TokenService, accounts ports.AccountRepository, log zerolog.Logger) *Authorizer {
	return &Authorizer{tokens: tokens, accounts: accounts, log: log}
}

// Authorize verifies the token, then re-checks the account's standing with a
// fresh identity-store lookup. The result is never cached: a cached decision
// would reopen the staleness window that immediate revocation exists to
// close.
func (a *Authorizer) Authorize(ctx context.Context, raw string) (*domain.Account, error) {
	if raw == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := a.tokens.Verify(raw)
	if err != nil {
		// Invalid or expired token is indistinguishable from no token.
		return nil, domain.ErrUnauthenticated
	}

	account, err := a.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// The token outlived its subject. Same answer as a bad token so
			// callers cannot probe which identities exist.
			return nil, domain.ErrUnauthenticated
		}
		a.log.Error().Err(err).Msg("identity store lookup failed")
		return nil, err
	}

	if account.Revoked() {
		a.log.Info().Str("account_id", account.ID).Msg("revoked account presented valid token")
		return nil, domain.ErrAccessRevoked
	}

	return account, nil
}
