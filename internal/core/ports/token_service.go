package ports

import "github.com/gatewatch/access-system/internal/core/domain"

// TokenClaims are the identity claims carried inside a bearer token. They
// prove who the token was issued to, never the holder's current standing.
type TokenClaims struct {
	AccountID string
	Email     string
	Role      string
}

// TokenService signs and verifies bearer tokens. Both operations are pure
// computation over the token and the process-wide signing secret.
type TokenService interface {
	Issue(account *domain.Account) (string, error)
	// Verify fails with domain.ErrInvalidToken on a malformed token, a bad
	// signature, or an expired token.
	Verify(raw string) (TokenClaims, error)
}
