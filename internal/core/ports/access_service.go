package ports

import (
	"context"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// AccountSummary is what administrative operations return about an account:
// identity, email and new standing, never the full record.
type AccountSummary struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	AccessStatus domain.AccessStatus `json:"access_status"`
}

// AccessService holds the privileged grant/revoke operations and the admin
// read paths over accounts and the audit ledger.
type AccessService interface {
	Grant(ctx context.Context, actor *domain.Account, targetID, reason string) (*AccountSummary, error)
	Revoke(ctx context.Context, actor *domain.Account, targetID, reason string) (*AccountSummary, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	History(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
