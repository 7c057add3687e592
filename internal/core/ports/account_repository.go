package ports

import (
	"context"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// AccountRepository defines the interface for identity-store persistence.
// UpdateAccessStatus is the only write path that can change an account's
// standing; it is reserved for access administration.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	UpdateAccessStatus(ctx context.Context, id string, status domain.AccessStatus) error
	List(ctx context.Context) ([]domain.Account, error)
}
