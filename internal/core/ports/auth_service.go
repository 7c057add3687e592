package ports

import (
	"context"

	"github.com/gatewatch/access-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
