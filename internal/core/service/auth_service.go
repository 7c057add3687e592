package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AccountRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates an account with active access. When role is empty the
// account defaults to USER; roles are fixed from this point on.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (*domain.Account, error) {
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		AccessStatus: domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email and password and issues a bearer token. A
// revoked account may still log in; every authorized call it makes afterwards
// fails the live standing check, which is where revocation is enforced.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}
