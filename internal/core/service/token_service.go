package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

// TokenService signs and verifies HS256 bearer tokens with a process-wide
// secret injected at startup. No state, no I/O.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue returns a signed token for the account. The claims identify the
// account at issuance time; current standing is re-checked on every use.
func (s *TokenService) Issue(account *domain.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and extracts the identity claims. Every
// failure mode collapses to domain.ErrInvalidToken.
func (s *TokenService) Verify(raw string) (ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return ports.TokenClaims{AccountID: sub, Email: email, Role: role}, nil
}
