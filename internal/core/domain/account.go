package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// AccessStatus represents an account's current standing. It is the single
// source of truth for authorization: a validly signed token for a revoked
// account must not grant access.
type AccessStatus string

const (
	StatusActive  AccessStatus = "active"
	StatusRevoked AccessStatus = "revoked"
)

// Authentication and authorization failures. Unknown identity and bad
// credential both collapse to ErrUnauthenticated so callers cannot
// enumerate accounts.
var ErrUnauthenticated = errors.New("not authenticated")
var ErrAccessRevoked = errors.New("access revoked")
var ErrForbidden = errors.New("access forbidden")

var ErrValidation = errors.New("invalid input")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrSelfRevocation = errors.New("cannot revoke own access")

// ValidRole reports whether role is one of the roles accounts can hold.
// Roles are fixed at creation; there is no escalation path.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Account models an authenticated actor in the system.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         string       `json:"role"`
	AccessStatus AccessStatus `json:"access_status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Revoked reports whether the account's access has been withdrawn.
func (a *Account) Revoked() bool {
	return a.AccessStatus == StatusRevoked
}
