package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
	"github.com/gatewatch/access-system/internal/core/ports"
)

const (
	defaultGrantReason  = "Access granted by admin"
	defaultRevokeReason = "Access revoked by admin"

	// historyCap bounds how many ledger entries a single History call may
	// return, regardless of the requested limit.
	historyCap = 100
)

// AccessService implements the privileged grant/revoke operations and the
// administrative read paths. Status update and audit append form one logical
// unit of work: a grant or revoke whose audit event cannot be written is
// reported as failed.
type AccessService struct {
	accounts ports.AccountRepository
	ledger   ports.AuditLedger
	notifier ports.AccessNotifier
	log      zerolog.Logger
}

func NewAccessService(accounts ports.AccountRepository, ledger ports.AuditLedger, notifier ports.AccessNotifier, log zerolog.Logger) *AccessService {
	return &AccessService{accounts: accounts, ledger: ledger, notifier: notifier, log: log}
}

// Grant restores a target account to active standing.
func (s *AccessService) Grant(ctx context.Context, actor *domain.Account, targetID, reason string) (*ports.AccountSummary, error) {
	if reason == "" {
		reason = defaultGrantReason
	}
	return s.apply(ctx, actor, targetID, domain.StatusActive, domain.ActionGranted, reason)
}

// Revoke withdraws a target account's standing, taking effect on its very
// next authorized request. An actor can never revoke itself through this
// path; that guard is what keeps the last admin from locking everyone out.
func (s *AccessService) Revoke(ctx context.Context, actor *domain.Account, targetID, reason string) (*ports.AccountSummary, error) {
	if targetID != "" && targetID == actor.ID {
		return nil, domain.ErrSelfRevocation
	}
	if reason == "" {
		reason = defaultRevokeReason
	}
	return s.apply(ctx, actor, targetID, domain.StatusRevoked, domain.ActionRevoked, reason)
}

func (s *AccessService) apply(ctx context.Context, actor *domain.Account, targetID string, status domain.AccessStatus, action domain.AuditAction, reason string) (*ports.AccountSummary, error) {
	if targetID == "" {
		return nil, fmt.Errorf("%w: target account id is required", domain.ErrValidation)
	}

	target, err := s.accounts.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	// Idempotent on purpose: re-granting an active account or re-revoking a
	// revoked one succeeds and still appends a fresh ledger entry.
	if err := s.accounts.UpdateAccessStatus(ctx, target.ID, status); err != nil {
		return nil, fmt.Errorf("update access status: %w", err)
	}

	event := domain.AuditEvent{
		SubjectID:    target.ID,
		SubjectEmail: target.Email,
		Action:       action,
		ActorID:      actor.ID,
		ActorEmail:   actor.Email,
		Reason:       reason,
		Timestamp:    time.Now().UTC(),
	}

	id, err := s.ledger.Append(ctx, &event)
	if err != nil {
		// The status write may already be durable. Callers must not see
		// success when the ledger is missing its entry, so the whole
		// operation fails with a reconcilable error.
		s.log.Error().Err(err).
			Str("subject_id", target.ID).
			Str("action", string(action)).
			Msg("audit append failed after status update")
		return nil, fmt.Errorf("%w: %w", domain.ErrAuditAppend, err)
	}
	event.ID = id

	s.log.Info().
		Str("subject_id", target.ID).
		Str("actor_id", actor.ID).
		Str("action", string(action)).
		Msg("access status changed")

	if s.notifier != nil {
		s.notifier.Notify(event)
	}

	return &ports.AccountSummary{
		ID:           target.ID,
		Email:        target.Email,
		AccessStatus: status,
	}, nil
}

// ListAccounts returns every account, newest first. Password hashes never
// leave the domain struct's json:"-" field.
func (s *AccessService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// History returns up to limit ledger entries, newest first, capped at 100.
func (s *AccessService) History(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > historyCap {
		limit = historyCap
	}
	return s.ledger.ListRecent(ctx, limit)
}
