package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// stubAccountRepo is an in-memory identity store keyed by account ID.
type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
	findErr  error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, domain.ErrAccountExists
		}
	}
	copy := cloneAccount(account)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("acc-%d", r.nextID)
	}
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) UpdateAccessStatus(_ context.Context, id string, status domain.AccessStatus) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.AccessStatus = status
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// memLedger is an in-memory append-only ledger.
type memLedger struct {
	events    []domain.AuditEvent
	appendErr error
}

func (l *memLedger) Append(_ context.Context, event *domain.AuditEvent) (string, error) {
	if event.ID != "" {
		return "", domain.ErrImmutableAudit
	}
	if l.appendErr != nil {
		return "", l.appendErr
	}
	e := *event
	e.ID = fmt.Sprintf("evt-%d", len(l.events)+1)
	l.events = append(l.events, e)
	return e.ID, nil
}

func (l *memLedger) ListRecent(_ context.Context, limit int) ([]domain.AuditEvent, error) {
	out := make([]domain.AuditEvent, len(l.events))
	copy(out, l.events)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// recordingNotifier captures notified events.
type recordingNotifier struct {
	events []domain.AuditEvent
}

func (n *recordingNotifier) Notify(event domain.AuditEvent) {
	n.events = append(n.events, event)
}

var errStorage = errors.New("storage down")

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
