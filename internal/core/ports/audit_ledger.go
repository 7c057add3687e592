package ports

import (
	"context"

	"github.com/gatewatch/access-system/internal/core/domain"
)

// AuditLedger is the append-only store of access-change events. Immutability
// is an API-level guarantee: there is no update or delete, and implementations
// must reject an Append that carries a pre-existing event ID with
// domain.ErrImmutableAudit.
type AuditLedger interface {
	// Append stores a brand-new event and returns its assigned ID.
	Append(ctx context.Context, event *domain.AuditEvent) (string, error)
	// ListRecent returns up to limit events, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
