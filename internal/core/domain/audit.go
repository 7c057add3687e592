package domain

import (
	"errors"
	"time"
)

// AuditAction is the kind of access change an AuditEvent records.
type AuditAction string

const (
	ActionGranted AuditAction = "granted"
	ActionRevoked AuditAction = "revoked"
)

// ErrImmutableAudit is returned on any attempt to rewrite a previously
// appended audit event. The ledger only ever accepts brand-new events.
var ErrImmutableAudit = errors.New("audit events cannot be modified")

// ErrAuditAppend marks an administrative operation whose status change may
// have been persisted but whose audit event could not be written. It is kept
// distinct from plain storage errors so operators can reconcile the ledger.
var ErrAuditAppend = errors.New("audit trail could not be written")

// AuditEvent is one entry in the append-only access-change ledger. The email
// snapshots are captured at event time and stay fixed even if the referenced
// accounts later change.
type AuditEvent struct {
	ID           string      `json:"id"`
	SubjectID    string      `json:"subject_id"`
	SubjectEmail string      `json:"subject_email"`
	Action       AuditAction `json:"action"`
	ActorID      string      `json:"actor_id"`
	ActorEmail   string      `json:"actor_email"`
	Reason       string      `json:"reason"`
	Timestamp    time.Time   `json:"timestamp"`
}
