// Package metrics defines and registers all custom Prometheus metrics for the
// access-control service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at import
// time via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "access"

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthDecisionsTotal counts authorization decisions on gated routes.
// Label:
//   - outcome: "allowed", "unauthenticated", "revoked", "forbidden", or "error"
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authorization decisions, by outcome.",
	},
	[]string{"outcome"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "rate_limited"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Administration metrics ────────────────────────────────────────────────────

// AdminActionsTotal counts completed grant/revoke operations.
// Label:
//   - action: "granted" or "revoked"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of completed access-administration actions.",
	},
	[]string{"action"},
)

// AuditAppendFailuresTotal counts grant/revoke operations that failed because
// the audit ledger rejected the append. Each increment is a status change
// that may need manual reconciliation against the ledger.
var AuditAppendFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_append_failures_total",
		Help:      "Total number of administrative actions failed on audit append.",
	},
)
