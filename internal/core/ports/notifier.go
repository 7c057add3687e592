package ports

import "github.com/gatewatch/access-system/internal/core/domain"

// AccessNotifier receives a copy of every committed access-change event for
// out-of-band delivery (operator alerts, downstream sync). Delivery is
// fire-and-forget and never part of the grant/revoke unit of work.
type AccessNotifier interface {
	Notify(event domain.AuditEvent)
}
