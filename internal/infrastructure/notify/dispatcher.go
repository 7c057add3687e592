// Package notify delivers access-change notifications out of band. Delivery
// is best effort: the authoritative record is the audit ledger, which has
// already been written by the time an event reaches this package.
package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Sink receives committed access-change events for delivery.
type Sink interface {
	Deliver(ctx context.Context, event domain.AuditEvent) error
}

// Dispatcher fans access-change events out to a fixed set of workers using
// consistent hashing on the subject identity, so notifications about one
// account are always delivered in order.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	sink    Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands the event to the worker responsible for its subject. When the
// worker's buffer is full the event is dropped rather than blocking the
// administrative request that produced it.
func (d *Dispatcher) Notify(event domain.AuditEvent) {
	select {
	case d.workers[d.shardIndex(event.SubjectID)] <- event:
	default:
		d.log.Warn().
			Str("subject_id", event.SubjectID).
			Str("action", string(event.Action)).
			Msg("notification dropped, worker buffer full")
	}
}

// shardIndex maps a subject identity deterministically to a worker index.
func (d *Dispatcher) shardIndex(subjectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Deliver(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("subject_id", event.SubjectID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}

// LogSink writes each access change as a structured security log line.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, event domain.AuditEvent) error {
	s.log.Info().
		Str("subject_id", event.SubjectID).
		Str("subject_email", event.SubjectEmail).
		Str("actor_email", event.ActorEmail).
		Str("action", string(event.Action)).
		Str("reason", event.Reason).
		Time("at", event.Timestamp).
		Msg("access change")
	return nil
}
