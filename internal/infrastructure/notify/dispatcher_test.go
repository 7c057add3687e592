package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gatewatch/access-system/internal/core/domain"
)

type recordingSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (s *recordingSink) Deliver(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) snapshot() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_DeliversInOrderPerSubject(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &recordingSink{}
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		action := domain.ActionRevoked
		if i%2 == 0 {
			action = domain.ActionGranted
		}
		d.Notify(domain.AuditEvent{
			SubjectID: "acc-1",
			Action:    action,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Millisecond),
		})
	}

	deadline := time.After(2 * time.Second)
	for {
		if len(sink.snapshot()) == 10 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected 10 deliveries, got %d", len(sink.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}

	events := sink.snapshot()
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("same-subject events delivered out of order")
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingSink{}, zerolog.Nop())

	first := d.shardIndex("acc-42")
	for i := 0; i < 100; i++ {
		if d.shardIndex("acc-42") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
