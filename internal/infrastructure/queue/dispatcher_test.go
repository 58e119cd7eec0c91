package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketgrid/marketplace-api/internal/core/domain"
)

type collectingService struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *collectingService) Process(_ context.Context, event domain.AuthEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *collectingService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func waitForCount(t *testing.T, svc *collectingService, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", want, svc.count())
}

func TestDispatcher_RecordsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &collectingService{}
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	d.Record(domain.AuthEvent{Kind: domain.AuthEventLoginSuccess, Email: "a@example.com"})
	d.Record(domain.AuthEvent{Kind: domain.AuthEventLoginDenied, Email: "b@example.com"})
	d.Record(domain.AuthEvent{Kind: domain.AuthEventSignOut, UserID: "user-1"})

	waitForCount(t, svc, 3)
}

func TestDispatcher_SameAccountSameWorker(t *testing.T) {
	d := NewDispatcher(4, &collectingService{}, zerolog.Nop())

	event := domain.AuthEvent{Email: "seller@example.com"}
	first := d.shardIndex(event)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(event); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &collectingService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
