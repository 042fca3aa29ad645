package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

type memActivityStore struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
}

func (s *memActivityStore) Insert(_ context.Context, event *ports.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return nil
}

func (s *memActivityStore) snapshot() []ports.ActivityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.ActivityEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherPersistsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &memActivityStore{}
	d := NewDispatcher(2, store, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(ports.ActivityEvent{
			Resource:  "proposal",
			Action:    "created",
			EntityID:  "entity-a",
			Timestamp: time.Now(),
		})
	}

	waitFor(t, func() bool { return len(store.snapshot()) == 10 })

	if got := d.Depth(); got != 0 {
		t.Fatalf("expected drained queue, depth = %d", got)
	}
}

func TestDispatcherPreservesPerEntityOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &memActivityStore{}
	d := NewDispatcher(4, store, zerolog.Nop())
	d.Start(ctx)

	actions := []string{"created", "updated", "updated", "deleted"}
	for _, action := range actions {
		d.Record(ports.ActivityEvent{
			Resource: "agreement",
			Action:   action,
			EntityID: "agreement-1",
		})
	}

	waitFor(t, func() bool { return len(store.snapshot()) == len(actions) })

	for i, event := range store.snapshot() {
		if event.Action != actions[i] {
			t.Fatalf("event %d: got action %q, want %q", i, event.Action, actions[i])
		}
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &memActivityStore{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("got %d workers, want %d", len(d.workers), defaultWorkers)
	}
}
