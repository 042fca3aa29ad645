package queue

import (
	"context"
	"hash/fnv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity events to a fixed set of workers using
// consistent hashing on the entity id, guaranteeing per-entity write ordering
// in the audit trail.
type Dispatcher struct {
	workers []chan ports.ActivityEvent
	store   ports.ActivityRepository
	log     zerolog.Logger
	pending atomic.Int64
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, store ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityEvent, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its entity id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(event ports.ActivityEvent) {
	d.pending.Add(1)
	d.workers[d.shardIndex(event.EntityID)] <- event
}

// Depth reports the number of events accepted but not yet persisted.
func (d *Dispatcher) Depth() int64 {
	return d.pending.Load()
}

// shardIndex maps an entity id deterministically to a worker index.
func (d *Dispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.store.Insert(ctx, &event); err != nil {
				d.log.Error().Err(err).
					Str("resource", event.Resource).
					Str("entity_id", event.EntityID).
					Int("worker_id", id).
					Msg("activity event persistence failed")
			}
			d.pending.Add(-1)
		}
	}
}

var _ ports.ActivityRecorder = (*Dispatcher)(nil)
