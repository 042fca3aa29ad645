package ports

import (
	"context"
	"time"
)

// ActivityEvent is one entry in the mutation audit trail.
type ActivityEvent struct {
	Resource  string    // "user", "proposal", "agreement", "signature"
	Action    string    // "created", "updated", "deleted", "login"
	EntityID  string
	ActorID   string // empty on unauthenticated routes
	Timestamp time.Time
}

// ActivityRecorder accepts activity events for asynchronous persistence.
// Record must not block the request path beyond queue backpressure.
type ActivityRecorder interface {
	Record(event ActivityEvent)
}

// ActivityRepository persists activity events.
type ActivityRepository interface {
	Insert(ctx context.Context, event *ActivityEvent) error
}

// NopActivityRecorder discards events. Used in tests and as a default until
// the dispatcher is started.
type NopActivityRecorder struct{}

func (NopActivityRecorder) Record(ActivityEvent) {}

var _ ActivityRecorder = NopActivityRecorder{}
