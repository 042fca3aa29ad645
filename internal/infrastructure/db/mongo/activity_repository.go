package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

const activityCollection = "activity_events"

// ActivityRepository appends mutation audit entries. Events are written
// by the background dispatcher, never on the request path.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	Resource  string    `bson:"resource"`
	Action    string    `bson:"action"`
	EntityID  string    `bson:"entity_id"`
	ActorID   string    `bson:"actor_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *ports.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		Resource:  event.Resource,
		Action:    event.Action,
		EntityID:  event.EntityID,
		ActorID:   event.ActorID,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)
