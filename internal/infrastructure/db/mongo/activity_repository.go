package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gigworks/identity-api/internal/core/domain"
)

const activityCollection = "activity_events"

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	Type       string    `bson:"type"`
	SubjectID  string    `bson:"subject_id,omitempty"`
	Role       string    `bson:"role,omitempty"`
	Email      string    `bson:"email,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		Type:       string(event.Type),
		SubjectID:  event.SubjectID,
		Role:       event.Role,
		Email:      event.Email,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*domain.ActivityEvent
	for cursor.Next(ctx) {
		var doc activityDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity event: %w", err)
		}
		events = append(events, &domain.ActivityEvent{
			Type:       domain.ActivityType(doc.Type),
			SubjectID:  doc.SubjectID,
			Role:       doc.Role,
			Email:      doc.Email,
			OccurredAt: doc.OccurredAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	return events, nil
}
