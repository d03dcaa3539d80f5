package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/expertsquad/crm-api/internal/core/domain"
	"github.com/expertsquad/crm-api/internal/core/ports"
)

const collectionActivity = "activity_logs"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
// The collection is append-only: there is no update or delete path.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

type activityDoc struct {
	ID          primitive.ObjectID            `bson:"_id,omitempty"`
	EntityType  string                        `bson:"entity_type"`
	EntityID    string                        `bson:"entity_id"`
	Action      string                        `bson:"action"`
	Changes     map[string]domain.FieldChange `bson:"changes,omitempty"`
	PerformedBy string                        `bson:"performed_by"`
	Timestamp   time.Time                     `bson:"timestamp"`
	Metadata    map[string]any                `bson:"metadata,omitempty"`
}

func (d activityDoc) toDomain() domain.ActivityLog {
	return domain.ActivityLog{
		ID:          d.ID.Hex(),
		EntityType:  domain.EntityType(d.EntityType),
		EntityID:    d.EntityID,
		Action:      domain.Action(d.Action),
		Changes:     d.Changes,
		PerformedBy: d.PerformedBy,
		Timestamp:   d.Timestamp,
		Metadata:    d.Metadata,
	}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		EntityType:  string(entry.EntityType),
		EntityID:    entry.EntityID,
		Action:      string(entry.Action),
		Changes:     entry.Changes,
		PerformedBy: entry.PerformedBy,
		Timestamp:   entry.Timestamp,
		Metadata:    entry.Metadata,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	stored := *entry
	stored.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &stored, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter ports.ActivityFilter) ([]domain.ActivityLog, error) {
	query := bson.M{}
	if filter.EntityType != "" {
		query["entity_type"] = string(filter.EntityType)
	}
	if filter.EntityID != "" {
		query["entity_id"] = filter.EntityID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	entries := make([]domain.ActivityLog, len(docs))
	for i, d := range docs {
		entries[i] = d.toDomain()
	}
	return entries, nil
}

func (r *ActivityRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "entity_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})
	return err
}
