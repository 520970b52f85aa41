package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

const auditCollection = "audit_logs"

// MongoAuditRepository persists the administrative audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ActorID    string             `bson:"actor_id"`
	Action     string             `bson:"action"`
	EntityType string             `bson:"entity_type"`
	EntityID   string             `bson:"entity_id"`
	OldValues  map[string]any     `bson:"old_values,omitempty"`
	NewValues  map[string]any     `bson:"new_values,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := mongoAuditEntry{
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		OldValues:  entry.OldValues,
		NewValues:  entry.NewValues,
		CreatedAt:  entry.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// List returns one page of the audit trail, newest first, plus the total
// count matching the filter.
func (r *MongoAuditRepository) List(ctx context.Context, filter ports.AuditFilter) ([]*domain.AuditEntry, int64, error) {
	query := bson.M{}
	if filter.ActorID != "" {
		query["actor_id"] = filter.ActorID
	}
	if filter.Action != "" {
		query["action"] = filter.Action
	}
	if filter.EntityType != "" {
		query["entity_type"] = filter.EntityType
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * perPage)).
		SetLimit(int64(perPage))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.AuditEntry
	for cursor.Next(ctx) {
		var me mongoAuditEntry
		if err := cursor.Decode(&me); err != nil {
			return nil, 0, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, &domain.AuditEntry{
			ID:         me.ID.Hex(),
			ActorID:    me.ActorID,
			Action:     me.Action,
			EntityType: me.EntityType,
			EntityID:   me.EntityID,
			OldValues:  me.OldValues,
			NewValues:  me.NewValues,
			CreatedAt:  unixToTime(me.CreatedAt),
		})
	}
	return entries, total, cursor.Err()
}
