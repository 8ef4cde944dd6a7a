package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/usermanager/user-management-api/internal/core/domain"
)

const collectionAuditLogs = "audit_logs"

// AuditRepository implements ports.AuditRepository backed by the
// audit_logs collection. The application only ever inserts and reads.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(collectionAuditLogs)}
}

type mongoAuditEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Action     string             `bson:"action"`
	EntityType string             `bson:"entityType"`
	EntityID   string             `bson:"entityId,omitempty"`
	Details    bson.M             `bson:"details,omitempty"`
	UserEmail  string             `bson:"userEmail,omitempty"`
	UserName   string             `bson:"userName,omitempty"`
	Timestamp  time.Time          `bson:"timestamp"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

func fromAuditDoc(me mongoAuditEntry) *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:         me.ID.Hex(),
		Action:     domain.AuditAction(me.Action),
		EntityType: me.EntityType,
		EntityID:   me.EntityID,
		Details:    me.Details,
		UserEmail:  me.UserEmail,
		UserName:   me.UserName,
		Timestamp:  me.Timestamp,
		CreatedAt:  me.CreatedAt,
	}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEntry{
		Action:     string(entry.Action),
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    bson.M(entry.Details),
		UserEmail:  entry.UserEmail,
		UserName:   entry.UserName,
		Timestamp:  entry.Timestamp,
		CreatedAt:  time.Now().UTC(),
	}
	if doc.Timestamp.IsZero() {
		doc.Timestamp = doc.CreatedAt
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAuditEntries(ctx, cursor)
}

func (r *AuditRepository) ListByEntity(ctx context.Context, entityID string) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"entityId": entityID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries by entity: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAuditEntries(ctx, cursor)
}

func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}}},
		{Keys: bson.D{{Key: "entityId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeAuditEntries(ctx context.Context, cursor *mongo.Cursor) ([]*domain.AuditEntry, error) {
	var entries []*domain.AuditEntry
	for cursor.Next(ctx) {
		var me mongoAuditEntry
		if err := cursor.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, fromAuditDoc(me))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}
