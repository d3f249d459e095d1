package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ActorID    string    `bson:"actor_id"`
	Action     string    `bson:"action"`
	ResourceID string    `bson:"resource_id"`
	Timestamp  time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEntry{
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		ResourceID: entry.ResourceID,
		Timestamp:  entry.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
