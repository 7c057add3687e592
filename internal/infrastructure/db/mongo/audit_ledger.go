package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gatewatch/access-system/internal/core/domain"
)

const auditCollection = "access_logs"

// listRecentCap bounds a single ListRecent read no matter what the caller
// asks for.
const listRecentCap = 100

// AuditLedger is the MongoDB-backed append-only store of access-change
// events. The type deliberately exposes no update or delete: the only legal
// write is the creation of a brand-new event.
type AuditLedger struct {
	coll *mongo.Collection
}

func NewAuditLedger(db *mongo.Database) *AuditLedger {
	return &AuditLedger{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	SubjectID    string             `bson:"subject_id"`
	SubjectEmail string             `bson:"subject_email"`
	Action       string             `bson:"action"`
	ActorID      string             `bson:"actor_id"`
	ActorEmail   string             `bson:"actor_email"`
	Reason       string             `bson:"reason"`
	Timestamp    time.Time          `bson:"timestamp"`
}

// Append stores a brand-new event and returns its assigned ID. An event that
// already carries an ID is an attempted rewrite of history and is rejected
// before any write happens.
func (l *AuditLedger) Append(ctx context.Context, event *domain.AuditEvent) (string, error) {
	if event.ID != "" {
		return "", domain.ErrImmutableAudit
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEvent{
		SubjectID:    event.SubjectID,
		SubjectEmail: event.SubjectEmail,
		Action:       string(event.Action),
		ActorID:      event.ActorID,
		ActorEmail:   event.ActorEmail,
		Reason:       event.Reason,
		Timestamp:    event.Timestamp,
	}

	res, err := l.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("append audit event: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListRecent returns up to limit events, newest first.
func (l *AuditLedger) ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > listRecentCap {
		limit = listRecentCap
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := l.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var m mongoAuditEvent
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			ID:           m.ID.Hex(),
			SubjectID:    m.SubjectID,
			SubjectEmail: m.SubjectEmail,
			Action:       domain.AuditAction(m.Action),
			ActorID:      m.ActorID,
			ActorEmail:   m.ActorEmail,
			Reason:       m.Reason,
			Timestamp:    m.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the timestamp index the ledger reads by.
func (l *AuditLedger) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := l.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
