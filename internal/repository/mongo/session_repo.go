package mongo

import (
	"context"
	"errors"
	"time"

	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "sessions"

// There is exactly one logical session per instance, so the snapshot
// document lives under a fixed key.
const sessionDocID = "default"

type sessionDoc struct {
	ID        string                 `bson:"_id"`
	Snapshot  domain.SessionSnapshot `bson:"snapshot"`
	UpdatedAt time.Time              `bson:"updatedAt"`
}

// mongoSessionRepository implements repository.SessionRepository
// backed by a single upserted MongoDB document.
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a session repository over the
// given connected database.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Save upserts the snapshot document.
func (r *mongoSessionRepository) Save(ctx context.Context, snap *domain.SessionSnapshot) error {
	doc := sessionDoc{
		ID:        sessionDocID,
		Snapshot:  *snap,
		UpdatedAt: time.Now().UTC(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": sessionDocID}, doc, opts)
	if err != nil {
		return repository.ErrUpdateFailed
	}
	return nil
}

// Load retrieves the snapshot document, or ErrNotFound when the
// session has never been persisted.
func (r *mongoSessionRepository) Load(ctx context.Context) (*domain.SessionSnapshot, error) {
	var doc sessionDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": sessionDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &doc.Snapshot, nil
}

// Delete removes the snapshot document. Deleting an absent document
// is not an error: the session is simply back to never-initialized.
func (r *mongoSessionRepository) Delete(ctx context.Context) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionDocID})
	return err
}
