package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const collectionContacts = "contacts"

type ContactRepository struct {
	col *mongo.Collection
	ids *sequence
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		col: db.Collection(collectionContacts),
		ids: newSequence(db, collectionContacts),
	}
}

// Create inserts a contact message; the phone and email indexes reject
// repeats.
func (r *ContactRepository) Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}
	msg.ID = id

	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		return nil, mapError("insert contact", err)
	}
	return &msg, nil
}

// EnsureIndexes creates the unique indexes on the contacts collection.
func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
