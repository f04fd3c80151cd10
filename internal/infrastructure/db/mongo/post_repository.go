package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
	ids *sequence
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		col: db.Collection(collectionPosts),
		ids: newSequence(db, collectionPosts),
	}
}

// List returns every post ordered by id.
func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

// ListRecent returns the first limit posts ordered by id.
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]domain.Post, error) {
	return r.find(ctx, options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit)))
}

func (r *PostRepository) find(ctx context.Context, opts *options.FindOptions) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mapError("list posts", err)
	}
	posts := []domain.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, mapError("decode posts", err)
	}
	return posts, nil
}

// FindBySlug retrieves a post by its public slug.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"post_slug": slug}, "find post by slug")
}

// FindByID retrieves a post by id.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "find post by id")
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M, op string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Post
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, mapError(op, err)
	}
	return &p, nil
}

// Create assigns the next id from the counters collection and inserts the
// post. A unique-index collision leaves a gap in the id sequence.
func (r *PostRepository) Create(ctx context.Context, f domain.PostFields) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx)
	if err != nil {
		return nil, err
	}

	p := domain.Post{
		ID:       id,
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Slug:     f.Slug,
		Content:  f.Content,
		Date:     f.Date,
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, mapError("insert post", err)
	}
	return &p, nil
}

// Update replaces the mutable fields of an existing post.
func (r *PostRepository) Update(ctx context.Context, id int64, f domain.PostFields) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"title":     f.Title,
		"sub_title": f.Subtitle,
		"post_slug": f.Slug,
		"content":   f.Content,
		"date":      f.Date,
	}})
	if err != nil {
		return nil, mapError("update post", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("update post %d: %w", id, domain.ErrNotFound)
	}
	return &domain.Post{
		ID:       id,
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Slug:     f.Slug,
		Content:  f.Content,
		Date:     f.Date,
	}, nil
}

// Delete removes a post; a missing id is not an error.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return mapError("delete post", err)
	}
	return nil
}

// EnsureIndexes creates the unique indexes on the posts collection.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "sub_title", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "content", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "post_slug", Value: 1}}, Options: unique},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
