package ports

import (
	"context"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// PostRepository is the Post Store. Implementations must enforce uniqueness
// of title, subtitle, content and slug atomically and report collisions as
// domain.ErrConstraintViolation. Any other persistence failure is wrapped
// with domain.ErrStorageUnavailable.
type PostRepository interface {
	// List returns every post in identifier order.
	List(ctx context.Context) ([]domain.Post, error)
	// ListRecent returns at most limit posts in identifier order.
	ListRecent(ctx context.Context, limit int) ([]domain.Post, error)
	// FindBySlug returns domain.ErrNotFound when no post has the slug.
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	// FindByID returns domain.ErrNotFound when the id is absent.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// Create assigns a fresh id and persists the post.
	Create(ctx context.Context, fields domain.PostFields) (*domain.Post, error)
	// Update overwrites the post; domain.ErrNotFound when the id is absent.
	Update(ctx context.Context, id int64, fields domain.PostFields) (*domain.Post, error)
	// Delete removes the post. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
}
