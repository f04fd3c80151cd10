package ports

import (
	"context"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// ContentService carries out the admin dashboard operations. Callers must
// only reach it from an authenticated session.
type ContentService interface {
	Dashboard(ctx context.Context) ([]domain.Post, error)
	// Post loads a post for the edit form.
	Post(ctx context.Context, id int64) (*domain.Post, error)
	// Save applies a CreatePost or UpdatePost and returns the stored post.
	Save(ctx context.Context, req domain.EditRequest) (*domain.Post, error)
	// Delete removes the post if it exists. It reports whether it did.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ReaderService serves the public, read-only side of the blog.
type ReaderService interface {
	Home(ctx context.Context) ([]domain.Post, error)
	Post(ctx context.Context, slug string) (*domain.Post, error)
}
