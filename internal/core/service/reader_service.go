package service

import (
	"context"
	"fmt"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

const defaultHomePosts = 5

// ReaderService serves unauthenticated reads.
type ReaderService struct {
	posts     ports.PostRepository
	homePosts int
}

// NewReaderService returns a ReaderService showing homePosts posts on the
// home page; non-positive values fall back to the default.
func NewReaderService(posts ports.PostRepository, homePosts int) *ReaderService {
	if homePosts <= 0 {
		homePosts = defaultHomePosts
	}
	return &ReaderService{posts: posts, homePosts: homePosts}
}

func (s *ReaderService) Home(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.ListRecent(ctx, s.homePosts)
	if err != nil {
		return nil, fmt.Errorf("home: %w", err)
	}
	return posts, nil
}

func (s *ReaderService) Post(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("post %q: %w", slug, err)
	}
	return post, nil
}
