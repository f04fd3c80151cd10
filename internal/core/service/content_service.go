package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

// ContentService runs the admin side of the post lifecycle.
type ContentService struct {
	posts ports.PostRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewContentService(posts ports.PostRepository, log zerolog.Logger) *ContentService {
	return &ContentService{posts: posts, log: log, now: time.Now}
}

func (s *ContentService) Dashboard(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return posts, nil
}

func (s *ContentService) Post(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load post %d: %w", id, err)
	}
	return post, nil
}

// Save stamps the post with today's date when the caller left it empty,
// validates it and hands it to the store.
func (s *ContentService) Save(ctx context.Context, req domain.EditRequest) (*domain.Post, error) {
	fields := req.PostFields()
	if fields.Date == "" {
		fields.Date = domain.FormatDate(s.now())
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case domain.CreatePost:
		post, err := s.posts.Create(ctx, fields)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		s.log.Info().Int64("post_id", post.ID).Str("slug", post.Slug).Msg("post created")
		return post, nil
	case domain.UpdatePost:
		post, err := s.posts.Update(ctx, r.ID, fields)
		if err != nil {
			return nil, fmt.Errorf("update post %d: %w", r.ID, err)
		}
		s.log.Info().Int64("post_id", post.ID).Str("slug", post.Slug).Msg("post updated")
		return post, nil
	default:
		return nil, fmt.Errorf("%w: unknown edit request %T", domain.ErrInvalidInput, req)
	}
}

func (s *ContentService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete post %d: %w", id, err)
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("delete post %d: %w", id, err)
	}
	s.log.Info().Int64("post_id", id).Msg("post deleted")
	return true, nil
}
