package service

import (
	"context"
	"errors"
	"testing"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func TestReaderService_Home_Bounded(t *testing.T) {
	repo := newStubPostRepo()
	for i := 1; i <= 4; i++ {
		f := fields(i)
		f.Date = "2024-01-01"
		if _, err := repo.Create(context.Background(), f); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	svc := NewReaderService(repo, 3)
	posts, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("home failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].ID != 1 || posts[2].ID != 3 {
		t.Fatalf("expected identifier order, got %+v", posts)
	}
}

func TestReaderService_Home_DefaultLimit(t *testing.T) {
	svc := NewReaderService(newStubPostRepo(), 0)
	if svc.homePosts != defaultHomePosts {
		t.Fatalf("expected default %d, got %d", defaultHomePosts, svc.homePosts)
	}
}

func TestReaderService_Post(t *testing.T) {
	repo := newStubPostRepo()
	f := fields(1)
	f.Date = "2024-01-01"
	created, _ := repo.Create(context.Background(), f)

	svc := NewReaderService(repo, 5)
	got, err := svc.Post(context.Background(), created.Slug)
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}

	if _, err := svc.Post(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
