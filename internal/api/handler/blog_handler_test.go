package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func TestBlogHandler_Home(t *testing.T) {
	e := newTestEcho(t)
	h := NewBlogHandler(&stubReader{
		homeFn: func(ctx context.Context) ([]domain.Post, error) {
			return []domain.Post{
				{ID: 1, Title: "First", Slug: "first"},
				{ID: 2, Title: "Second", Slug: "second"},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Test Blog", `href="/post/first"`, `href="/post/second"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestBlogHandler_Post(t *testing.T) {
	e := newTestEcho(t)
	h := NewBlogHandler(&stubReader{
		postFn: func(ctx context.Context, slug string) (*domain.Post, error) {
			if slug != "a-b" {
				return nil, fmt.Errorf("find %q: %w", slug, domain.ErrNotFound)
			}
			return &domain.Post{ID: 1, Title: "A", Subtitle: "B", Slug: "a-b", Content: "Hello there"}, nil
		},
	})

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/post/a-b", nil), rec)
		c.SetParamNames("slug")
		c.SetParamValues("a-b")

		if err := h.Post(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if !strings.Contains(rec.Body.String(), "<p>Hello there</p>") {
			t.Fatalf("post content not rendered: %s", rec.Body.String())
		}
	})

	t.Run("missing", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/post/nope", nil), httptest.NewRecorder())
		c.SetParamNames("slug")
		c.SetParamValues("nope")

		if err := h.Post(c); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBlogHandler_About(t *testing.T) {
	e := newTestEcho(t)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/about", nil), rec)

	if err := NewBlogHandler(&stubReader{}).About(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "about text") {
		t.Fatalf("about text missing")
	}
}
