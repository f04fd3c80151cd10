package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), Config{Path: filepath.Join(t.TempDir(), "blog.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func postFields(n int) domain.PostFields {
	return domain.PostFields{
		Title:    fmt.Sprintf("Title %d", n),
		Subtitle: fmt.Sprintf("Sub %d", n),
		Slug:     fmt.Sprintf("slug-%d", n),
		Content:  fmt.Sprintf("Content %d", n),
		Date:     "2024-01-01",
	}
}

func TestOpen_InMemory(t *testing.T) {
	db, err := Open(context.Background(), Config{Path: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)
	_, err = repo.Create(context.Background(), postFields(1))
	require.NoError(t, err)

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open(context.Background(), Config{})
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, Migrate(context.Background(), db))
}

func TestPostRepository_CreateThenFind(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, postFields(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *byID)

	bySlug, err := repo.FindBySlug(ctx, "slug-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestPostRepository_EndToEndSlugLookup(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	f := domain.PostFields{Title: "A", Subtitle: "B", Slug: "a-b", Content: "C", Date: "2024-01-01"}
	created, err := repo.Create(ctx, f)
	require.NoError(t, err)

	got, err := repo.FindBySlug(ctx, "a-b")
	require.NoError(t, err)
	assert.Equal(t, f, got.Fields())
	assert.Equal(t, created.ID, got.ID)
}

func TestPostRepository_FindMissing(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.FindBySlug(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostRepository_ListEmpty(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostRepository_ListRecent(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Create(ctx, postFields(i))
		require.NoError(t, err)
	}

	posts, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.Equal(t, int64(2), posts[1].ID)
}

func TestPostRepository_Update(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, postFields(1))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, postFields(2))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, postFields(2), got.Fields())

	// Same values again: no collision with itself.
	_, err = repo.Update(ctx, created.ID, postFields(2))
	require.NoError(t, err)
}

func TestPostRepository_UpdateMissing(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))

	_, err := repo.Update(context.Background(), 7, postFields(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostRepository_UniqueFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *domain.PostFields)
	}{
		{"title", func(f *domain.PostFields) { f.Title = "Title 1" }},
		{"subtitle", func(f *domain.PostFields) { f.Subtitle = "Sub 1" }},
		{"content", func(f *domain.PostFields) { f.Content = "Content 1" }},
		{"slug", func(f *domain.PostFields) { f.Slug = "slug-1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewPostRepository(openTestDB(t))
			ctx := context.Background()

			_, err := repo.Create(ctx, postFields(1))
			require.NoError(t, err)
			second, err := repo.Create(ctx, postFields(2))
			require.NoError(t, err)

			dup := postFields(3)
			tt.mutate(&dup)

			_, err = repo.Create(ctx, dup)
			assert.ErrorIs(t, err, domain.ErrConstraintViolation)

			_, err = repo.Update(ctx, second.ID, dup)
			assert.ErrorIs(t, err, domain.ErrConstraintViolation)

			got, err := repo.FindByID(ctx, second.ID)
			require.NoError(t, err)
			assert.Equal(t, postFields(2), got.Fields(), "failed update must not change the post")
		})
	}
}

func TestPostRepository_Delete(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, postFields(1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Absent ids are a no-op.
	require.NoError(t, repo.Delete(ctx, created.ID))
	require.NoError(t, repo.Delete(ctx, 12345))
}

func TestPostRepository_ConcurrentDuplicateTitle(t *testing.T) {
	repo := NewPostRepository(openTestDB(t))
	ctx := context.Background()

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			f := postFields(n)
			f.Title = "Same title"
			_, err := repo.Create(ctx, f)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, domain.ErrConstraintViolation):
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, writers-1, conflicts)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
