package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const postColumns = "sno, title, sub_title, post_slug, content, date"

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT "+postColumns+" FROM posts ORDER BY sno")
	if err != nil {
		return nil, mapError("list posts", err)
	}
	return scanPosts(rows)
}

func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, "SELECT "+postColumns+" FROM posts ORDER BY sno LIMIT ?", limit)
	if err != nil {
		return nil, mapError("list recent posts", err)
	}
	return scanPosts(rows)
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE post_slug = ?", slug)
	return scanPost(row, "find post by slug")
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE sno = ?", id)
	return scanPost(row, "find post by id")
}

func (r *PostRepository) Create(ctx context.Context, f domain.PostFields) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (title, sub_title, post_slug, content, date)
		VALUES (?, ?, ?, ?, ?)`, f.Title, f.Subtitle, f.Slug, f.Content, f.Date)
	if err != nil {
		return nil, mapError("insert post", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, mapError("insert post", err)
	}
	return newPost(id, f), nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, f domain.PostFields) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET title = ?, sub_title = ?, post_slug = ?, content = ?, date = ?
		WHERE sno = ?`, f.Title, f.Subtitle, f.Slug, f.Content, f.Date, id)
	if err != nil {
		return nil, mapError("update post", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, mapError("update post", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("update post %d: %w", id, domain.ErrNotFound)
	}
	return newPost(id, f), nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE sno = ?", id); err != nil {
		return mapError("delete post", err)
	}
	return nil
}

func newPost(id int64, f domain.PostFields) *domain.Post {
	return &domain.Post{
		ID:       id,
		Title:    f.Title,
		Subtitle: f.Subtitle,
		Slug:     f.Slug,
		Content:  f.Content,
		Date:     f.Date,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInto(s scanner) (domain.Post, error) {
	var p domain.Post
	err := s.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Slug, &p.Content, &p.Date)
	return p, err
}

func scanPost(row *sql.Row, op string) (*domain.Post, error) {
	p, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(op, err)
	}
	return &p, nil
}

func scanPosts(rows *sql.Rows) ([]domain.Post, error) {
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanInto(rows)
		if err != nil {
			return nil, mapError("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("scan posts", err)
	}
	return posts, nil
}
