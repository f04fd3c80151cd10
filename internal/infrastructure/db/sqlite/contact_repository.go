package sqlite

import (
	"context"
	"database/sql"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO contacts (name, phone, msg, date, email)
		VALUES (?, ?, ?, ?, ?)`, msg.Name, msg.Phone, msg.Message, msg.Date, msg.Email)
	if err != nil {
		return nil, mapError("insert contact", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, mapError("insert contact", err)
	}
	msg.ID = id
	return &msg, nil
}
