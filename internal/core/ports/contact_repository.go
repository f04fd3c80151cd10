package ports

import (
	"context"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// ContactRepository is the append-only Contact Store. A phone or email that
// is already on file fails with domain.ErrConstraintViolation.
type ContactRepository interface {
	Create(ctx context.Context, msg domain.ContactMessage) (*domain.ContactMessage, error)
}
