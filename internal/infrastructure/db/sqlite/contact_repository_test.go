package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func TestContactRepository_Create(t *testing.T) {
	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()

	msg := domain.ContactMessage{Name: "Ann", Phone: "555-0100", Message: "Hi", Date: "2024-01-01", Email: "ann@example.com"}
	first, err := repo.Create(ctx, msg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	other := domain.ContactMessage{Name: "Bob", Phone: "555-0101", Message: "Hey", Date: "2024-01-01", Email: "bob@example.com"}
	second, err := repo.Create(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestContactRepository_Duplicates(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		email string
	}{
		{"same phone", "555-0100", "other@example.com"},
		{"same email", "555-0199", "ann@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewContactRepository(openTestDB(t))
			ctx := context.Background()

			_, err := repo.Create(ctx, domain.ContactMessage{Name: "Ann", Phone: "555-0100", Message: "Hi", Date: "2024-01-01", Email: "ann@example.com"})
			require.NoError(t, err)

			_, err = repo.Create(ctx, domain.ContactMessage{Name: "Eve", Phone: tt.phone, Message: "Hi", Date: "2024-01-02", Email: tt.email})
			assert.ErrorIs(t, err, domain.ErrConstraintViolation)
		})
	}
}
