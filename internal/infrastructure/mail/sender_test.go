package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

func TestBuildMessage(t *testing.T) {
	msg := domain.ContactMessage{
		ID:      3,
		Name:    "Ann\r\nBcc: evil@example.com",
		Email:   "ann@example.com",
		Phone:   "555-1234",
		Message: "hello\nthere",
		Date:    "2024-05-01",
	}

	raw := string(BuildMessage("blog@example.com", "owner@example.com", msg))

	headers, body, ok := strings.Cut(raw, "\r\n\r\n")
	require.True(t, ok)
	assert.Contains(t, headers, "From: blog@example.com\r\n")
	assert.Contains(t, headers, "To: owner@example.com\r\n")
	assert.Contains(t, headers, "Reply-To: ann@example.com\r\n")
	assert.Contains(t, headers, "Subject: New message from AnnBcc: evil@example.com")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, body, "hello\r\nthere")
	assert.Contains(t, body, "Phone: 555-1234")
	assert.Contains(t, body, "Date: 2024-05-01")
}

func TestSMTPSender_DialFailure(t *testing.T) {
	s := NewSMTPSender(Config{Server: "127.0.0.1", Port: 1, Recipient: "owner@example.com"})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := s.Send(ctx, domain.ContactMessage{ID: 1})
	assert.Error(t, err)
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, NewLogSender(zerolog.Nop()).Send(context.Background(), domain.ContactMessage{ID: 1}))
}
