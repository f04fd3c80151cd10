package ports

import (
	"context"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

// ContactInput is the DTO passed from the contact form to ContactService.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactService records visitor messages.
type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error)
}

// ContactNotifier hands a stored message off for out-of-band notification.
// It must not block; it reports whether the message was accepted.
type ContactNotifier interface {
	Notify(msg domain.ContactMessage) bool
}

// ContactSender delivers a single notification, e.g. by mail.
type ContactSender interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}
