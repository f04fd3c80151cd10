package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
	"github.com/monishsatpuri/blogcms/internal/core/ports"
)

// ContactService stores contact form submissions and queues a notification
// for each one.
type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.ContactNotifier
	log      zerolog.Logger
	now      func() time.Time
}

// NewContactService wires the store and notifier. A nil notifier disables
// notifications.
func NewContactService(repo ports.ContactRepository, notifier ports.ContactNotifier, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, log: log, now: time.Now}
}

func (s *ContactService) Submit(ctx context.Context, in ports.ContactInput) (*domain.ContactMessage, error) {
	msg := domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Message: in.Message,
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Date:    domain.FormatDate(s.now()),
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("submit contact: %w", err)
	}

	// Delivery happens out of band; the response never waits on it.
	if s.notifier != nil && !s.notifier.Notify(*stored) {
		s.log.Warn().Int64("contact_id", stored.ID).Msg("contact notification dropped")
	}

	s.log.Info().Int64("contact_id", stored.ID).Msg("contact message stored")
	return stored, nil
}
