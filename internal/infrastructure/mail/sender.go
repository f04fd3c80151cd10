// Package mail delivers contact-form notifications to the blog owner.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

type Config struct {
	Server    string
	Port      int
	User      string
	Password  string
	Recipient string
}

// SMTPSender sends one mail per contact message over implicit TLS.
type SMTPSender struct {
	cfg    Config
	dialer net.Dialer
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg, dialer: net.Dialer{Timeout: 10 * time.Second}}
}

func (s *SMTPSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	addr := net.JoinHostPort(s.cfg.Server, strconv.Itoa(s.cfg.Port))

	raw, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", addr, err)
	}
	conn := tls.Client(raw, &tls.Config{ServerName: s.cfg.Server, MinVersion: tls.VersionTLS12})
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Server)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("mail: handshake: %w", err)
	}
	defer c.Close()

	if s.cfg.User != "" {
		auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Server)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("mail: auth: %w", err)
		}
	}
	if err := c.Mail(s.from()); err != nil {
		return fmt.Errorf("mail: MAIL FROM: %w", err)
	}
	if err := c.Rcpt(s.cfg.Recipient); err != nil {
		return fmt.Errorf("mail: RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("mail: DATA: %w", err)
	}
	if _, err := w.Write(BuildMessage(s.from(), s.cfg.Recipient, msg)); err != nil {
		_ = w.Close()
		return fmt.Errorf("mail: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mail: finish body: %w", err)
	}
	return c.Quit()
}

func (s *SMTPSender) from() string {
	if s.cfg.User != "" {
		return s.cfg.User
	}
	return s.cfg.Recipient
}

// BuildMessage renders an RFC 5322 message announcing a new contact entry.
// Header values are stripped of line breaks.
func BuildMessage(from, to string, msg domain.ContactMessage) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", headerSafe(from))
	fmt.Fprintf(&b, "To: %s\r\n", headerSafe(to))
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(msg.Email))
	fmt.Fprintf(&b, "Subject: New message from %s\r\n", headerSafe(msg.Name))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "%s\r\n\r\n", strings.ReplaceAll(msg.Message, "\n", "\r\n"))
	fmt.Fprintf(&b, "Phone: %s\r\nEmail: %s\r\nDate: %s\r\n", msg.Phone, msg.Email, msg.Date)
	return b.Bytes()
}

func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// LogSender stands in when mail is disabled and only records the message.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg domain.ContactMessage) error {
	s.log.Info().
		Int64("contact_id", msg.ID).
		Str("from", msg.Email).
		Str("summary", msg.Summary()).
		Msg("contact message received (mail disabled)")
	return nil
}
