package notifier

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/spec-kit/omnimindia-api/internal/config"
	"github.com/spec-kit/omnimindia-api/internal/domain"
)

// SMTPNotifier emails contact submissions to the configured sender identity.
// Each Notify call is one scoped dial/STARTTLS/auth/send/close; the dialer
// tears the connection down on every exit path.
type SMTPNotifier struct {
	cfg  config.SMTPConfig
	send func(m *gomail.Message) error
}

// NewSMTPNotifier builds a notifier from SMTP credentials.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &SMTPNotifier{
		cfg:  cfg,
		send: func(m *gomail.Message) error { return dialer.DialAndSend(m) },
	}
}

// Notify sends the notification mail. The recipient is the sender identity
// itself; the submitter's address only appears in the body.
func (n *SMTPNotifier) Notify(_ context.Context, entry *domain.ContactEntry) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.User)
	m.SetHeader("To", n.cfg.User)
	m.SetHeader("Subject", subject(entry))
	m.SetBody("text/plain", body(entry))

	if err := n.send(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func subject(entry *domain.ContactEntry) string {
	return fmt.Sprintf("OmniMindia Contact: %s", entry.Name)
}

func body(entry *domain.ContactEntry) string {
	return fmt.Sprintf(
		"New contact form submission:\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n",
		entry.Name, entry.Email, entry.Message,
	)
}
