// Package notifier sends best-effort email notifications for contact
// submissions. Implementations are interchangeable behind the Notifier
// interface so the feature can be disabled or faked in tests.
package notifier

import (
	"context"

	"github.com/spec-kit/omnimindia-api/internal/config"
	"github.com/spec-kit/omnimindia-api/internal/domain"
)

// Notifier sends a notification about one stored contact entry. Callers treat
// failures as advisory: the submission has already been persisted.
type Notifier interface {
	Notify(ctx context.Context, entry *domain.ContactEntry) error
}

// New returns an SMTP notifier when all credentials are configured and a
// no-op otherwise, so the contact flow never branches on configuration.
func New(cfg config.SMTPConfig) Notifier {
	if !cfg.Enabled() {
		return NoopNotifier{}
	}
	return NewSMTPNotifier(cfg)
}
