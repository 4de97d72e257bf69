package notifier

import (
	"context"

	"github.com/spec-kit/omnimindia-api/internal/domain"
)

// NoopNotifier is used when SMTP is not configured. It never opens a
// connection and never fails.
type NoopNotifier struct{}

// Notify does nothing and returns nil.
func (NoopNotifier) Notify(context.Context, *domain.ContactEntry) error {
	return nil
}
