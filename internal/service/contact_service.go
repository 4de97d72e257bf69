package service

import (
	"context"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/omnimindia-api/internal/domain"
	"github.com/spec-kit/omnimindia-api/internal/notifier"
	"github.com/spec-kit/omnimindia-api/internal/repository"
	"github.com/spec-kit/omnimindia-api/pkg/util"
)

// ContactService orchestrates one contact submission:
// validate, persist, then best-effort notify. Validation failures happen
// before any side effect; notification failures never alter the outcome once
// the entry is stored.
type ContactService struct {
	repo     repository.ContactRepository
	notifier notifier.Notifier
	logger   *zap.Logger
}

// NewContactService wires the service dependencies.
func NewContactService(repo repository.ContactRepository, n notifier.Notifier, logger *zap.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: n, logger: logger}
}

// Submit validates and stores a submission, returning the stored entry with
// its database-assigned id.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactEntry, error) {
	if err := validateSubmission(name, email, message); err != nil {
		return nil, err
	}

	entry := &domain.ContactEntry{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: message,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, util.NewInternalError(err)
	}

	// The submission already succeeded; a failed notification is logged and
	// swallowed so "data captured" stays decoupled from "mail delivered".
	if err := s.notifier.Notify(ctx, entry); err != nil {
		s.logger.Warn("contact notification failed",
			zap.Int64("contact_id", entry.ID),
			zap.Error(err))
	}

	return entry, nil
}

func validateSubmission(name, email, message string) error {
	details := map[string]any{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(message) == "" {
		details["message"] = "required"
	}
	if !validEmail(email) {
		details["email"] = "must be a valid email address"
	}
	if len(details) > 0 {
		return util.NewValidationError("invalid contact submission", details)
	}
	return nil
}

// validEmail checks the address against the standard addr-spec grammar.
// ParseAddress accepts display names ("A <a@b.c>"); those are rejected here
// because the field must hold the bare address.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
