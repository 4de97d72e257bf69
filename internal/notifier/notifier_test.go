package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/spec-kit/omnimindia-api/internal/config"
	"github.com/spec-kit/omnimindia-api/internal/domain"
)

func TestNewSelectsImplementation(t *testing.T) {
	t.Run("no credentials yields noop", func(t *testing.T) {
		n := New(config.SMTPConfig{Port: 587})
		assert.IsType(t, NoopNotifier{}, n)
	})

	t.Run("partial credentials yields noop", func(t *testing.T) {
		n := New(config.SMTPConfig{Host: "smtp.example.com", User: "u", Port: 587})
		assert.IsType(t, NoopNotifier{}, n)
	})

	t.Run("full credentials yields smtp", func(t *testing.T) {
		n := New(config.SMTPConfig{Host: "smtp.example.com", User: "u", Pass: "p", Port: 587})
		assert.IsType(t, &SMTPNotifier{}, n)
	})
}

func TestNoopNotifierNeverFails(t *testing.T) {
	err := NoopNotifier{}.Notify(context.Background(), &domain.ContactEntry{Name: "Ada"})
	assert.NoError(t, err)
}

func TestSMTPNotifierMessage(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.example.com", User: "notify@example.com", Pass: "p", Port: 587}
	n := NewSMTPNotifier(cfg)

	var sent *gomail.Message
	n.send = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	entry := &domain.ContactEntry{
		ID:      42,
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "Interested in edge deployments.",
	}
	require.NoError(t, n.Notify(context.Background(), entry))
	require.NotNil(t, sent)

	assert.Equal(t, []string{"notify@example.com"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"notify@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"OmniMindia Contact: Ada Lovelace"}, sent.GetHeader("Subject"))
}

func TestSMTPNotifierBody(t *testing.T) {
	entry := &domain.ContactEntry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello there.",
	}

	text := body(entry)
	assert.Contains(t, text, "Name: Ada")
	assert.Contains(t, text, "Email: ada@example.com")
	assert.Contains(t, text, "Hello there.")
}

func TestSMTPNotifierWrapsSendError(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{Host: "smtp.example.com", User: "u", Pass: "p", Port: 587})
	n.send = func(*gomail.Message) error { return errors.New("connection refused") }

	err := n.Notify(context.Background(), &domain.ContactEntry{Name: "Ada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send contact notification")
}
