package mail

import (
	"context"
	"log/slog"
)

// ConsoleSender logs verification codes instead of mailing them. It
// is the development fallback when no SMTP host is configured, and it
// never fails: register reports success and the code is read off the
// server log.
type ConsoleSender struct{}

// NewConsoleSender creates a new ConsoleSender.
func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

// Send logs the code for the address and reports success.
func (s *ConsoleSender) Send(_ context.Context, email, code string) error {
	slog.Info("verification code (console fallback, SMTP not configured)",
		"email", email, "code", code)
	return nil
}
