package di

import (
	"log/slog"

	authusecase "tutor_backend/internal/feature/auth/usecase"
	"tutor_backend/internal/platform/config"
	"tutor_backend/internal/platform/mail"
)

// NewMailer creates the notification gateway. With an SMTP host it
// delivers codes for real and surfaces delivery failures; without one
// it falls back to logging the code, which still counts as success
// for the registration flow.
func NewMailer(cfg config.MailConfig) (authusecase.Mailer, error) {
	if cfg.Host == "" {
		slog.Warn("SMTP_HOST is not set, verification codes will be logged to the console")
		return mail.NewConsoleSender(), nil
	}
	return mail.NewSMTPSender(cfg)
}
