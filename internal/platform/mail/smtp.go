// Package mail delivers verification codes to registrants. The SMTP
// sender handles real delivery; the console sender is the development
// fallback used when no SMTP host is configured.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"tutor_backend/internal/platform/config"
)

// verificationSubject is the subject line of every code mail.
const verificationSubject = "Your verification code"

// verificationBody is the HTML template of the code mail. Kept
// minimal: the code, and the expiry notice the flow depends on.
const verificationBody = `<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 40px 20px;">
  <p>Your verification code is:</p>
  <div style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</div>
  <p>This code expires in 10 minutes.</p>
  <p style="font-size: 12px; color: #64748b;">If you didn't request this code, you can safely ignore this email.</p>
</div>`

// SMTPSender delivers verification codes over SMTP.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender creates an SMTP sender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send mails the code to the address. A returned error means the
// gateway explicitly failed; the registration flow reports that as a
// delivery failure rather than masking it.
func (s *SMTPSender) Send(ctx context.Context, email, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(verificationSubject)
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(verificationBody, code))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification mail: %w", err)
	}
	return nil
}
