// Package mail provides outbound email dispatch over SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/askhub/askhub-server/internal/config"
	"github.com/askhub/askhub-server/internal/model"
)

var _ model.Mailer = (*SMTP)(nil)

// SMTP implements model.Mailer over an SMTP transport.
type SMTP struct {
	client *gomail.Client
	from   string
}

// NewSMTP creates an SMTP mailer from mail configuration.
func NewSMTP(cfg config.Mail) (*SMTP, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
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
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTP{client: client, from: cfg.From}, nil
}

// Send dispatches a single message.
func (s *SMTP) Send(ctx context.Context, m model.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, m.HTMLBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
