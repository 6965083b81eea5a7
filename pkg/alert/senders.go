package alert

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"github.com/wneessen/go-mail"

	"github.com/redscout/redscout/pkg/config"
)

// WebhookSlackSender posts to a Slack incoming webhook.
type WebhookSlackSender struct {
	URL string
}

func (s *WebhookSlackSender) SendWebhook(ctx context.Context, message *slack.WebhookMessage) error {
	return slack.PostWebhookContext(ctx, s.URL, message)
}

// SMTPEmailSender delivers over SMTP with STARTTLS when the server
// offers it.
type SMTPEmailSender struct {
	cfg *config.AlertConfig
}

// NewSMTPEmailSender builds a sender from the alert configuration.
func NewSMTPEmailSender(cfg *config.AlertConfig) *SMTPEmailSender {
	return &SMTPEmailSender{cfg: cfg}
}

func (s *SMTPEmailSender) Send(ctx context.Context, recipient, subject, textBody, htmlBody string) error {
	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.SMTPUsername),
			mail.WithPassword(s.cfg.SMTPPassword))
	}

	client, err := mail.NewClient(s.cfg.SMTPHost, opts...)
	if err != nil {
		return fmt.Errorf("failed to build SMTP client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.cfg.SMTPFrom, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}
	return nil
}
