package notify

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/dmitrijs2005/guestbook/internal/server/models"
	"github.com/wneessen/go-mail"
)

// SMTPNotifier emails an entry summary to the configured host address.
type SMTPNotifier struct {
	host     string
	port     int
	user     string
	password string
	from     string
	to       string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		to:       cfg.NotifyEmail,
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, entry *models.Entry) error {
	m := mail.NewMsg()
	if err := m.From(n.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(n.to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject("New Guest Book Entry")
	m.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("New entry from %s from %s: %s", entry.Name, entry.From, entry.Comments))

	opts := []mail.Option{mail.WithPort(n.port), mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if n.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.user),
			mail.WithPassword(n.password),
		)
	}

	client, err := mail.NewClient(n.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
