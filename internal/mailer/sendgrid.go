package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendgridMailer delivers messages through the SendGrid v3 API.
type SendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendgridMailer(apiKey, fromName, fromEmail string) *SendgridMailer {
	return &SendgridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendgridMailer) Send(ctx context.Context, msg *Message) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)

	htmlBody := msg.HTMLBody
	if htmlBody == "" {
		htmlBody = msg.TextBody
	}

	email := sgmail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, htmlBody)

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send failed: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
