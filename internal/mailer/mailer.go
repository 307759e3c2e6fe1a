// Package mailer sends transactional email for the contact flow.
package mailer

import (
	"context"

	"github.com/acadegrade/result-service/internal/utils"
)

// Message is one outbound email. HTMLBody is optional; TextBody is the
// fallback for clients without HTML support.
type Message struct {
	ToName   string
	ToEmail  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer delivers a single message synchronously.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// ConsoleMailer logs messages instead of sending them; used in development
// and when no provider key is configured.
type ConsoleMailer struct {
	logger utils.Logger
}

func NewConsoleMailer(logger utils.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg *Message) error {
	m.logger.InfoContext(ctx, "Console mailer: message not sent",
		"to", msg.ToEmail,
		"subject", msg.Subject)
	return nil
}
