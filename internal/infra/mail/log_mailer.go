package mail

import (
	"context"
	"log/slog"

	"inventory/internal/domain/service"
)

// logMailer records that a mail would have been sent. The body is never logged since reset
// mails carry a live token.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that only logs.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, mail *service.Mail) error {
	m.logger.InfoContext(ctx, "[LogMailer] Mail not sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.Int("body_bytes", len(mail.Body)),
	)

	return nil
}
