package service

import "context"

// Mail is a plain outbound message.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
