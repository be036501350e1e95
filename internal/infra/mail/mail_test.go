package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name    string
		cfg     *config.MailConfig
		wantErr string
	}{
		{name: "not configured"},
		{name: "log provider", cfg: &config.MailConfig{Provider: constants.MailProviderLog}},
		{name: "smtp", cfg: &config.MailConfig{Provider: constants.MailProviderSMTP, Host: "localhost", Port: 2525, From: "no-reply@example.com"}},
		{name: "smtp without host", cfg: &config.MailConfig{Provider: constants.MailProviderSMTP, From: "no-reply@example.com"}, wantErr: "host is required"},
		{name: "smtp without from", cfg: &config.MailConfig{Provider: constants.MailProviderSMTP, Host: "localhost"}, wantErr: "from address is required"},
		{name: "unknown provider", cfg: &config.MailConfig{Provider: "pigeon"}, wantErr: "unknown mail provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer, err := NewMailer(&config.Config{Mail: tt.cfg}, logger)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, mailer)
		})
	}
}

func TestLogMailer_Send(t *testing.T) {
	var buf bytes.Buffer
	mailer := NewLogMailer(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := mailer.Send(context.Background(), &service.Mail{
		To:      "jane@example.com",
		Subject: "Reset your password",
		Body:    "http://localhost:5173/reset-password/eyJhbGciOiJIUzI1NiJ9.reset.sig",
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "jane@example.com")
	assert.Contains(t, buf.String(), "Reset your password")
	assert.Contains(t, buf.String(), `"body_bytes":`)
	assert.NotContains(t, buf.String(), "reset-password")
	assert.NotContains(t, buf.String(), "eyJhbGciOiJIUzI1NiJ9.reset.sig")
}

func TestSMTPMailer_RejectsInvalidRecipient(t *testing.T) {
	mailer, err := NewSMTPMailer(&config.MailConfig{Host: "localhost", Port: 2525, From: "no-reply@example.com"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	err = mailer.Send(context.Background(), &service.Mail{To: "not an address", Subject: "x", Body: "y"})
	assert.ErrorContains(t, err, "invalid recipient address")
}
