package mail

import (
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/service"

	"github.com/pkg/errors"
)

// NewMailer creates the Mailer selected by mail.provider. Without mail configuration
// messages are only logged.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Provider == "" || mailCfg.Provider == constants.MailProviderLog {
		logger.Info("Mail delivery disabled, using log mailer")

		return NewLogMailer(logger), nil
	}

	switch mailCfg.Provider {
	case constants.MailProviderSMTP:
		if mailCfg.Host == "" {
			return nil, errors.New("host is required for smtp provider")
		}
		if mailCfg.From == "" {
			return nil, errors.New("from address is required for smtp provider")
		}
		logger.Info("Using SMTP mailer",
			slog.String("host", mailCfg.Host),
			slog.Int("port", mailCfg.Port),
		)

		return NewSMTPMailer(mailCfg, logger)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}
}
