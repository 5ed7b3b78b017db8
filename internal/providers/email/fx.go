package email

import (
	"github.com/smallbiznis/threadline/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func provideProvider(cfg config.Config, log *zap.Logger) Provider {
	if cfg.SMTPHost == "" {
		return NewNoOpProvider(log)
	}
	return NewSMTPProvider(SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}, log)
}

var Module = fx.Module("providers.email",
	fx.Provide(provideProvider),
)
