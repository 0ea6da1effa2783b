package email

import (
	"context"
	"fmt"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// NewSender builds the sender selected by cfg.Provider. The config is read once
// here; senders keep their own copy of the values they need.
func NewSender(ctx context.Context, cfg sharedConfig.EmailConfig, plainText PlainTextConverter, log logger.Interface) (Sender, error) {
	switch cfg.Provider {
	case sharedConfig.EmailProviderBrevo:
		if cfg.Brevo.APIKey == "" {
			return nil, fmt.Errorf("brevo provider requires an API key")
		}
		return NewBrevoSender(cfg), nil
	case sharedConfig.EmailProviderSMTP:
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("smtp provider requires a host")
		}
		return NewSMTPSender(cfg, plainText, log), nil
	case sharedConfig.EmailProviderSES:
		return NewSESSender(ctx, cfg, plainText)
	case sharedConfig.EmailProviderLog, "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.Provider)
	}
}
