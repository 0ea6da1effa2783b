package usecases

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/reminderly/reminderly/internal/application/reminder/dto"
	"github.com/reminderly/reminderly/internal/infrastructure/email"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

const testEmailSubject = "Test Email from Reminderly"

// SendTestEmailUseCase sends a fixed message through the configured provider
// so operators can check the email settings.
type SendTestEmailUseCase struct {
	sender EmailSender
	clock  biztime.Clock
	logger logger.Interface
}

func NewSendTestEmailUseCase(sender EmailSender, clock biztime.Clock, logger logger.Interface) *SendTestEmailUseCase {
	return &SendTestEmailUseCase{sender: sender, clock: clock, logger: logger}
}

func (uc *SendTestEmailUseCase) Execute(ctx context.Context, to string) (*dto.TestEmailResult, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, apperrors.NewValidationError("recipient email is required")
	}

	now := uc.clock.Now()
	body := fmt.Sprintf(
		"<h1>Test Email</h1><p>This is a test email from Reminderly using the %s provider.</p>"+
			"<p>If you received it, email delivery is configured correctly.</p><p>Time sent: %s</p>",
		html.EscapeString(uc.sender.Provider()),
		now.Format("2006-01-02 15:04:05 MST"),
	)

	res, err := uc.sender.Send(ctx, email.Message{
		To:       []email.Address{{Email: to}},
		Subject:  testEmailSubject,
		HTMLBody: body,
	})
	if err != nil {
		uc.logger.Warnw("test email failed", "provider", uc.sender.Provider(), "error", err)
		return nil, apperrors.NewDeliveryError(0, "test email failed", err)
	}

	uc.logger.Infow("test email sent", "provider", uc.sender.Provider())
	result := &dto.TestEmailResult{Provider: uc.sender.Provider(), To: to, SentAt: now}
	if res != nil {
		result.MessageID = res.MessageID
	}
	return result, nil
}
