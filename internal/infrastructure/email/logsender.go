package email

import (
	"context"

	"github.com/google/uuid"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// LogSender writes messages to the log instead of delivering them. It is the
// default provider so a fresh install never emails real people.
type LogSender struct {
	logger logger.Interface
}

func NewLogSender(logger logger.Interface) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Provider() string {
	return sharedConfig.EmailProviderLog
}

func (s *LogSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.Email)
	}
	s.logger.Infow("email captured by log sender",
		"message_id", id,
		"to", to,
		"subject", msg.Subject,
		"body_bytes", len(msg.HTMLBody),
	)
	return &SendResult{MessageID: id}, nil
}
