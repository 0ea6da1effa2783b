package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
	"github.com/reminderly/reminderly/internal/shared/goroutine"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// PlainTextConverter derives the text/plain alternative from the HTML body.
type PlainTextConverter interface {
	ToPlainText(htmlContent string) string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender delivers through an SMTP relay. gomail has no context support, so
// the dial runs in a goroutine and the caller stops waiting when ctx ends.
type SMTPSender struct {
	dialer    dialer
	from      Address
	plainText PlainTextConverter
	logger    logger.Interface
}

func NewSMTPSender(cfg sharedConfig.EmailConfig, plainText PlainTextConverter, logger logger.Interface) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password),
		from:      Address{Email: cfg.FromAddress, Name: cfg.FromName},
		plainText: plainText,
		logger:    logger,
	}
}

func (s *SMTPSender) Provider() string {
	return sharedConfig.EmailProviderSMTP
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from.Email, s.from.Name)
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, m.FormatAddress(addr.Email, addr.Name))
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)
	if s.plainText != nil {
		m.SetBody("text/plain", s.plainText.ToPlainText(msg.HTMLBody))
		m.AddAlternative("text/html", msg.HTMLBody)
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	done := goroutine.SafeGoErr(s.logger, "smtp-send", func() error {
		return s.dialer.DialAndSend(m)
	})

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("failed to send email: %w", err)
		}
		return &SendResult{}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("smtp send aborted: %w", ctx.Err())
	}
}
