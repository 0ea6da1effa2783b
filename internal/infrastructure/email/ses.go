package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
)

// SESAPI is the part of the SES client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers through Amazon SES using the default AWS credential chain.
type SESSender struct {
	client    SESAPI
	from      Address
	plainText PlainTextConverter
}

func NewSESSender(ctx context.Context, cfg sharedConfig.EmailConfig, plainText PlainTextConverter) (*SESSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SES.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSESSenderWithClient(ses.NewFromConfig(awsCfg), cfg, plainText), nil
}

func NewSESSenderWithClient(client SESAPI, cfg sharedConfig.EmailConfig, plainText PlainTextConverter) *SESSender {
	return &SESSender{
		client:    client,
		from:      Address{Email: cfg.FromAddress, Name: cfg.FromName},
		plainText: plainText,
	}
}

func (s *SESSender) Provider() string {
	return sharedConfig.EmailProviderSES
}

func (s *SESSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, formatMailbox(addr))
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")},
	}
	if s.plainText != nil {
		body.Text = &types.Content{Data: aws.String(s.plainText.ToPlainText(msg.HTMLBody)), Charset: aws.String("UTF-8")}
	}

	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: to,
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
		Source: aws.String(formatMailbox(s.from)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send email via SES: %w", err)
	}

	return &SendResult{MessageID: aws.ToString(out.MessageId)}, nil
}

func formatMailbox(a Address) string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%q <%s>", a.Name, a.Email)
}
