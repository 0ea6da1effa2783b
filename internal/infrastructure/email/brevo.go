package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sharedConfig "github.com/reminderly/reminderly/internal/shared/config"
)

const brevoSendPath = "/smtp/email"

// BrevoSender posts messages to the Brevo transactional email API.
type BrevoSender struct {
	apiKey     string
	baseURL    string
	from       Address
	httpClient *http.Client
}

func NewBrevoSender(cfg sharedConfig.EmailConfig) *BrevoSender {
	return &BrevoSender{
		apiKey:  cfg.Brevo.APIKey,
		baseURL: strings.TrimRight(cfg.Brevo.BaseURL, "/"),
		from:    Address{Email: cfg.FromAddress, Name: cfg.FromName},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *BrevoSender) Provider() string {
	return sharedConfig.EmailProviderBrevo
}

type brevoRequest struct {
	Sender      Address   `json:"sender"`
	To          []Address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func (s *BrevoSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(brevoRequest{
		Sender:      s.from,
		To:          msg.To,
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLBody,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+brevoSendPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result brevoResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil && resp.StatusCode < http.StatusBadRequest {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		reason := result.Message
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("brevo API error (status %d): %s", resp.StatusCode, reason)
	}

	return &SendResult{MessageID: result.MessageID}, nil
}
