package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoRecipients = errors.New("email has no recipients")
	ErrEmptySubject = errors.New("email subject is empty")
)

// Address is a mailbox with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Message is one logical send. Every address in To receives the same content.
type Message struct {
	To       []Address
	Subject  string
	HTMLBody string
}

// Validate rejects messages no provider would accept.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	for _, to := range m.To {
		if strings.TrimSpace(to.Email) == "" {
			return fmt.Errorf("recipient address is empty")
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return ErrEmptySubject
	}
	return nil
}

// SendResult carries the provider's identifier for an accepted message.
type SendResult struct {
	MessageID string
}

// Sender delivers one message per call. A non-nil error means the provider did
// not accept the message; callers do not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
	Provider() string
}
