package reminder

import (
	"fmt"
	"strings"
)

// RecipientPolicy selects who receives a reminder type's emails.
type RecipientPolicy struct {
	notifyEmployee   bool
	notifyManager    bool
	notifyHR         bool
	additionalEmails []string
}

// NewRecipientPolicy trims the additional addresses and drops blanks, keeping order.
func NewRecipientPolicy(notifyEmployee, notifyManager, notifyHR bool, additionalEmails []string) (*RecipientPolicy, error) {
	cleaned := make([]string, 0, len(additionalEmails))
	for _, email := range additionalEmails {
		email = strings.TrimSpace(email)
		if email == "" {
			continue
		}
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("invalid additional email %q", email)
		}
		cleaned = append(cleaned, email)
	}

	return &RecipientPolicy{
		notifyEmployee:   notifyEmployee,
		notifyManager:    notifyManager,
		notifyHR:         notifyHR,
		additionalEmails: cleaned,
	}, nil
}

func (p *RecipientPolicy) NotifyEmployee() bool {
	return p.notifyEmployee
}

func (p *RecipientPolicy) NotifyManager() bool {
	return p.notifyManager
}

func (p *RecipientPolicy) NotifyHR() bool {
	return p.notifyHR
}

// AdditionalEmails returns a copy of the configured extra addresses.
func (p *RecipientPolicy) AdditionalEmails() []string {
	out := make([]string, len(p.additionalEmails))
	copy(out, p.additionalEmails)
	return out
}
