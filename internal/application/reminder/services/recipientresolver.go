package services

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
)

// Contact is the slice of an employee record the resolver reads.
type Contact struct {
	Name         string
	Email        string
	ManagerEmail string
	HREmail      string
}

type Recipient struct {
	Email string
	Name  string
	Role  vo.RecipientRole
}

type RecipientList []Recipient

// Management returns the HR, manager and additional recipients, in order.
func (l RecipientList) Management() RecipientList {
	out := make(RecipientList, 0, len(l))
	for _, r := range l {
		if r.Role.IsManagement() {
			out = append(out, r)
		}
	}
	return out
}

// ResolveRecipients lists who receives a reminder: HR, then manager, then the
// additional addresses, then the employee. Addresses are deduplicated
// case-insensitively and the first role to claim an address keeps it.
func ResolveRecipients(policy *reminder.RecipientPolicy, contact Contact) RecipientList {
	if policy == nil {
		return nil
	}

	fold := cases.Fold()
	seen := make(map[string]bool)
	var out RecipientList
	add := func(email, name string, role vo.RecipientRole) {
		email = strings.TrimSpace(email)
		if email == "" {
			return
		}
		key := fold.String(email)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Recipient{Email: email, Name: name, Role: role})
	}

	if policy.NotifyHR() {
		add(contact.HREmail, vo.RecipientRoleHR.DefaultDisplayName(), vo.RecipientRoleHR)
	}
	if policy.NotifyManager() {
		add(contact.ManagerEmail, vo.RecipientRoleManager.DefaultDisplayName(), vo.RecipientRoleManager)
	}
	for _, email := range policy.AdditionalEmails() {
		add(email, vo.RecipientRoleAdditional.DefaultDisplayName(), vo.RecipientRoleAdditional)
	}
	if policy.NotifyEmployee() {
		add(contact.Email, contact.Name, vo.RecipientRoleEmployee)
	}
	return out
}
