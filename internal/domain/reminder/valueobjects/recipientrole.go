package valueobjects

// RecipientRole identifies why an address receives a reminder.
type RecipientRole string

const (
	RecipientRoleHR         RecipientRole = "hr"
	RecipientRoleManager    RecipientRole = "manager"
	RecipientRoleAdditional RecipientRole = "additional"
	RecipientRoleEmployee   RecipientRole = "employee"
)

var recipientRoleLabels = map[RecipientRole]string{
	RecipientRoleHR:         "HR Department",
	RecipientRoleManager:    "Manager",
	RecipientRoleAdditional: "Management Team",
	RecipientRoleEmployee:   "Employee",
}

var recipientRoleDisplayNames = map[RecipientRole]string{
	RecipientRoleHR:         "HR",
	RecipientRoleManager:    "Manager",
	RecipientRoleAdditional: "Additional Recipient",
}

func (r RecipientRole) String() string {
	return string(r)
}

func (r RecipientRole) IsValid() bool {
	_, ok := recipientRoleLabels[r]
	return ok
}

// Label is the human readable role bound to the {recipient} template variable.
func (r RecipientRole) Label() string {
	return recipientRoleLabels[r]
}

// DefaultDisplayName is used as the mailbox display name when no person name is known.
func (r RecipientRole) DefaultDisplayName() string {
	return recipientRoleDisplayNames[r]
}

// IsManagement reports whether the role counts toward dispatch success.
// The subject employee never does.
func (r RecipientRole) IsManagement() bool {
	return r == RecipientRoleHR || r == RecipientRoleManager || r == RecipientRoleAdditional
}
