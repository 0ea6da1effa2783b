package services

import (
	"regexp"
	"strconv"
	"time"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Template variable names.
const (
	VarType          = "type"
	VarEmployee      = "employee"
	VarEmployeeName  = "employeeName"
	VarDays          = "days"
	VarDaysRemaining = "daysRemaining"
	VarDate          = "date"
	VarDueDate       = "dueDate"
	VarRecipient     = "recipient"
	VarPosition      = "position"
	VarDepartment    = "department"
	VarNotes         = "notes"
)

// Render substitutes {name} placeholders. Unknown names and names bound to an
// empty string are left as written so operators can spot missing data.
func Render(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		if v, ok := vars[name]; ok && v != "" {
			return v
		}
		return token
	})
}

// DaysPhrase is the human form of daysUntilDue used by {days}.
func DaysPhrase(daysUntilDue int) string {
	if daysUntilDue <= 0 {
		return "today"
	}
	return "in " + strconv.Itoa(daysUntilDue) + " days"
}

// TemplateData is everything a reminder email can mention.
type TemplateData struct {
	TypeName     string
	EmployeeName string
	Position     string
	Department   string
	Notes        string
	DueDate      time.Time
	DaysUntilDue int
	DateFormat   string
}

// Variables builds the shared binding set. The recipient variable is added per send.
func (d TemplateData) Variables() map[string]string {
	date := ""
	if !d.DueDate.IsZero() {
		date = d.DueDate.Format(d.DateFormat)
	}
	return map[string]string{
		VarType:          d.TypeName,
		VarEmployee:      d.EmployeeName,
		VarEmployeeName:  d.EmployeeName,
		VarDays:          DaysPhrase(d.DaysUntilDue),
		VarDaysRemaining: strconv.Itoa(d.DaysUntilDue),
		VarDate:          date,
		VarDueDate:       date,
		VarPosition:      d.Position,
		VarDepartment:    d.Department,
		VarNotes:         d.Notes,
	}
}

// ForRecipient copies vars and binds the recipient's role label.
func ForRecipient(vars map[string]string, roleLabel string) map[string]string {
	out := make(map[string]string, len(vars)+1)
	for k, v := range vars {
		out[k] = v
	}
	out[VarRecipient] = roleLabel
	return out
}
