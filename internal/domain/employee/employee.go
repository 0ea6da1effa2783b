package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/reminderly/reminderly/internal/shared/biztime"
)

const (
	maxNameLength           = 100
	maxEmployeeNumberLength = 50
)

// Employee is the subject of reminders and the source of manager and HR contacts.
type Employee struct {
	id              uint
	employeeNumber  string
	name            string
	email           string
	position        string
	department      string
	managerEmail    string
	hrEmail         string
	birthday        *time.Time
	workAnniversary *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEmployee(employeeNumber, name, email string) (*Employee, error) {
	employeeNumber = strings.TrimSpace(employeeNumber)
	if employeeNumber == "" {
		return nil, fmt.Errorf("employee number is required")
	}
	if len(employeeNumber) > maxEmployeeNumberLength {
		return nil, fmt.Errorf("employee number exceeds maximum length of %d characters", maxEmployeeNumberLength)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	normalized, err := normalizeEmail(email, true)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Employee{
		employeeNumber: employeeNumber,
		name:           strings.TrimSpace(name),
		email:          normalized,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructEmployee(
	id uint,
	employeeNumber string,
	name string,
	email string,
	position string,
	department string,
	managerEmail string,
	hrEmail string,
	birthday *time.Time,
	workAnniversary *time.Time,
	createdAt, updatedAt time.Time,
) (*Employee, error) {
	if id == 0 {
		return nil, fmt.Errorf("employee ID cannot be zero")
	}
	if employeeNumber == "" {
		return nil, fmt.Errorf("employee number is required")
	}

	return &Employee{
		id:              id,
		employeeNumber:  employeeNumber,
		name:            name,
		email:           email,
		position:        position,
		department:      department,
		managerEmail:    managerEmail,
		hrEmail:         hrEmail,
		birthday:        truncateOptional(birthday),
		workAnniversary: truncateOptional(workAnniversary),
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (e *Employee) ID() uint {
	return e.id
}

func (e *Employee) EmployeeNumber() string {
	return e.employeeNumber
}

func (e *Employee) Name() string {
	return e.name
}

// Email may be empty for imported records.
func (e *Employee) Email() string {
	return e.email
}

func (e *Employee) Position() string {
	return e.position
}

func (e *Employee) Department() string {
	return e.department
}

func (e *Employee) ManagerEmail() string {
	return e.managerEmail
}

func (e *Employee) HREmail() string {
	return e.hrEmail
}

func (e *Employee) Birthday() *time.Time {
	return e.birthday
}

func (e *Employee) WorkAnniversary() *time.Time {
	return e.workAnniversary
}

func (e *Employee) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Employee) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Employee) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("employee ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("employee ID cannot be zero")
	}
	e.id = id
	return nil
}

// UpdateProfile replaces the descriptive fields.
func (e *Employee) UpdateProfile(name, email, position, department string) error {
	if err := validateName(name); err != nil {
		return err
	}
	normalized, err := normalizeEmail(email, true)
	if err != nil {
		return err
	}

	e.name = strings.TrimSpace(name)
	e.email = normalized
	e.position = strings.TrimSpace(position)
	e.department = strings.TrimSpace(department)
	e.updatedAt = biztime.NowUTC()
	return nil
}

// UpdateContacts sets the manager and HR addresses. Empty values clear them.
func (e *Employee) UpdateContacts(managerEmail, hrEmail string) error {
	manager, err := normalizeEmail(managerEmail, false)
	if err != nil {
		return fmt.Errorf("manager email: %w", err)
	}
	hr, err := normalizeEmail(hrEmail, false)
	if err != nil {
		return fmt.Errorf("hr email: %w", err)
	}

	e.managerEmail = manager
	e.hrEmail = hr
	e.updatedAt = biztime.NowUTC()
	return nil
}

// SetAnchorDates records the birthday and work anniversary used by annual reminders.
func (e *Employee) SetAnchorDates(birthday, workAnniversary *time.Time) {
	e.birthday = truncateOptional(birthday)
	e.workAnniversary = truncateOptional(workAnniversary)
	e.updatedAt = biztime.NowUTC()
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	return nil
}

func normalizeEmail(email string, required bool) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			return "", fmt.Errorf("email is required")
		}
		return "", nil
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", fmt.Errorf("invalid email address %q", email)
	}
	return email, nil
}

func truncateOptional(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := biztime.TruncateDate(*t)
	return &d
}
