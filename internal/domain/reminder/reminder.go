package reminder

import (
	"fmt"
	"sync"
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

const maxNotesLength = 2000

// Completion is the human applied marker that stops automatic evaluation.
type Completion struct {
	completedAt time.Time
	completedBy string
	notes       string
}

func NewCompletion(completedBy, notes string, completedAt time.Time) *Completion {
	return &Completion{completedAt: completedAt, completedBy: completedBy, notes: notes}
}

func (c *Completion) CompletedAt() time.Time {
	return c.completedAt
}

func (c *Completion) CompletedBy() string {
	return c.completedBy
}

func (c *Completion) Notes() string {
	return c.notes
}

// Reminder is one notification obligation for one employee and one reminder type.
type Reminder struct {
	mu              sync.RWMutex
	id              uint
	employeeID      uint
	reminderTypeID  uint
	dueDate         time.Time
	notes           string
	priority        vo.Priority
	recurringID     *uint
	systemGenerated bool
	completion      *Completion
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReminder(employeeID, reminderTypeID uint, dueDate time.Time, notes string, priority vo.Priority) (*Reminder, error) {
	if employeeID == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if reminderTypeID == 0 {
		return nil, fmt.Errorf("reminder type ID is required")
	}
	if dueDate.IsZero() {
		return nil, fmt.Errorf("due date is required")
	}
	if len(notes) > maxNotesLength {
		return nil, fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Reminder{
		employeeID:     employeeID,
		reminderTypeID: reminderTypeID,
		dueDate:        biztime.TruncateDate(dueDate),
		notes:          notes,
		priority:       priority,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// NewGeneratedReminder builds an instance spawned by a recurring definition.
func NewGeneratedReminder(recurringID, employeeID, reminderTypeID uint, dueDate time.Time, notes string) (*Reminder, error) {
	if recurringID == 0 {
		return nil, fmt.Errorf("recurring reminder ID is required")
	}
	r, err := NewReminder(employeeID, reminderTypeID, dueDate, notes, vo.PriorityMedium)
	if err != nil {
		return nil, err
	}
	r.recurringID = &recurringID
	r.systemGenerated = true
	return r, nil
}

func ReconstructReminder(
	id uint,
	employeeID uint,
	reminderTypeID uint,
	dueDate time.Time,
	notes string,
	priority vo.Priority,
	recurringID *uint,
	systemGenerated bool,
	completion *Completion,
	createdAt, updatedAt time.Time,
) (*Reminder, error) {
	if id == 0 {
		return nil, fmt.Errorf("reminder ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	return &Reminder{
		id:              id,
		employeeID:      employeeID,
		reminderTypeID:  reminderTypeID,
		dueDate:         biztime.TruncateDate(dueDate),
		notes:           notes,
		priority:        priority,
		recurringID:     recurringID,
		systemGenerated: systemGenerated,
		completion:      completion,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (r *Reminder) ID() uint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id
}

func (r *Reminder) EmployeeID() uint {
	return r.employeeID
}

func (r *Reminder) ReminderTypeID() uint {
	return r.reminderTypeID
}

// DueDate is a civil date at midnight UTC.
func (r *Reminder) DueDate() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dueDate
}

func (r *Reminder) Notes() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notes
}

func (r *Reminder) Priority() vo.Priority {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.priority
}

func (r *Reminder) RecurringID() *uint {
	return r.recurringID
}

func (r *Reminder) IsSystemGenerated() bool {
	return r.systemGenerated
}

func (r *Reminder) Completion() *Completion {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.completion
}

func (r *Reminder) IsCompleted() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.completion != nil
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.updatedAt
}

func (r *Reminder) SetID(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id != 0 {
		return fmt.Errorf("reminder ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reminder ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Reminder) SetPriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.priority = priority
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Reschedule moves the due date. Dispatch history stays attached to the
// reminder, so an interval already sent is not sent again.
func (r *Reminder) Reschedule(dueDate time.Time) error {
	if dueDate.IsZero() {
		return fmt.Errorf("due date is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dueDate = biztime.TruncateDate(dueDate)
	r.updatedAt = biztime.NowUTC()
	return nil
}

func (r *Reminder) SetNotes(notes string) error {
	if len(notes) > maxNotesLength {
		return fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = notes
	r.updatedAt = biztime.NowUTC()
	return nil
}

// Complete applies the completion marker. A reminder can only be completed once.
func (r *Reminder) Complete(completedBy, notes string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completion != nil {
		return ErrAlreadyCompleted
	}
	if len(notes) > maxNotesLength {
		return fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}
	r.completion = NewCompletion(completedBy, notes, at)
	r.updatedAt = at
	return nil
}
