package reminder

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

// RecurringDefinition periodically spawns reminder instances for every employee.
// It is the only writer of its own next due date.
type RecurringDefinition struct {
	id              uint
	name            string
	reminderTypeID  uint
	frequency       vo.Frequency
	interval        int
	nextDueDate     time.Time
	anchorDay       int
	enabled         bool
	lastProcessedAt *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRecurringDefinition(name string, reminderTypeID uint, frequency vo.Frequency, interval int, nextDueDate time.Time) (*RecurringDefinition, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if reminderTypeID == 0 {
		return nil, fmt.Errorf("reminder type ID is required")
	}
	if err := validateSchedule(frequency, interval); err != nil {
		return nil, err
	}
	if nextDueDate.IsZero() {
		return nil, fmt.Errorf("next due date is required")
	}

	due := biztime.TruncateDate(nextDueDate)
	now := biztime.NowUTC()
	return &RecurringDefinition{
		name:           strings.TrimSpace(name),
		reminderTypeID: reminderTypeID,
		frequency:      frequency,
		interval:       interval,
		nextDueDate:    due,
		anchorDay:      due.Day(),
		enabled:        true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructRecurringDefinition(
	id uint,
	name string,
	reminderTypeID uint,
	frequency vo.Frequency,
	interval int,
	nextDueDate time.Time,
	anchorDay int,
	enabled bool,
	lastProcessedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*RecurringDefinition, error) {
	if id == 0 {
		return nil, fmt.Errorf("recurring reminder ID cannot be zero")
	}
	if err := validateSchedule(frequency, interval); err != nil {
		return nil, err
	}
	due := biztime.TruncateDate(nextDueDate)
	if anchorDay < 1 || anchorDay > 31 {
		anchorDay = due.Day()
	}

	return &RecurringDefinition{
		id:              id,
		name:            name,
		reminderTypeID:  reminderTypeID,
		frequency:       frequency,
		interval:        interval,
		nextDueDate:     due,
		anchorDay:       anchorDay,
		enabled:         enabled,
		lastProcessedAt: lastProcessedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (d *RecurringDefinition) ID() uint {
	return d.id
}

func (d *RecurringDefinition) Name() string {
	return d.name
}

func (d *RecurringDefinition) ReminderTypeID() uint {
	return d.reminderTypeID
}

func (d *RecurringDefinition) Frequency() vo.Frequency {
	return d.frequency
}

func (d *RecurringDefinition) Interval() int {
	return d.interval
}

func (d *RecurringDefinition) NextDueDate() time.Time {
	return d.nextDueDate
}

// AnchorDay is the day of month the schedule returns to after clamping to a short month.
func (d *RecurringDefinition) AnchorDay() int {
	return d.anchorDay
}

func (d *RecurringDefinition) IsEnabled() bool {
	return d.enabled
}

func (d *RecurringDefinition) LastProcessedAt() *time.Time {
	return d.lastProcessedAt
}

func (d *RecurringDefinition) CreatedAt() time.Time {
	return d.createdAt
}

func (d *RecurringDefinition) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *RecurringDefinition) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("recurring reminder ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("recurring reminder ID cannot be zero")
	}
	d.id = id
	return nil
}

// IsDue reports whether the definition should fire for the given civil date.
func (d *RecurringDefinition) IsDue(today time.Time) bool {
	return d.enabled && !d.nextDueDate.After(biztime.TruncateDate(today))
}

// Update replaces the schedule. Setting a new next due date resets the anchor day.
func (d *RecurringDefinition) Update(name string, reminderTypeID uint, frequency vo.Frequency, interval int, nextDueDate time.Time) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if reminderTypeID == 0 {
		return fmt.Errorf("reminder type ID is required")
	}
	if err := validateSchedule(frequency, interval); err != nil {
		return err
	}
	due := biztime.TruncateDate(nextDueDate)
	if !due.Equal(d.nextDueDate) {
		d.anchorDay = due.Day()
	}

	d.name = strings.TrimSpace(name)
	d.reminderTypeID = reminderTypeID
	d.frequency = frequency
	d.interval = interval
	d.nextDueDate = due
	d.updatedAt = biztime.NowUTC()
	return nil
}

func (d *RecurringDefinition) Enable() {
	d.enabled = true
	d.updatedAt = biztime.NowUTC()
}

func (d *RecurringDefinition) Disable() {
	d.enabled = false
	d.updatedAt = biztime.NowUTC()
}

// ScheduleNext moves the next due date forward after a cycle fired.
func (d *RecurringDefinition) ScheduleNext(next time.Time, processedAt time.Time) error {
	next = biztime.TruncateDate(next)
	if !next.After(d.nextDueDate) {
		return fmt.Errorf("next due date %s must be after %s",
			biztime.FormatDate(next), biztime.FormatDate(d.nextDueDate))
	}
	d.nextDueDate = next
	d.lastProcessedAt = &processedAt
	d.updatedAt = processedAt
	return nil
}

func validateSchedule(frequency vo.Frequency, interval int) error {
	if !frequency.IsValid() {
		return fmt.Errorf("invalid frequency")
	}
	if interval < 1 {
		return fmt.Errorf("interval must be at least 1")
	}
	return nil
}
