package reminder

import (
	"context"
	"time"
)

type ReminderTypeRepository interface {
	Create(ctx context.Context, t *ReminderType) error
	GetByID(ctx context.Context, id uint) (*ReminderType, error)
	GetByName(ctx context.Context, name string) (*ReminderType, error)
	Update(ctx context.Context, t *ReminderType) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*ReminderType, error)
	// GetByIDs loads several types at once, keyed by id. Missing ids are absent from the map.
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*ReminderType, error)
}

// ListFilter narrows reminder instance listings.
type ListFilter struct {
	Page           int
	PageSize       int
	EmployeeID     *uint
	ReminderTypeID *uint
	// Completed selects completed (true) or pending (false) reminders when set.
	Completed *bool
	DueFrom   *time.Time
	DueTo     *time.Time
}

type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
	// CreateGenerated inserts a recurring spawn. It returns false when an
	// instance for the same (recurring definition, employee, due date) exists.
	CreateGenerated(ctx context.Context, r *Reminder) (bool, error)
	GetByID(ctx context.Context, id uint) (*Reminder, error)
	// Update writes due date, notes and priority. Dispatch logs are untouched.
	Update(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Reminder, int64, error)
	// ListPending returns every reminder without a completion marker.
	ListPending(ctx context.Context) ([]*Reminder, error)
	// SaveCompletion stores the completion marker, returning ErrAlreadyCompleted
	// when one already exists.
	SaveCompletion(ctx context.Context, r *Reminder) error
	CountByReminderType(ctx context.Context, reminderTypeID uint) (int64, error)
}

type DispatchLogRepository interface {
	// Claim inserts a pending entry holding the (reminder, interval) slot.
	// It returns ErrDispatchAlreadyClaimed when the slot is already held.
	Claim(ctx context.Context, l *DispatchLog) error
	// Create inserts an entry that holds no slot (manual or pre-send failures).
	Create(ctx context.Context, l *DispatchLog) error
	// Finalize persists the terminal status of a claimed entry.
	Finalize(ctx context.Context, l *DispatchLog) error
	HasSuccessfulDispatch(ctx context.Context, reminderID uint, daysBefore int) (bool, error)
	ListByReminder(ctx context.Context, reminderID uint) ([]*DispatchLog, error)
}

type RecurringDefinitionRepository interface {
	Create(ctx context.Context, d *RecurringDefinition) error
	GetByID(ctx context.Context, id uint) (*RecurringDefinition, error)
	Update(ctx context.Context, d *RecurringDefinition) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*RecurringDefinition, error)
	// ListDue returns enabled definitions whose next due date is on or before today.
	ListDue(ctx context.Context, today time.Time) ([]*RecurringDefinition, error)
	// AdvanceSchedule writes the definition's new next due date only if the stored
	// value still equals previous. It reports whether the row was updated.
	AdvanceSchedule(ctx context.Context, d *RecurringDefinition, previous time.Time) (bool, error)
}
