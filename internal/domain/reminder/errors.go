package reminder

import "errors"

var (
	ErrReminderNotFound       = errors.New("reminder not found")
	ErrReminderTypeNotFound   = errors.New("reminder type not found")
	ErrReminderTypeNameExists = errors.New("reminder type name already exists")
	ErrRecurringNotFound      = errors.New("recurring reminder not found")
	ErrAlreadyCompleted       = errors.New("reminder already completed")
	// ErrDispatchAlreadyClaimed means a scheduled dispatch for the same
	// (reminder, interval) slot is in flight or already succeeded.
	ErrDispatchAlreadyClaimed = errors.New("dispatch already claimed")
	ErrReminderTypeInUse      = errors.New("reminder type is referenced by reminders")
	// ErrDuplicateSpawn means a recurring definition already has an instance
	// for the employee on that due date.
	ErrDuplicateSpawn = errors.New("recurring reminder already has an instance on that date")
)
