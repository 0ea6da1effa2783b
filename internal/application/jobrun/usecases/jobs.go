package usecases

import (
	"context"
	"time"

	reminderdto "github.com/reminderly/reminderly/internal/application/reminder/dto"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
)

// JobFunc runs one batch. today overrides the business date when non-nil.
// The returned result is stored on the job run even when err is set.
type JobFunc func(ctx context.Context, today *time.Time) (any, error)

// Jobs maps each job type to its implementation.
type Jobs map[jobrun.JobType]JobFunc

type ReminderDispatcher interface {
	Execute(ctx context.Context, cmd reminderusecases.DispatchRemindersCommand) (*reminderdto.BatchResult, error)
}

type RecurringAdvancer interface {
	Execute(ctx context.Context, cmd reminderusecases.AdvanceRecurringCommand) (*reminderdto.RecurringResult, error)
}

func DispatchJob(uc ReminderDispatcher) JobFunc {
	return func(ctx context.Context, today *time.Time) (any, error) {
		return uc.Execute(ctx, reminderusecases.DispatchRemindersCommand{Today: today})
	}
}

func RecurringJob(uc RecurringAdvancer) JobFunc {
	return func(ctx context.Context, today *time.Time) (any, error) {
		return uc.Execute(ctx, reminderusecases.AdvanceRecurringCommand{Today: today})
	}
}

// NewJobs wires the two batch jobs.
func NewJobs(dispatcher ReminderDispatcher, advancer RecurringAdvancer) Jobs {
	return Jobs{
		jobrun.JobTypeProcessReminders: DispatchJob(dispatcher),
		jobrun.JobTypeProcessRecurring: RecurringJob(advancer),
	}
}
