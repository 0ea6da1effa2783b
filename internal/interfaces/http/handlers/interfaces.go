package handlers

import (
	"context"

	employeedto "github.com/reminderly/reminderly/internal/application/employee/dto"
	employeeusecases "github.com/reminderly/reminderly/internal/application/employee/usecases"
	jobrundto "github.com/reminderly/reminderly/internal/application/jobrun/dto"
	jobrunusecases "github.com/reminderly/reminderly/internal/application/jobrun/usecases"
	reminderdto "github.com/reminderly/reminderly/internal/application/reminder/dto"
	reminderusecases "github.com/reminderly/reminderly/internal/application/reminder/usecases"
)

// Use case interfaces for the handlers - enables unit testing with mocks.

type employeeService interface {
	Create(ctx context.Context, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error)
	Update(ctx context.Context, id uint, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error)
	Get(ctx context.Context, id uint) (*employeedto.EmployeeResponse, error)
	List(ctx context.Context, q employeeusecases.ListEmployeesQuery) ([]*employeedto.EmployeeResponse, int64, error)
	Delete(ctx context.Context, id uint) error
}

type reminderTypeService interface {
	Create(ctx context.Context, cmd reminderusecases.CreateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error)
	Update(ctx context.Context, cmd reminderusecases.UpdateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error)
	Get(ctx context.Context, id uint) (*reminderdto.ReminderTypeResponse, error)
	List(ctx context.Context) ([]*reminderdto.ReminderTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type recurringService interface {
	Create(ctx context.Context, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error)
	Update(ctx context.Context, id uint, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error)
	Get(ctx context.Context, id uint) (*reminderdto.RecurringResponse, error)
	List(ctx context.Context) ([]*reminderdto.RecurringResponse, error)
	Delete(ctx context.Context, id uint) error
}

type CreateReminderExecutor interface {
	Execute(ctx context.Context, cmd reminderusecases.CreateReminderCommand) (*reminderdto.ReminderResponse, error)
}

type GetReminderExecutor interface {
	Execute(ctx context.Context, id uint) (*reminderdto.ReminderResponse, error)
	ListLogs(ctx context.Context, id uint) ([]*reminderdto.DispatchLogResponse, error)
}

type UpdateReminderExecutor interface {
	Execute(ctx context.Context, cmd reminderusecases.UpdateReminderCommand) (*reminderdto.ReminderResponse, error)
}

type BulkCreateRemindersExecutor interface {
	Execute(ctx context.Context, cmd reminderusecases.BulkCreateRemindersCommand) ([]*reminderdto.ReminderResponse, error)
}

type BulkSendRemindersExecutor interface {
	Execute(ctx context.Context, reminderIDs []uint) (*reminderdto.BulkSendResult, error)
}

type SendTestEmailExecutor interface {
	Execute(ctx context.Context, to string) (*reminderdto.TestEmailResult, error)
}

type ListRemindersExecutor interface {
	Execute(ctx context.Context, q reminderusecases.ListRemindersQuery) ([]*reminderdto.ReminderResponse, int64, error)
}

type DeleteReminderExecutor interface {
	Execute(ctx context.Context, id uint) error
}

type CompleteReminderExecutor interface {
	Execute(ctx context.Context, cmd reminderusecases.CompleteReminderCommand) (*reminderdto.ReminderResponse, error)
}

type SendReminderNowExecutor interface {
	Execute(ctx context.Context, reminderID uint) (*reminderdto.DispatchEntry, error)
}

type RunJobExecutor interface {
	Execute(ctx context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error)
}

type ListRunsExecutor interface {
	Execute(ctx context.Context, q jobrunusecases.ListRunsQuery) ([]*jobrundto.JobRunResponse, error)
}
