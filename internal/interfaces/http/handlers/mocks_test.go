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

// =====================================================================
// Employee service
// =====================================================================

type mockEmployeeService struct {
	createFn func(ctx context.Context, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error)
	updateFn func(ctx context.Context, id uint, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error)
	getFn    func(ctx context.Context, id uint) (*employeedto.EmployeeResponse, error)
	listFn   func(ctx context.Context, q employeeusecases.ListEmployeesQuery) ([]*employeedto.EmployeeResponse, int64, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockEmployeeService) Create(ctx context.Context, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, cmd)
	}
	return nil, nil
}

func (m *mockEmployeeService) Update(ctx context.Context, id uint, cmd employeeusecases.EmployeeCommand) (*employeedto.EmployeeResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, cmd)
	}
	return nil, nil
}

func (m *mockEmployeeService) Get(ctx context.Context, id uint) (*employeedto.EmployeeResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmployeeService) List(ctx context.Context, q employeeusecases.ListEmployeesQuery) ([]*employeedto.EmployeeResponse, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockEmployeeService) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// =====================================================================
// Reminder use cases
// =====================================================================

type mockCreateReminder struct {
	fn func(ctx context.Context, cmd reminderusecases.CreateReminderCommand) (*reminderdto.ReminderResponse, error)
}

func (m *mockCreateReminder) Execute(ctx context.Context, cmd reminderusecases.CreateReminderCommand) (*reminderdto.ReminderResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil, nil
}

type mockGetReminder struct {
	getFn  func(ctx context.Context, id uint) (*reminderdto.ReminderResponse, error)
	logsFn func(ctx context.Context, id uint) ([]*reminderdto.DispatchLogResponse, error)
}

func (m *mockGetReminder) Execute(ctx context.Context, id uint) (*reminderdto.ReminderResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGetReminder) ListLogs(ctx context.Context, id uint) ([]*reminderdto.DispatchLogResponse, error) {
	if m.logsFn != nil {
		return m.logsFn(ctx, id)
	}
	return nil, nil
}

type mockListReminders struct {
	fn func(ctx context.Context, q reminderusecases.ListRemindersQuery) ([]*reminderdto.ReminderResponse, int64, error)
}

func (m *mockListReminders) Execute(ctx context.Context, q reminderusecases.ListRemindersQuery) ([]*reminderdto.ReminderResponse, int64, error) {
	if m.fn != nil {
		return m.fn(ctx, q)
	}
	return nil, 0, nil
}

type mockDeleteReminder struct {
	fn func(ctx context.Context, id uint) error
}

func (m *mockDeleteReminder) Execute(ctx context.Context, id uint) error {
	if m.fn != nil {
		return m.fn(ctx, id)
	}
	return nil
}

type mockCompleteReminder struct {
	fn func(ctx context.Context, cmd reminderusecases.CompleteReminderCommand) (*reminderdto.ReminderResponse, error)
}

func (m *mockCompleteReminder) Execute(ctx context.Context, cmd reminderusecases.CompleteReminderCommand) (*reminderdto.ReminderResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil, nil
}

type mockSendReminderNow struct {
	fn func(ctx context.Context, id uint) (*reminderdto.DispatchEntry, error)
}

func (m *mockSendReminderNow) Execute(ctx context.Context, id uint) (*reminderdto.DispatchEntry, error) {
	if m.fn != nil {
		return m.fn(ctx, id)
	}
	return nil, nil
}

type mockUpdateReminder struct {
	fn func(ctx context.Context, cmd reminderusecases.UpdateReminderCommand) (*reminderdto.ReminderResponse, error)
}

func (m *mockUpdateReminder) Execute(ctx context.Context, cmd reminderusecases.UpdateReminderCommand) (*reminderdto.ReminderResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil, nil
}

type mockBulkCreateReminders struct {
	fn func(ctx context.Context, cmd reminderusecases.BulkCreateRemindersCommand) ([]*reminderdto.ReminderResponse, error)
}

func (m *mockBulkCreateReminders) Execute(ctx context.Context, cmd reminderusecases.BulkCreateRemindersCommand) ([]*reminderdto.ReminderResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil, nil
}

type mockBulkSendReminders struct {
	fn func(ctx context.Context, ids []uint) (*reminderdto.BulkSendResult, error)
}

func (m *mockBulkSendReminders) Execute(ctx context.Context, ids []uint) (*reminderdto.BulkSendResult, error) {
	if m.fn != nil {
		return m.fn(ctx, ids)
	}
	return nil, nil
}

type mockSendTestEmail struct {
	fn func(ctx context.Context, to string) (*reminderdto.TestEmailResult, error)
}

func (m *mockSendTestEmail) Execute(ctx context.Context, to string) (*reminderdto.TestEmailResult, error) {
	if m.fn != nil {
		return m.fn(ctx, to)
	}
	return nil, nil
}

// =====================================================================
// Job runs
// =====================================================================

type mockRunJob struct {
	fn func(ctx context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error)
}

func (m *mockRunJob) Execute(ctx context.Context, cmd jobrunusecases.RunJobCommand) (*jobrundto.JobRunResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, cmd)
	}
	return nil, nil
}

type mockListRuns struct {
	fn func(ctx context.Context, q jobrunusecases.ListRunsQuery) ([]*jobrundto.JobRunResponse, error)
}

func (m *mockListRuns) Execute(ctx context.Context, q jobrunusecases.ListRunsQuery) ([]*jobrundto.JobRunResponse, error) {
	if m.fn != nil {
		return m.fn(ctx, q)
	}
	return nil, nil
}

// =====================================================================
// Reminder type / recurring services
// =====================================================================

type mockReminderTypeService struct {
	createFn func(ctx context.Context, cmd reminderusecases.CreateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error)
	updateFn func(ctx context.Context, cmd reminderusecases.UpdateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error)
}

func (m *mockReminderTypeService) Create(ctx context.Context, cmd reminderusecases.CreateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, cmd)
	}
	return nil, nil
}

func (m *mockReminderTypeService) Update(ctx context.Context, cmd reminderusecases.UpdateReminderTypeCommand) (*reminderdto.ReminderTypeResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, cmd)
	}
	return nil, nil
}

func (m *mockReminderTypeService) Get(ctx context.Context, id uint) (*reminderdto.ReminderTypeResponse, error) {
	return nil, nil
}

func (m *mockReminderTypeService) List(ctx context.Context) ([]*reminderdto.ReminderTypeResponse, error) {
	return []*reminderdto.ReminderTypeResponse{}, nil
}

func (m *mockReminderTypeService) Delete(ctx context.Context, id uint) error {
	return nil
}

type mockRecurringService struct {
	createFn func(ctx context.Context, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockRecurringService) Create(ctx context.Context, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, cmd)
	}
	return nil, nil
}

func (m *mockRecurringService) Update(ctx context.Context, id uint, cmd reminderusecases.RecurringCommand) (*reminderdto.RecurringResponse, error) {
	return nil, nil
}

func (m *mockRecurringService) Get(ctx context.Context, id uint) (*reminderdto.RecurringResponse, error) {
	return nil, nil
}

func (m *mockRecurringService) List(ctx context.Context) ([]*reminderdto.RecurringResponse, error) {
	return []*reminderdto.RecurringResponse{}, nil
}

func (m *mockRecurringService) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
