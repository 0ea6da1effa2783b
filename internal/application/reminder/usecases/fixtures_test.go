package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

var (
	testToday = biztime.Date(2024, time.March, 1)
	testClock = biztime.FixedClock{At: testToday.Add(8 * time.Hour)}
	testNop   = logger.NewNopLogger()
)

func newTestEmployee(t *testing.T, id uint, managerEmail, hrEmail string) *employee.Employee {
	t.Helper()
	emp, err := employee.ReconstructEmployee(
		id, fmt.Sprintf("E-%03d", id), "Ada Lovelace", "ada@example.com",
		"Engineer", "R&D", managerEmail, hrEmail, nil, nil,
		testToday, testToday,
	)
	require.NoError(t, err)
	return emp
}

func newTestPolicy(t *testing.T, employee, manager, hr bool, additional ...string) *reminder.RecipientPolicy {
	t.Helper()
	p, err := reminder.NewRecipientPolicy(employee, manager, hr, additional)
	require.NoError(t, err)
	return p
}

func newTestTemplate(t *testing.T) *reminder.EmailTemplate {
	t.Helper()
	tpl, err := reminder.NewEmailTemplate(
		"{type} for {employee} {days}",
		"Dear {recipient}, {employeeName} has {type} on {date}.",
		vo.TemplateFormatHTML,
	)
	require.NoError(t, err)
	return tpl
}

func newTestType(t *testing.T, id uint, name string, intervals []int, policy *reminder.RecipientPolicy) *reminder.ReminderType {
	t.Helper()
	rt, err := reminder.ReconstructReminderType(
		id, name, "", true, "", intervals, newTestTemplate(t), policy, testToday, testToday,
	)
	require.NoError(t, err)
	return rt
}

func newTestReminder(t *testing.T, id, employeeID, typeID uint, due time.Time) *reminder.Reminder {
	t.Helper()
	rem, err := reminder.ReconstructReminder(
		id, employeeID, typeID, due, "", vo.PriorityMedium, nil, false, nil, testToday, testToday,
	)
	require.NoError(t, err)
	return rem
}

type dispatchFixture struct {
	reminders *mockReminderRepository
	types     *mockReminderTypeRepository
	logs      *mockDispatchLogRepository
	employees *mockEmployeeReader
	sender    *mockSender
	metrics   *mockMetrics
}

func newDispatchFixture() *dispatchFixture {
	return &dispatchFixture{
		reminders: newMockReminderRepository(),
		types:     newMockReminderTypeRepository(),
		logs:      newMockDispatchLogRepository(),
		employees: newMockEmployeeReader(),
		sender:    newMockSender(),
		metrics:   newMockMetrics(),
	}
}

func (f *dispatchFixture) dispatchUseCase() *DispatchRemindersUseCase {
	return NewDispatchRemindersUseCase(
		f.reminders, f.types, f.logs, f.employees, f.sender, plainFormatter{},
		DispatchSettings{DateFormat: "2006-01-02", SendTimeout: time.Second},
		testClock, f.metrics, testNop,
	)
}

func (f *dispatchFixture) sendNowUseCase() *SendReminderNowUseCase {
	return NewSendReminderNowUseCase(
		f.reminders, f.types, f.logs, f.employees, f.sender, plainFormatter{},
		DispatchSettings{DateFormat: "2006-01-02", SendTimeout: time.Second},
		testClock, testNop,
	)
}

func newTestReminderForType(t *testing.T, typeID uint) *reminder.Reminder {
	t.Helper()
	rem, err := reminder.NewReminder(1, typeID, testToday, "", vo.PriorityMedium)
	require.NoError(t, err)
	return rem
}
