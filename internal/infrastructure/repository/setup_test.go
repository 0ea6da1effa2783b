package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	vo "github.com/reminderly/reminderly/internal/domain/reminder/valueobjects"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	"github.com/reminderly/reminderly/internal/shared/biztime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection would otherwise open its own empty database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	err = gdb.AutoMigrate(
		&models.EmployeeModel{},
		&models.ReminderTypeModel{},
		&models.ReminderModel{},
		&models.ReminderCompletionModel{},
		&models.DispatchLogModel{},
		&models.RecurringDefinitionModel{},
		&models.JobRunModel{},
	)
	require.NoError(t, err)

	return gdb
}

func date(y int, m time.Month, d int) time.Time {
	return biztime.Date(y, m, d)
}

func seedEmployee(t *testing.T, repo *EmployeeRepository, number, name string) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(number, name, number+"@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), e))
	return e
}

func seedReminderType(t *testing.T, repo *ReminderTypeRepository, name string, intervals []int) *reminder.ReminderType {
	t.Helper()
	rt, err := reminder.NewReminderType(name, "", vo.RecurrenceOneOff, intervals)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), rt))
	return rt
}

func seedReminder(t *testing.T, repo *ReminderRepository, employeeID, typeID uint, due time.Time) *reminder.Reminder {
	t.Helper()
	rem, err := reminder.NewReminder(employeeID, typeID, due, "", vo.PriorityMedium)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), rem))
	return rem
}
