package http

import (
	"time"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/domain/jobrun"
	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	employeeRepo     *repository.EmployeeRepository
	reminderTypeRepo reminder.ReminderTypeRepository
	reminderRepo     reminder.ReminderRepository
	dispatchLogRepo  reminder.DispatchLogRepository
	recurringRepo    reminder.RecurringDefinitionRepository
	jobRunRepo       jobrun.Repository
}

// Compile-time check: the employee repository serves both the CRUD use case
// and the reminder use cases' narrower reader.
var _ employee.Repository = (*repository.EmployeeRepository)(nil)

// newRepositories creates all repository instances from the database connection.
// claimTTL is how long a pending dispatch claim survives an interrupted run.
func newRepositories(db *gorm.DB, claimTTL time.Duration) *repositories {
	return &repositories{
		employeeRepo:     repository.NewEmployeeRepository(db),
		reminderTypeRepo: repository.NewReminderTypeRepository(db),
		reminderRepo:     repository.NewReminderRepository(db),
		dispatchLogRepo:  repository.NewDispatchLogRepository(db).WithClaimTTL(claimTTL),
		recurringRepo:    repository.NewRecurringDefinitionRepository(db),
		jobRunRepo:       repository.NewJobRunRepository(db),
	}
}
