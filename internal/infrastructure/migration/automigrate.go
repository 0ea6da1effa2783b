package migration

import (
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EmployeeModel{},
		&models.ReminderTypeModel{},
		&models.ReminderModel{},
		&models.ReminderCompletionModel{},
		&models.DispatchLogModel{},
		&models.RecurringDefinitionModel{},
		&models.JobRunModel{},
	}
}
