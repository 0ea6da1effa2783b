package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/mappers"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	db "github.com/reminderly/reminderly/internal/shared/db"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

const completedCondition = "EXISTS (SELECT 1 FROM reminder_completions c WHERE c.reminder_id = reminders.id)"

type ReminderRepository struct {
	db     *gorm.DB
	mapper mappers.ReminderMapper
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{
		db:     db,
		mapper: mappers.NewReminderMapper(),
	}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) error {
	model := r.mapper.ReminderToModel(rem)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit("Completion").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	return rem.SetID(model.ID)
}

func (r *ReminderRepository) CreateGenerated(ctx context.Context, rem *reminder.Reminder) (bool, error) {
	model := r.mapper.ReminderToModel(rem)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit("Completion").Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create generated reminder: %w", err)
	}

	if err := rem.SetID(model.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReminderRepository) GetByID(ctx context.Context, id uint) (*reminder.Reminder, error) {
	var model models.ReminderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Preload("Completion").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reminder.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return r.mapper.ReminderToDomain(&model)
}

// Delete removes the reminder together with its completion marker and dispatch history.
func (r *ReminderRepository) Update(ctx context.Context, rem *reminder.Reminder) error {
	model := r.mapper.ReminderToModel(rem)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.ReminderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"due_date":   model.DueDate,
			"notes":      model.Notes,
			"priority":   model.Priority,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return reminder.ErrDuplicateSpawn
		}
		return fmt.Errorf("failed to update reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reminder_id = ?", id).Delete(&models.DispatchLogModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete dispatch logs: %w", err)
		}
		if err := tx.Where("reminder_id = ?", id).Delete(&models.ReminderCompletionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete completion: %w", err)
		}

		result := tx.Delete(&models.ReminderModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete reminder: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return reminder.ErrReminderNotFound
		}
		return nil
	})
}

func (r *ReminderRepository) List(ctx context.Context, filter reminder.ListFilter) ([]*reminder.Reminder, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ReminderModel{}).
		Scopes(db.DateBetween("due_date", filter.DueFrom, filter.DueTo))

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.ReminderTypeID != nil {
		query = query.Where("reminder_type_id = ?", *filter.ReminderTypeID)
	}
	if filter.Completed != nil {
		if *filter.Completed {
			query = query.Where(completedCondition)
		} else {
			query = query.Where("NOT " + completedCondition)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reminders: %w", err)
	}

	var rows []models.ReminderModel
	if err := query.
		Preload("Completion").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("due_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reminders: %w", err)
	}

	list, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ReminderRepository) ListPending(ctx context.Context) ([]*reminder.Reminder, error) {
	var rows []models.ReminderModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("NOT " + completedCondition).
		Order("due_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending reminders: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *ReminderRepository) SaveCompletion(ctx context.Context, rem *reminder.Reminder) error {
	model := r.mapper.CompletionToModel(rem)
	if model == nil {
		return fmt.Errorf("reminder %d has no completion to save", rem.ID())
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return reminder.ErrAlreadyCompleted
		}
		return fmt.Errorf("failed to save completion: %w", err)
	}
	return nil
}

func (r *ReminderRepository) CountByReminderType(ctx context.Context, reminderTypeID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ReminderModel{}).
		Where("reminder_type_id = ?", reminderTypeID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reminders by type: %w", err)
	}
	return count, nil
}

func (r *ReminderRepository) toDomainList(rows []models.ReminderModel) ([]*reminder.Reminder, error) {
	list := make([]*reminder.Reminder, 0, len(rows))
	for i := range rows {
		rem, err := r.mapper.ReminderToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map reminder %d: %w", rows[i].ID, err)
		}
		list = append(list, rem)
	}
	return list, nil
}
