package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/mappers"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	db "github.com/reminderly/reminderly/internal/shared/db"
)

type RecurringDefinitionRepository struct {
	db     *gorm.DB
	mapper mappers.ReminderMapper
}

func NewRecurringDefinitionRepository(db *gorm.DB) *RecurringDefinitionRepository {
	return &RecurringDefinitionRepository{
		db:     db,
		mapper: mappers.NewReminderMapper(),
	}
}

func (r *RecurringDefinitionRepository) Create(ctx context.Context, d *reminder.RecurringDefinition) error {
	model := r.mapper.RecurringToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create recurring reminder: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *RecurringDefinitionRepository) GetByID(ctx context.Context, id uint) (*reminder.RecurringDefinition, error) {
	var model models.RecurringDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reminder.ErrRecurringNotFound
		}
		return nil, fmt.Errorf("failed to get recurring reminder: %w", err)
	}

	return r.mapper.RecurringToDomain(&model)
}

func (r *RecurringDefinitionRepository) Update(ctx context.Context, d *reminder.RecurringDefinition) error {
	model := r.mapper.RecurringToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.RecurringDefinitionModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update recurring reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrRecurringNotFound
	}
	return nil
}

func (r *RecurringDefinitionRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RecurringDefinitionModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurring reminder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrRecurringNotFound
	}
	return nil
}

func (r *RecurringDefinitionRepository) List(ctx context.Context) ([]*reminder.RecurringDefinition, error) {
	var rows []models.RecurringDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("next_due_date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list recurring reminders: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *RecurringDefinitionRepository) ListDue(ctx context.Context, today time.Time) ([]*reminder.RecurringDefinition, error) {
	var rows []models.RecurringDefinitionModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("enabled = ? AND next_due_date <= ?", true, today).
		Order("next_due_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list due recurring reminders: %w", err)
	}
	return r.toDomainList(rows)
}

// AdvanceSchedule is a compare-and-set on next_due_date so two overlapping
// runs cannot both move the same definition forward.
func (r *RecurringDefinitionRepository) AdvanceSchedule(ctx context.Context, d *reminder.RecurringDefinition, previous time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.RecurringDefinitionModel{}).
		Where("id = ? AND next_due_date = ?", d.ID(), previous).
		Updates(map[string]any{
			"next_due_date":     d.NextDueDate(),
			"last_processed_at": d.LastProcessedAt(),
			"updated_at":        d.UpdatedAt(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to advance recurring reminder %d: %w", d.ID(), result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *RecurringDefinitionRepository) toDomainList(rows []models.RecurringDefinitionModel) ([]*reminder.RecurringDefinition, error) {
	list := make([]*reminder.RecurringDefinition, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.RecurringToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map recurring reminder %d: %w", rows[i].ID, err)
		}
		list = append(list, d)
	}
	return list, nil
}
