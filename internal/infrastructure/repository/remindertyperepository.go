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

type ReminderTypeRepository struct {
	db     *gorm.DB
	mapper mappers.ReminderMapper
}

func NewReminderTypeRepository(db *gorm.DB) *ReminderTypeRepository {
	return &ReminderTypeRepository{
		db:     db,
		mapper: mappers.NewReminderMapper(),
	}
}

func (r *ReminderTypeRepository) Create(ctx context.Context, t *reminder.ReminderType) error {
	model, err := r.mapper.TypeToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return reminder.ErrReminderTypeNameExists
		}
		return fmt.Errorf("failed to create reminder type: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *ReminderTypeRepository) GetByID(ctx context.Context, id uint) (*reminder.ReminderType, error) {
	var model models.ReminderTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reminder.ErrReminderTypeNotFound
		}
		return nil, fmt.Errorf("failed to get reminder type: %w", err)
	}

	return r.mapper.TypeToDomain(&model)
}

func (r *ReminderTypeRepository) GetByName(ctx context.Context, name string) (*reminder.ReminderType, error) {
	var model models.ReminderTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reminder.ErrReminderTypeNotFound
		}
		return nil, fmt.Errorf("failed to get reminder type by name: %w", err)
	}

	return r.mapper.TypeToDomain(&model)
}

func (r *ReminderTypeRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*reminder.ReminderType, error) {
	result := make(map[uint]*reminder.ReminderType, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.ReminderTypeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get reminder types by ids: %w", err)
	}

	for i := range rows {
		rt, err := r.mapper.TypeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[rt.ID()] = rt
	}
	return result, nil
}

func (r *ReminderTypeRepository) Update(ctx context.Context, t *reminder.ReminderType) error {
	model, err := r.mapper.TypeToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	// A removed template or policy must be written back as NULL.
	result := tx.Model(&models.ReminderTypeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return reminder.ErrReminderTypeNameExists
		}
		return fmt.Errorf("failed to update reminder type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrReminderTypeNotFound
	}
	return nil
}

func (r *ReminderTypeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ReminderTypeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reminder type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return reminder.ErrReminderTypeNotFound
	}
	return nil
}

func (r *ReminderTypeRepository) List(ctx context.Context) ([]*reminder.ReminderType, error) {
	var rows []models.ReminderTypeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reminder types: %w", err)
	}

	list := make([]*reminder.ReminderType, 0, len(rows))
	for i := range rows {
		rt, err := r.mapper.TypeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	return list, nil
}
