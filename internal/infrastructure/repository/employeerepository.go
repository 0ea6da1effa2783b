package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/mappers"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
	db "github.com/reminderly/reminderly/internal/shared/db"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
)

type EmployeeRepository struct {
	db     *gorm.DB
	mapper mappers.EmployeeMapper
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		mapper: mappers.NewEmployeeMapper(),
	}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return employee.ErrEmployeeNumberExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*employee.Employee, error) {
	result := make(map[uint]*employee.Employee, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get employees by ids: %w", err)
	}

	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[e.ID()] = e
	}
	return result, nil
}

func (r *EmployeeRepository) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
	var model models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("employee_id = ?", employeeNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared dates and empty strings are written too.
	result := tx.Model(&models.EmployeeModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return employee.ErrEmployeeNumberExists
		}
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]*employee.Employee, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EmployeeModel{})

	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(employee_id) LIKE ?",
			pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	var rows []models.EmployeeModel
	if err := query.
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	list, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *EmployeeRepository) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	var rows []models.EmployeeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list all employees: %w", err)
	}
	return r.toDomainList(rows)
}

func (r *EmployeeRepository) toDomainList(rows []models.EmployeeModel) ([]*employee.Employee, error) {
	list := make([]*employee.Employee, 0, len(rows))
	for i := range rows {
		e, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map employee %d: %w", rows[i].ID, err)
		}
		list = append(list, e)
	}
	return list, nil
}
