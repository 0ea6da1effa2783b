package mappers

import (
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/infrastructure/persistence/models"
)

// EmployeeMapper handles the conversion between Employee entities and persistence models.
type EmployeeMapper interface {
	ToModel(e *employee.Employee) *models.EmployeeModel
	ToDomain(model *models.EmployeeModel) (*employee.Employee, error)
}

type EmployeeMapperImpl struct{}

func NewEmployeeMapper() EmployeeMapper {
	return &EmployeeMapperImpl{}
}

func (m *EmployeeMapperImpl) ToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:              e.ID(),
		EmployeeNumber:  e.EmployeeNumber(),
		Name:            e.Name(),
		Email:           e.Email(),
		Position:        e.Position(),
		Department:      e.Department(),
		ManagerEmail:    e.ManagerEmail(),
		HREmail:         e.HREmail(),
		Birthday:        e.Birthday(),
		WorkAnniversary: e.WorkAnniversary(),
		CreatedAt:       e.CreatedAt(),
		UpdatedAt:       e.UpdatedAt(),
	}
}

func (m *EmployeeMapperImpl) ToDomain(model *models.EmployeeModel) (*employee.Employee, error) {
	if model == nil {
		return nil, nil
	}
	return employee.ReconstructEmployee(
		model.ID,
		model.EmployeeNumber,
		model.Name,
		model.Email,
		model.Position,
		model.Department,
		model.ManagerEmail,
		model.HREmail,
		model.Birthday,
		model.WorkAnniversary,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
