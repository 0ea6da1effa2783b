package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reminderly/reminderly/internal/application/employee/dto"
	"github.com/reminderly/reminderly/internal/domain/employee"
	"github.com/reminderly/reminderly/internal/shared/biztime"
	"github.com/reminderly/reminderly/internal/shared/constants"
	apperrors "github.com/reminderly/reminderly/internal/shared/errors"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

type EmployeeCommand struct {
	EmployeeID      string
	Name            string
	Email           string
	Position        string
	Department      string
	ManagerEmail    string
	HREmail         string
	Birthday        string
	WorkAnniversary string
}

type ListEmployeesQuery struct {
	Page       int
	PageSize   int
	Department string
	Search     string
}

type ManageEmployeesUseCase struct {
	repo   employee.Repository
	logger logger.Interface
}

func NewManageEmployeesUseCase(repo employee.Repository, logger logger.Interface) *ManageEmployeesUseCase {
	return &ManageEmployeesUseCase{repo: repo, logger: logger}
}

func (uc *ManageEmployeesUseCase) Create(ctx context.Context, cmd EmployeeCommand) (*dto.EmployeeResponse, error) {
	uc.logger.Infow("executing create employee use case", "employee_id", cmd.EmployeeID)

	emp, err := employee.NewEmployee(cmd.EmployeeID, cmd.Name, cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := applyDetails(emp, cmd); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByEmployeeNumber(ctx, emp.EmployeeNumber())
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("failed to check employee number: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("employee_id already exists")
	}

	if err := uc.repo.Create(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrEmployeeNumberExists) {
			return nil, apperrors.NewConflictError("employee_id already exists")
		}
		uc.logger.Errorw("failed to persist employee", "error", err)
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	uc.logger.Infow("employee created successfully", "id", emp.ID())
	return dto.ToEmployeeResponse(emp), nil
}

// Update replaces every field except the employee number.
func (uc *ManageEmployeesUseCase) Update(ctx context.Context, id uint, cmd EmployeeCommand) (*dto.EmployeeResponse, error) {
	emp, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyDetails(emp, cmd); err != nil {
		return nil, err
	}
	if err := emp.UpdateProfile(cmd.Name, cmd.Email, cmd.Position, cmd.Department); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	uc.logger.Infow("employee updated", "id", emp.ID())
	return dto.ToEmployeeResponse(emp), nil
}

func (uc *ManageEmployeesUseCase) Get(ctx context.Context, id uint) (*dto.EmployeeResponse, error) {
	emp, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToEmployeeResponse(emp), nil
}

func (uc *ManageEmployeesUseCase) List(ctx context.Context, q ListEmployeesQuery) ([]*dto.EmployeeResponse, int64, error) {
	filter := employee.ListFilter{Page: q.Page, PageSize: q.PageSize, Department: q.Department, Search: q.Search}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}

	emps, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list employees", "error", err)
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return dto.ToEmployeeResponses(emps), total, nil
}

func (uc *ManageEmployeesUseCase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return apperrors.NewNotFoundError("employee not found")
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	uc.logger.Infow("employee deleted", "id", id)
	return nil
}

func (uc *ManageEmployeesUseCase) load(ctx context.Context, id uint) (*employee.Employee, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func applyDetails(emp *employee.Employee, cmd EmployeeCommand) error {
	if err := emp.UpdateContacts(cmd.ManagerEmail, cmd.HREmail); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	birthday, err := optionalDate("birthday", cmd.Birthday)
	if err != nil {
		return err
	}
	anniversary, err := optionalDate("work_anniversary", cmd.WorkAnniversary)
	if err != nil {
		return err
	}
	emp.SetAnchorDates(birthday, anniversary)

	if cmd.Position != "" || cmd.Department != "" {
		if err := emp.UpdateProfile(emp.Name(), emp.Email(), cmd.Position, cmd.Department); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
	}
	return nil
}

func optionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := biztime.ParseDate(value)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid %s, expected YYYY-MM-DD", field))
	}
	return &d, nil
}
