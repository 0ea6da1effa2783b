package usecases

import (
	"context"

	"github.com/reminderly/reminderly/internal/domain/employee"
)

type mockEmployeeRepository struct {
	CreateFunc              func(ctx context.Context, e *employee.Employee) error
	GetByIDFunc             func(ctx context.Context, id uint) (*employee.Employee, error)
	GetByEmployeeNumberFunc func(ctx context.Context, number string) (*employee.Employee, error)
	UpdateFunc              func(ctx context.Context, e *employee.Employee) error
	DeleteFunc              func(ctx context.Context, id uint) error
	ListFunc                func(ctx context.Context, filter employee.ListFilter) ([]*employee.Employee, int64, error)
}

func (m *mockEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return e.SetID(1)
}

func (m *mockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employee.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*employee.Employee, error) {
	return map[uint]*employee.Employee{}, nil
}

func (m *mockEmployeeRepository) GetByEmployeeNumber(ctx context.Context, number string) (*employee.Employee, error) {
	if m.GetByEmployeeNumberFunc != nil {
		return m.GetByEmployeeNumberFunc(ctx, number)
	}
	return nil, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEmployeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]*employee.Employee, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockEmployeeRepository) ListAll(ctx context.Context) ([]*employee.Employee, error) {
	return nil, nil
}
