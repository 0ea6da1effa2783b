package employee

import "context"

// ListFilter narrows employee listings.
type ListFilter struct {
	Page       int
	PageSize   int
	Department string
	Search     string
}

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetByIDs(ctx context.Context, ids []uint) (map[uint]*Employee, error)
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Employee, int64, error)
	// ListAll returns every employee, ordered by id. Used by recurring spawns.
	ListAll(ctx context.Context) ([]*Employee, error)
}
