package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, int64, error)
	GetActiveByIDs(ctx context.Context, ids []string) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error
	Delete(ctx context.Context, id string) error
}
