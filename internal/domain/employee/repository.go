package employee

import "context"

// EmployeeRepository defines data access methods for employee details.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id string) error
}
