package employee

import "context"

// EmployeeService backs the employee-details CRUD surface.
type EmployeeService interface {
	Create(ctx context.Context, req CreateRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
