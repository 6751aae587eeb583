package manager

import "context"

// MappingService manages manager-to-employee assignments.
type MappingService interface {
	Create(ctx context.Context, req CreateRequest) (MappingResponse, error)
	ListByManager(ctx context.Context, managerID string) ([]MappingResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]MappingResponse, error)
	Delete(ctx context.Context, id string) error
}
