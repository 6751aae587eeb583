package manager

import "context"

// MappingRepository defines data access methods for manager mappings.
type MappingRepository interface {
	Create(ctx context.Context, m Mapping) (Mapping, error)
	ListByManager(ctx context.Context, managerID string) ([]Mapping, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Mapping, error)
	Exists(ctx context.Context, managerID, employeeID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
