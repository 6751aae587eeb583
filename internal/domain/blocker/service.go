package blocker

import "context"

// BlockerService manages admin-authored edit blockers. Blockers are
// created and deleted, never updated: to change a range the admin removes
// the old one and adds a new one.
type BlockerService interface {
	Create(ctx context.Context, req CreateRequest) (BlockerResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]BlockerResponse, error)
	Delete(ctx context.Context, id string) error
}
