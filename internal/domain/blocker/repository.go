package blocker

import (
	"context"
	"time"
)

// BlockerRepository defines data access methods for timesheet blockers.
type BlockerRepository interface {
	Create(ctx context.Context, b Blocker) (Blocker, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Blocker, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpiredBefore removes blockers whose range ended before the
	// cutoff; used by the housekeeping cron job.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
