package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the master holiday
// calendar.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
