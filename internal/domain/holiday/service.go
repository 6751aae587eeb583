package holiday

import "context"

// HolidayService manages the global master holiday calendar.
type HolidayService interface {
	Create(ctx context.Context, req CreateRequest) (HolidayResponse, error)
	List(ctx context.Context) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
