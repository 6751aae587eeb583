package timesheet

import (
	"context"
	"time"
)

// TimesheetService derives the dense calendar view the frontend renders:
// one entry per day, status resolved, edit eligibility annotated for the
// calling user.
type TimesheetService interface {
	MonthlyTimesheet(ctx context.Context, employeeID string, month, year int) ([]Entry, error)
	RangeTimesheet(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error)
}
