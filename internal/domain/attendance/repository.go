package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific calendar day; returns nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// SetLogoutTime sets the logout time on the record matching
	// (employeeID, workingDate).
	SetLogoutTime(ctx context.Context, employeeID string, workingDate time.Time, logoutTime string) error

	// ListByEmployeeAndRange retrieves one employee's records inside an
	// inclusive date range, ordered by working date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListByRange retrieves all employees' records inside an inclusive date
	// range, joined with the employee name, ordered by employee then date.
	ListByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)

	// MarkNotUpdated flags records before the cutoff that have a login but
	// no logout; returns how many rows were touched.
	MarkNotUpdated(ctx context.Context, cutoff time.Time) (int64, error)
}
