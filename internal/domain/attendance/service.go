package attendance

import "context"

// AttendanceService is the business surface behind the
// /api/employee-attendance endpoints.
type AttendanceService interface {
	// MonthlyDetails returns one employee's sparse records for a month.
	MonthlyDetails(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)

	// MonthlyDetailsAll returns every employee's records for a month.
	MonthlyDetailsAll(ctx context.Context, month, year int) ([]AttendanceResponse, error)

	// Create creates a single record.
	Create(ctx context.Context, req CreateRequest) (AttendanceResponse, error)

	// Update updates a single record by id.
	Update(ctx context.Context, req UpdateRequest) (AttendanceResponse, error)

	// SetLogoutTime sets the logout time by (employee, working date).
	SetLogoutTime(ctx context.Context, employeeID string, req LogoutRequest) error

	// BulkUpsert saves a batch of entries for one employee. Individual
	// failures do not abort the batch; the result reports failed dates.
	BulkUpsert(ctx context.Context, employeeID string, entries []BulkEntry) (BulkSaveResult, error)
}
