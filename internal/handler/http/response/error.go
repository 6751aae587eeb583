package response

import (
	"errors"
	"net/http"

	"github.com/tracklab/timesheet-backend-go/internal/domain/attendance"
	"github.com/tracklab/timesheet-backend-go/internal/domain/auth"
	"github.com/tracklab/timesheet-backend-go/internal/domain/blocker"
	"github.com/tracklab/timesheet-backend-go/internal/domain/employee"
	"github.com/tracklab/timesheet-backend-go/internal/domain/holiday"
	"github.com/tracklab/timesheet-backend-go/internal/domain/manager"
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already saved for this date")
	case errors.Is(err, attendance.ErrDateNotEditable):
		Forbidden(w, "This date can no longer be edited")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to modify this employee's attendance")

	// Blocker domain errors
	case errors.Is(err, blocker.ErrBlockerNotFound):
		NotFound(w, "Blocker not found")
	case errors.Is(err, blocker.ErrInvalidRange):
		BadRequest(w, "Blocker range is invalid", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "Holiday already exists for this date")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Manager mapping errors
	case errors.Is(err, manager.ErrMappingNotFound):
		NotFound(w, "Manager mapping not found")
	case errors.Is(err, manager.ErrMappingExists):
		Conflict(w, "Manager mapping already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
