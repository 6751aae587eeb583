package attendance

import (
	"github.com/tracklab/timesheet-backend-go/internal/pkg/validator"
)

// The JSON shapes below are the contract the calendar frontend already
// speaks (camelCase field names), so they intentionally differ from the
// snake_case used elsewhere in this codebase.

var validLocations = []string{LocationOffice, LocationWorkFromHome, LocationClientPlace}

var validStatusTokens = []string{
	"FullDay", "HalfDay", "Leave", "Absent", "Pending",
	"NotUpdated", "Blocked", "Holiday", "Weekend",
}

type CreateRequest struct {
	EmployeeID  string   `json:"employeeId"`
	WorkingDate string   `json:"workingDate"` // YYYY-MM-DD
	LoginTime   *string  `json:"loginTime,omitempty"`
	LogoutTime  *string  `json:"logoutTime,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FirstHalf   *string  `json:"firstHalf,omitempty"`
	SecondHalf  *string  `json:"secondHalf,omitempty"`
	TotalHours  *float64 `json:"totalHours,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, valid := validator.IsValidDate(r.WorkingDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "workingDate",
			Message: "workingDate must be in YYYY-MM-DD format",
		})
	}

	if r.LoginTime != nil && *r.LoginTime != "" && !validator.IsValidClock(*r.LoginTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "loginTime",
			Message: "loginTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if r.LogoutTime != nil && *r.LogoutTime != "" && !validator.IsValidClock(*r.LogoutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "logoutTime",
			Message: "logoutTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if r.Location != nil && *r.Location != "" && !validator.IsInSlice(*r.Location, validLocations) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: Office, WorkFromHome, ClientPlace",
		})
	}

	if r.Status != nil && *r.Status != "" && !validator.IsInSlice(*r.Status, validStatusTokens) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognised attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID          string   `json:"-"`
	LoginTime   *string  `json:"loginTime,omitempty"`
	LogoutTime  *string  `json:"logoutTime,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FirstHalf   *string  `json:"firstHalf,omitempty"`
	SecondHalf  *string  `json:"secondHalf,omitempty"`
	TotalHours  *float64 `json:"totalHours,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LoginTime != nil && *r.LoginTime != "" && !validator.IsValidClock(*r.LoginTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "loginTime",
			Message: "loginTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if r.LogoutTime != nil && *r.LogoutTime != "" && !validator.IsValidClock(*r.LogoutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "logoutTime",
			Message: "logoutTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if r.Location != nil && *r.Location != "" && !validator.IsInSlice(*r.Location, validLocations) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must be one of: Office, WorkFromHome, ClientPlace",
		})
	}

	if r.Status != nil && *r.Status != "" && !validator.IsInSlice(*r.Status, validStatusTokens) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a recognised attendance status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LogoutRequest sets the logout time on an existing record by working date.
type LogoutRequest struct {
	WorkingDate string `json:"workingDate"` // YYYY-MM-DD
	LogoutTime  string `json:"logoutTime"`
}

func (r *LogoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.WorkingDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "workingDate",
			Message: "workingDate must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClock(r.LogoutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "logoutTime",
			Message: "logoutTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkEntry is one element of the bulk upsert payload. Entries carry their
// own working date; the employee comes from the URL.
type BulkEntry struct {
	WorkingDate string   `json:"workingDate"` // YYYY-MM-DD
	LoginTime   *string  `json:"loginTime,omitempty"`
	LogoutTime  *string  `json:"logoutTime,omitempty"`
	Location    *string  `json:"location,omitempty"`
	FirstHalf   *string  `json:"firstHalf,omitempty"`
	SecondHalf  *string  `json:"secondHalf,omitempty"`
	TotalHours  *float64 `json:"totalHours,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (r *BulkEntry) Validate() error {
	var errs validator.ValidationErrors

	if _, valid := validator.IsValidDate(r.WorkingDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "workingDate",
			Message: "workingDate must be in YYYY-MM-DD format",
		})
	}

	if r.LoginTime != nil && *r.LoginTime != "" && !validator.IsValidClock(*r.LoginTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "loginTime",
			Message: "loginTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if r.LogoutTime != nil && *r.LogoutTime != "" && !validator.IsValidClock(*r.LogoutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "logoutTime",
			Message: "logoutTime must be HH:MM or hh:mm AM/PM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BulkSaveResult reports a bulk upsert, including the dates of entries that
// failed. A partial failure still saves the remaining entries.
type BulkSaveResult struct {
	SavedCount  int      `json:"savedCount"`
	FailedDates []string `json:"failedDates,omitempty"`
	Message     string   `json:"message"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employeeId"`
	EmployeeName *string  `json:"employeeName,omitempty"`
	WorkingDate  string   `json:"workingDate"`
	LoginTime    *string  `json:"loginTime,omitempty"`
	LogoutTime   *string  `json:"logoutTime,omitempty"`
	Location     *string  `json:"location,omitempty"`
	FirstHalf    *string  `json:"firstHalf,omitempty"`
	SecondHalf   *string  `json:"secondHalf,omitempty"`
	TotalHours   *float64 `json:"totalHours,omitempty"`
	Status       string   `json:"status,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}
