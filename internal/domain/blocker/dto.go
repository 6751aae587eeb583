package blocker

import (
	"github.com/tracklab/timesheet-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	EmployeeID  string `json:"employeeId"`
	BlockedFrom string `json:"blockedFrom"` // YYYY-MM-DD
	BlockedTo   string `json:"blockedTo"`   // YYYY-MM-DD
	Reason      string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.BlockedFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "blockedFrom",
			Message: "blockedFrom must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.BlockedTo)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "blockedTo",
			Message: "blockedTo must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "blockedFrom",
			Message: "blockedFrom must not be after blockedTo",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BlockerResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	BlockedFrom string `json:"blockedFrom"`
	BlockedTo   string `json:"blockedTo"`
	Reason      string `json:"reason"`
	BlockedBy   string `json:"blockedBy"`
	CreatedAt   string `json:"createdAt"`
}
