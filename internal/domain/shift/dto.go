package shift

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	EmployeeID   string `json:"employee_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	AssignedDate string `json:"assigned_date"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Persisting a malformed wall clock is allowed upstream of the engine
	// (it degrades to unknown duration), but an empty one is a user error.
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	}
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	}

	if _, ok := validator.IsValidDate(r.AssignedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_date",
			Message: "assigned_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	AssignedDate string `json:"assigned_date"`
}
