package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
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
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "An open session already exists for this employee")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open session exists for this employee")

	// Shift domain errors
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRecordNotFound):
		NotFound(w, "Leave record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
