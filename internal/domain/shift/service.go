package shift

import (
	"context"
)

// ShiftService manages shift window assignments.
type ShiftService interface {
	// CreateAssignment records a new shift window effective from its
	// assigned date onward.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)

	// ListAssignments returns an employee's assignment history, oldest first.
	ListAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
}
