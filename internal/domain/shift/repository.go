package shift

import (
	"context"
	"time"
)

// AssignmentRepository defines data access for shift assignments.
type AssignmentRepository interface {
	// Create inserts a new assignment row.
	Create(ctx context.Context, assignment Assignment) (Assignment, error)

	// ListByEmployee returns the employee's full assignment history,
	// ascending by assigned date.
	ListByEmployee(ctx context.Context, employeeID string) ([]Assignment, error)

	// ListForWindow loads the assignment history relevant to a reporting
	// window: every row assigned on or before the window end. An empty
	// employeeID loads all employees.
	ListForWindow(ctx context.Context, employeeID string, until time.Time) ([]Assignment, error)
}
