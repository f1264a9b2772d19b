package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access for leave records.
type LeaveRepository interface {
	// Create inserts a new leave record (initially pending).
	Create(ctx context.Context, record Record) (Record, error)

	// UpdateStatus sets a record's approval status.
	UpdateStatus(ctx context.Context, id string, status string) (Record, error)

	// List retrieves leave records with optional filters.
	List(ctx context.Context, filter LeaveFilter) ([]Record, error)

	// ListOverlapping loads records whose span intersects the inclusive
	// date window, regardless of status. An empty employeeID loads all
	// employees.
	ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
