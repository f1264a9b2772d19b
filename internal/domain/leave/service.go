package leave

import (
	"context"
)

// LeaveService manages leave records.
type LeaveService interface {
	// CreateLeave files a new leave span. New records start out pending.
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// UpdateStatus moves a record between approved, pending, and rejected.
	UpdateStatus(ctx context.Context, req UpdateLeaveStatusRequest) (LeaveResponse, error)

	// ListLeaves retrieves leave records matching the filter.
	ListLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
}
