package attendance

import (
	"context"
)

// AttendanceService defines business logic for the clock event write path.
type AttendanceService interface {
	// ClockIn opens a session for the employee, stamping the lateness flag
	// against the effective shift. Fails when a session is already open.
	ClockIn(ctx context.Context, req ClockInRequest) (ClockEventResponse, error)

	// ClockOut closes the employee's most recent open session.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockEventResponse, error)

	// ListEvents retrieves clock events with filters and pagination.
	ListEvents(ctx context.Context, filter ClockEventFilter) (ListClockEventsResponse, error)
}
