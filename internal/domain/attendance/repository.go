package attendance

import (
	"context"
	"time"
)

// ClockEventRepository defines data access for clock events.
type ClockEventRepository interface {
	// Create inserts a new open session. It must fail with
	// ErrAlreadyClockedIn when the employee already has an open session;
	// the check and the insert happen atomically in the store.
	Create(ctx context.Context, event ClockEvent) (ClockEvent, error)

	// CloseOpenSession stamps the clock-out on the employee's most recent
	// open session and returns the closed event. The lookup is system-wide,
	// not scoped to today (a session may span midnight); the read and the
	// write happen in one transaction. Returns ErrNotClockedIn when no
	// session is open.
	CloseOpenSession(ctx context.Context, employeeID string, at time.Time) (ClockEvent, error)

	// List retrieves clock events with filters and pagination.
	List(ctx context.Context, filter ClockEventFilter) ([]ClockEvent, int64, error)

	// ListForWindow loads every event in the inclusive date window.
	// An empty employeeID loads all employees.
	ListForWindow(ctx context.Context, employeeID string, from, to time.Time) ([]ClockEvent, error)
}
