package attendance

import (
	"time"
)

// ClockEvent is one clock-in/clock-out pair. ClockOut stays nil while the
// session is open; a session may span midnight.
type ClockEvent struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Late       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the event is an in-progress session.
func (e ClockEvent) Open() bool {
	return e.ClockOut == nil
}
