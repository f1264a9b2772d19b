package leave

import "time"

const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

// Record is a leave span. Only approved records contribute to
// reconciliation; the span covers every date from StartDate to EndDate
// inclusive.
type Record struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
