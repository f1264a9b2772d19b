package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
)

// leaveDay is the composite membership key; overlapping approved records
// collapse to the same entry.
type leaveDay struct {
	employeeID string
	date       string
}

// LeaveResolver holds the set of (employee, date) pairs covered by approved
// leave. Built from records of any status; only approved ones contribute.
type LeaveResolver struct {
	covered map[leaveDay]struct{}
}

func NewLeaveResolver(records []leave.Record) *LeaveResolver {
	r := &LeaveResolver{covered: make(map[leaveDay]struct{})}
	for _, rec := range records {
		if rec.Status != leave.StatusApproved {
			continue
		}

		end := truncateDay(rec.EndDate)
		for d := truncateDay(rec.StartDate); !d.After(end); d = d.AddDate(0, 0, 1) {
			r.covered[leaveDay{employeeID: rec.EmployeeID, date: dateKey(d)}] = struct{}{}
		}
	}
	return r
}

func (r *LeaveResolver) IsOnApprovedLeave(employeeID string, date time.Time) bool {
	_, ok := r.covered[leaveDay{employeeID: employeeID, date: dateKey(date)}]
	return ok
}
