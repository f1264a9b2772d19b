package reconciliation

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
)

// ShiftResolver answers "which shift window applies to this employee on this
// date" over a loaded assignment history.
type ShiftResolver struct {
	byEmployee map[string][]shift.Assignment
}

func NewShiftResolver(assignments []shift.Assignment) *ShiftResolver {
	r := &ShiftResolver{byEmployee: make(map[string][]shift.Assignment)}
	for _, a := range assignments {
		r.byEmployee[a.EmployeeID] = append(r.byEmployee[a.EmployeeID], a)
	}
	for id := range r.byEmployee {
		history := r.byEmployee[id]
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].AssignedDate.Before(history[j].AssignedDate)
		})
	}
	return r
}

// Resolve returns the effective assignment for the date: the latest row
// assigned on or before it. When every known row postdates the date, the
// most recent known assignment is used as fallback.
func (r *ShiftResolver) Resolve(employeeID string, date time.Time) (shift.Assignment, bool) {
	history := r.byEmployee[employeeID]
	if len(history) == 0 {
		return shift.Assignment{}, false
	}

	day := truncateDay(date)
	var effective shift.Assignment
	found := false
	for _, a := range history {
		if truncateDay(a.AssignedDate).After(day) {
			break
		}
		effective = a
		found = true
	}

	if !found {
		return history[len(history)-1], true
	}
	return effective, true
}

// DurationSeconds resolves the shift length for the employee-date.
// ok=false means unknown duration: no resolvable assignment, a malformed
// time string, or a window that collapses to zero. Unknown propagates as
// "cannot compute overtime" downstream, not as an error.
func (r *ShiftResolver) DurationSeconds(employeeID string, date time.Time) (int64, bool) {
	assignment, ok := r.Resolve(employeeID, date)
	if !ok {
		return 0, false
	}
	return assignment.DurationSeconds()
}
