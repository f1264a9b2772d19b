package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
)

// Summarize folds one employee's calendar month into a rollup. Working days
// come from the calendar and leave resolvers alone, so an employee with zero
// clock events still yields a complete, well-formed summary.
func (e *Engine) Summarize(snap reconciliation.Snapshot, employeeID string, month time.Time, now time.Time) reconciliation.MonthlySummary {
	from, to := monthBounds(month)
	records := e.Reconcile(snap, employeeID, from, to, now)

	cal := NewCalendarResolver(snap.Overrides)
	leaves := NewLeaveResolver(snap.Leaves)

	summary := reconciliation.MonthlySummary{
		EmployeeID: employeeID,
		Month:      month.Format("2006-01"),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if cal.IsWorkingDay(d) && !leaves.IsOnApprovedLeave(employeeID, d) {
			summary.TotalWorkingDays++
		}
	}

	for _, rec := range records {
		summary.TotalUnpaidDays += float64(rec.DeductionPct) / 100
		if rec.OvertimeSeconds != nil {
			// Unknown overtime contributes zero, the day itself is
			// not excluded.
			summary.TotalOvertimeSeconds += *rec.OvertimeSeconds
		}
	}

	return summary
}

// monthBounds returns the first and last day of the month containing t.
func monthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
