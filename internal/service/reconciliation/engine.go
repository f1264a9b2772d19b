package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
)

// Engine turns a materialized snapshot into per-day classifications and
// monthly rollups. It is pure: no clock reads, no storage access, no state
// carried between calls.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// dayInput couples a calendar day with the clock event chosen for it, nil
// when the employee has no record that day.
type dayInput struct {
	date  time.Time
	event *attendance.ClockEvent
}

// Reconcile classifies every date in the inclusive [from, to] range for one
// employee. now serves as the provisional end of an open session; it is used
// for the in-progress overtime figure only and never persisted.
//
// The running late counter is the only carried state. It starts at zero and
// resets whenever the fold crosses into a new calendar month.
func (e *Engine) Reconcile(snap reconciliation.Snapshot, employeeID string, from, to, now time.Time) []reconciliation.DayRecord {
	shifts := NewShiftResolver(snap.Shifts)
	cal := NewCalendarResolver(snap.Overrides)
	leaves := NewLeaveResolver(snap.Leaves)

	days := buildDays(snap.Events, employeeID, from, to)

	records := make([]reconciliation.DayRecord, 0, len(days))
	lateCount := 0
	var currentYear int
	var currentMonth time.Month
	for i, day := range days {
		if i == 0 || day.date.Year() != currentYear || day.date.Month() != currentMonth {
			lateCount = 0
			currentYear, currentMonth = day.date.Year(), day.date.Month()
		}

		status := classifyDay(day, employeeID, cal, leaves, &lateCount)

		shiftSeconds, shiftKnown := shifts.DurationSeconds(employeeID, day.date)

		records = append(records, reconciliation.DayRecord{
			Date:             day.date,
			EmployeeID:       employeeID,
			Status:           status,
			DeductionPct:     deductionFor(status),
			OvertimeSeconds:  overtimeSeconds(day.event, shiftSeconds, shiftKnown, now),
			RunningLateCount: lateCount,
		})
	}

	return records
}

// buildDays groups the employee's events by calendar day and keeps only the
// first chronological record per date, then lays them out over the full
// requested range so every date produces exactly one input.
func buildDays(events []attendance.ClockEvent, employeeID string, from, to time.Time) []dayInput {
	first, last := truncateDay(from), truncateDay(to)

	byDate := make(map[string]attendance.ClockEvent)
	for _, ev := range events {
		if ev.EmployeeID != employeeID {
			continue
		}
		day := truncateDay(ev.Date)
		if day.Before(first) || day.After(last) {
			continue
		}

		key := dateKey(day)
		current, ok := byDate[key]
		if !ok || clocksInBefore(ev, current) {
			byDate[key] = ev
		}
	}

	var days []dayInput
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if ev, ok := byDate[dateKey(d)]; ok {
			event := ev
			days = append(days, dayInput{date: d, event: &event})
		} else {
			days = append(days, dayInput{date: d, event: nil})
		}
	}
	return days
}

// clocksInBefore orders events within one day; events missing a clock-in
// sort last so they never shadow a real record.
func clocksInBefore(a, b attendance.ClockEvent) bool {
	if a.ClockIn == nil {
		return false
	}
	if b.ClockIn == nil {
		return true
	}
	return a.ClockIn.Before(*b.ClockIn)
}

// classifyDay assigns the day's terminal status. A present clock-in decides
// the outcome regardless of the calendar; only a day with no record at all
// falls through to the off/leave/absent rules.
func classifyDay(day dayInput, employeeID string, cal *CalendarResolver, leaves *LeaveResolver, lateCount *int) reconciliation.DayStatus {
	if day.event == nil || day.event.ClockIn == nil {
		switch {
		case !cal.IsWorkingDay(day.date):
			return reconciliation.StatusOff
		case leaves.IsOnApprovedLeave(employeeID, day.date):
			return reconciliation.StatusLeave
		default:
			return reconciliation.StatusAbsent
		}
	}

	if !day.event.Late {
		return reconciliation.StatusOnTime
	}

	*lateCount++
	return classifyLate(*lateCount)
}

// classifyLate maps the running monthly late count to a label. The label
// stays FullDay for every count past four.
func classifyLate(count int) reconciliation.DayStatus {
	switch {
	case count <= 3:
		return reconciliation.StatusTardy
	case count == 4:
		return reconciliation.StatusHalfDay
	default:
		return reconciliation.StatusFullDay
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
