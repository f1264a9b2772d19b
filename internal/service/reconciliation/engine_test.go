package reconciliation

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04", s)
	require.NoError(t, err)
	return v
}

func tsPtr(t *testing.T, s string) *time.Time {
	t.Helper()
	v := ts(t, s)
	return &v
}

func makeEvent(t *testing.T, employeeID, date, clockIn, clockOut string, late bool) attendance.ClockEvent {
	t.Helper()
	ev := attendance.ClockEvent{
		EmployeeID: employeeID,
		Date:       day(t, date),
		ClockIn:    tsPtr(t, clockIn),
		Late:       late,
	}
	if clockOut != "" {
		ev.ClockOut = tsPtr(t, clockOut)
	}
	return ev
}

func nineToFive(t *testing.T, employeeID, assignedDate string) shift.Assignment {
	t.Helper()
	return shift.Assignment{
		EmployeeID:   employeeID,
		StartTime:    "09:00",
		EndTime:      "17:00",
		AssignedDate: day(t, assignedDate),
	}
}

func TestReconcileEscalatingLateness(t *testing.T) {
	// Five consecutive late working days walk the ladder: three tardies,
	// then half day, then full day.
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Shifts: []shift.Assignment{nineToFive(t, "emp-1", "2026-03-01")},
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 09:30", "2026-03-02 17:00", true),
			makeEvent(t, "emp-1", "2026-03-03", "2026-03-03 09:30", "2026-03-03 17:00", true),
			makeEvent(t, "emp-1", "2026-03-04", "2026-03-04 09:30", "2026-03-04 17:00", true),
			makeEvent(t, "emp-1", "2026-03-05", "2026-03-05 09:30", "2026-03-05 17:00", true),
			makeEvent(t, "emp-1", "2026-03-06", "2026-03-06 09:30", "2026-03-06 17:00", true),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-06"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 5)

	wantStatuses := []reconciliation.DayStatus{
		reconciliation.StatusTardy,
		reconciliation.StatusTardy,
		reconciliation.StatusTardy,
		reconciliation.StatusHalfDay,
		reconciliation.StatusFullDay,
	}
	wantDeductions := []int{0, 0, 0, 50, 100}

	totalUnpaid := 0.0
	for i, rec := range records {
		assert.Equal(t, wantStatuses[i], rec.Status, "day %d", i)
		assert.Equal(t, wantDeductions[i], rec.DeductionPct, "day %d", i)
		assert.Equal(t, i+1, rec.RunningLateCount, "day %d", i)
		totalUnpaid += float64(rec.DeductionPct) / 100
	}
	assert.InDelta(t, 1.5, totalUnpaid, 1e-9)
}

func TestReconcileLateCountStaysFullDayPastFive(t *testing.T) {
	engine := NewEngine()

	events := make([]attendance.ClockEvent, 0, 5)
	dates := []string{"2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13"}
	for _, d := range dates {
		events = append(events, makeEvent(t, "emp-1", d, d+" 10:00", d+" 18:00", true))
	}
	// A sixth and seventh late day in the same month.
	events = append(events,
		makeEvent(t, "emp-1", "2026-03-16", "2026-03-16 10:00", "2026-03-16 18:00", true),
		makeEvent(t, "emp-1", "2026-03-17", "2026-03-17 10:00", "2026-03-17 18:00", true),
	)

	snap := reconciliation.Snapshot{Events: events}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-09"), day(t, "2026-03-17"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 9)

	// Days 5 through 7 of lateness (records at index 4, 7, 8; 14th and
	// 15th are a weekend) all stay at full day.
	assert.Equal(t, reconciliation.StatusFullDay, records[4].Status)
	assert.Equal(t, reconciliation.StatusFullDay, records[7].Status)
	assert.Equal(t, reconciliation.StatusFullDay, records[8].Status)
	assert.Equal(t, 7, records[8].RunningLateCount)
}

func TestReconcileLateCountResetsOnMonthChange(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-01-29", "2026-01-29 10:00", "2026-01-29 18:00", true),
			makeEvent(t, "emp-1", "2026-01-30", "2026-01-30 10:00", "2026-01-30 18:00", true),
			makeEvent(t, "emp-1", "2026-02-02", "2026-02-02 10:00", "2026-02-02 18:00", true),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-01-29"), day(t, "2026-02-02"), ts(t, "2026-02-28 23:00"))
	require.Len(t, records, 5)

	assert.Equal(t, 1, records[0].RunningLateCount)
	assert.Equal(t, 2, records[1].RunningLateCount)

	// February starts a fresh counter.
	last := records[len(records)-1]
	assert.Equal(t, day(t, "2026-02-02"), last.Date)
	assert.Equal(t, reconciliation.StatusTardy, last.Status)
	assert.Equal(t, 1, last.RunningLateCount)
}

func TestReconcileLeaveBeatsAbsent(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Leaves: []leave.Record{
			{
				EmployeeID: "emp-1",
				StartDate:  day(t, "2026-03-03"),
				EndDate:    day(t, "2026-03-04"),
				Status:     leave.StatusApproved,
			},
			{
				EmployeeID: "emp-1",
				StartDate:  day(t, "2026-03-05"),
				EndDate:    day(t, "2026-03-05"),
				Status:     leave.StatusPending,
			},
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-06"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 5)

	assert.Equal(t, reconciliation.StatusAbsent, records[0].Status)
	assert.Equal(t, reconciliation.StatusLeave, records[1].Status)
	assert.Equal(t, reconciliation.StatusLeave, records[2].Status)
	// Pending leave does not cover the day.
	assert.Equal(t, reconciliation.StatusAbsent, records[3].Status)
	assert.Equal(t, reconciliation.StatusAbsent, records[4].Status)

	assert.Equal(t, 0, records[1].DeductionPct)
	assert.Equal(t, 100, records[3].DeductionPct)
}

func TestReconcileWeekendAndOverrides(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Overrides: []calendar.Override{
			// Saturday declared working, Monday declared off.
			{Date: day(t, "2026-03-07"), Status: calendar.StatusWorking},
			{Date: day(t, "2026-03-09"), Status: calendar.StatusOff},
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-06"), day(t, "2026-03-09"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 4)

	// Friday: regular working day, no record.
	assert.Equal(t, reconciliation.StatusAbsent, records[0].Status)
	// Saturday overridden to working.
	assert.Equal(t, reconciliation.StatusAbsent, records[1].Status)
	// Sunday: default off.
	assert.Equal(t, reconciliation.StatusOff, records[2].Status)
	// Monday overridden to off.
	assert.Equal(t, reconciliation.StatusOff, records[3].Status)
}

func TestReconcileClockInDecidesOverCalendar(t *testing.T) {
	// A clock-in on a Saturday still classifies by punctuality, not as off.
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-03-07", "2026-03-07 09:00", "2026-03-07 17:00", false),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-07"), day(t, "2026-03-07"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 1)
	assert.Equal(t, reconciliation.StatusOnTime, records[0].Status)
}

func TestReconcileOvertime(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Shifts: []shift.Assignment{nineToFive(t, "emp-1", "2026-03-01")},
		Events: []attendance.ClockEvent{
			// Two and a half hours past an eight hour shift.
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 09:00", "2026-03-02 19:30", false),
			// Shorter than the shift clamps to zero.
			makeEvent(t, "emp-1", "2026-03-03", "2026-03-03 09:00", "2026-03-03 15:00", false),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-03"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 2)

	require.NotNil(t, records[0].OvertimeSeconds)
	assert.Equal(t, int64(9000), *records[0].OvertimeSeconds)

	require.NotNil(t, records[1].OvertimeSeconds)
	assert.Equal(t, int64(0), *records[1].OvertimeSeconds)
}

func TestReconcileOvertimeUnknownWithoutShift(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 09:00", "2026-03-02 19:30", false),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-04"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 3)

	for _, rec := range records {
		assert.Nil(t, rec.OvertimeSeconds, "date %s", rec.Date.Format("2006-01-02"))
	}
}

func TestReconcileOpenSessionUsesNow(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Shifts: []shift.Assignment{nineToFive(t, "emp-1", "2026-03-01")},
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 09:00", "", false),
		},
	}

	// now is eleven hours after clock-in; three past the shift.
	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-02"), ts(t, "2026-03-02 20:00"))
	require.Len(t, records, 1)

	require.NotNil(t, records[0].OvertimeSeconds)
	assert.Equal(t, int64(3*3600), *records[0].OvertimeSeconds)
}

func TestReconcileDuplicateEventsKeepFirstClockIn(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 13:00", "2026-03-02 17:00", true),
			makeEvent(t, "emp-1", "2026-03-02", "2026-03-02 09:00", "2026-03-02 12:00", false),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-02"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 1)

	// The 09:00 event wins despite arriving second in the slice.
	assert.Equal(t, reconciliation.StatusOnTime, records[0].Status)
}

func TestReconcileIgnoresOtherEmployees(t *testing.T) {
	engine := NewEngine()

	snap := reconciliation.Snapshot{
		Events: []attendance.ClockEvent{
			makeEvent(t, "emp-2", "2026-03-02", "2026-03-02 09:00", "2026-03-02 17:00", false),
		},
	}

	records := engine.Reconcile(snap, "emp-1", day(t, "2026-03-02"), day(t, "2026-03-02"), ts(t, "2026-03-31 23:00"))
	require.Len(t, records, 1)
	assert.Equal(t, reconciliation.StatusAbsent, records[0].Status)
}

func TestDeductionDomain(t *testing.T) {
	statuses := []reconciliation.DayStatus{
		reconciliation.StatusOff,
		reconciliation.StatusAbsent,
		reconciliation.StatusOnTime,
		reconciliation.StatusTardy,
		reconciliation.StatusHalfDay,
		reconciliation.StatusFullDay,
		reconciliation.StatusLeave,
	}

	for _, status := range statuses {
		pct := deductionFor(status)
		assert.Contains(t, []int{0, 50, 100}, pct, "status %s", status)
	}

	assert.Equal(t, 0, deductionFor(reconciliation.StatusOnTime))
	assert.Equal(t, 0, deductionFor(reconciliation.StatusTardy))
	assert.Equal(t, 50, deductionFor(reconciliation.StatusHalfDay))
	assert.Equal(t, 100, deductionFor(reconciliation.StatusFullDay))
	assert.Equal(t, 100, deductionFor(reconciliation.StatusAbsent))
}

func TestClassifyLate(t *testing.T) {
	tests := []struct {
		count int
		want  reconciliation.DayStatus
	}{
		{1, reconciliation.StatusTardy},
		{2, reconciliation.StatusTardy},
		{3, reconciliation.StatusTardy},
		{4, reconciliation.StatusHalfDay},
		{5, reconciliation.StatusFullDay},
		{6, reconciliation.StatusFullDay},
		{20, reconciliation.StatusFullDay},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyLate(tt.count), "count %d", tt.count)
	}
}
