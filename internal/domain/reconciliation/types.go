package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
)

// DayStatus is the per-day attendance classification. Every date in a
// reconciled range lands on exactly one of these.
type DayStatus string

const (
	StatusOff     DayStatus = "off"
	StatusAbsent  DayStatus = "absent"
	StatusOnTime  DayStatus = "on_time"
	StatusTardy   DayStatus = "tardy"
	StatusHalfDay DayStatus = "half_day"
	StatusFullDay DayStatus = "full_day"
	StatusLeave   DayStatus = "leave"
)

// DayRecord is one employee-day outcome. Computed fresh per request, never
// persisted. Overtime is nil when the shift duration could not be resolved.
type DayRecord struct {
	Date             time.Time `json:"date"`
	EmployeeID       string    `json:"employee_id"`
	Status           DayStatus `json:"status"`
	DeductionPct     int       `json:"deduction_pct"`
	OvertimeSeconds  *int64    `json:"overtime_seconds"`
	RunningLateCount int       `json:"running_late_count"`
}

// MonthlySummary is one employee-month rollup, a pure fold over DayRecords.
type MonthlySummary struct {
	EmployeeID           string  `json:"employee_id"`
	Month                string  `json:"month"`
	TotalWorkingDays     int     `json:"total_working_days"`
	TotalUnpaidDays      float64 `json:"total_unpaid_days"`
	TotalOvertimeSeconds int64   `json:"total_overtime_seconds"`
}

// Snapshot is the fully materialized input window the engine folds over.
type Snapshot struct {
	Events    []attendance.ClockEvent
	Shifts    []shift.Assignment
	Overrides []calendar.Override
	Leaves    []leave.Record
}
