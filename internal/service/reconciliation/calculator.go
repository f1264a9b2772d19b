package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
)

var deductionByStatus = map[reconciliation.DayStatus]int{
	reconciliation.StatusOnTime:  0,
	reconciliation.StatusTardy:   0,
	reconciliation.StatusHalfDay: 50,
	reconciliation.StatusFullDay: 100,
	reconciliation.StatusAbsent:  100,
	reconciliation.StatusLeave:   0,
	reconciliation.StatusOff:     0,
}

func deductionFor(status reconciliation.DayStatus) int {
	return deductionByStatus[status]
}

// overtimeSeconds computes time worked beyond the assigned shift. A nil
// result means not computable: no event, no clock-in, or unknown shift
// duration. An open session uses now as its provisional end. A clock-out
// before the clock-in is a data anomaly; actual duration clamps to zero.
func overtimeSeconds(event *attendance.ClockEvent, shiftSeconds int64, shiftKnown bool, now time.Time) *int64 {
	if event == nil || event.ClockIn == nil || !shiftKnown {
		return nil
	}

	end := now
	if event.ClockOut != nil {
		end = *event.ClockOut
	}

	actual := int64(end.Sub(*event.ClockIn).Seconds())
	if actual < 0 {
		actual = 0
	}

	overtime := actual - shiftSeconds
	if overtime < 0 {
		overtime = 0
	}
	return &overtime
}
