package reconciliation

import (
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
)

// CalendarResolver classifies dates as working or off. An exact-date
// override wins; otherwise Saturday and Sunday are off.
type CalendarResolver struct {
	overrides map[string]string
}

func NewCalendarResolver(overrides []calendar.Override) *CalendarResolver {
	r := &CalendarResolver{overrides: make(map[string]string, len(overrides))}
	for _, o := range overrides {
		r.overrides[dateKey(o.Date)] = o.Status
	}
	return r
}

func (r *CalendarResolver) IsWorkingDay(date time.Time) bool {
	if status, ok := r.overrides[dateKey(date)]; ok {
		return status == calendar.StatusWorking
	}

	weekday := date.Weekday()
	return weekday != time.Saturday && weekday != time.Sunday
}
