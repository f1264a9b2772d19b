package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db          *database.DB
	clockEvents attendance.ClockEventRepository
	shifts      shift.AssignmentRepository
	gracePeriod time.Duration
}

func NewAttendanceService(
	db *database.DB,
	clockEventRepo attendance.ClockEventRepository,
	shiftRepo shift.AssignmentRepository,
	gracePeriodMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:          db,
		clockEvents: clockEventRepo,
		shifts:      shiftRepo,
		gracePeriod: time.Duration(gracePeriodMinutes) * time.Minute,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	nowUTC := time.Now().UTC()

	late, err := a.isLate(ctx, req.EmployeeID, nowUTC)
	if err != nil {
		return attendance.ClockEventResponse{}, err
	}

	event := attendance.ClockEvent{
		EmployeeID: req.EmployeeID,

		// Date is the working day the session belongs to, not a timestamp.
		Date: nowUTC.Truncate(24 * time.Hour),

		ClockIn: &nowUTC,
		Late:    late,
	}

	// The repository rejects the insert atomically when an open session
	// already exists; no check-then-act window.
	created, err := a.clockEvents.Create(ctx, event)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyClockedIn) {
			return attendance.ClockEventResponse{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.ClockEventResponse{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return mapEventToResponse(created), nil
}

// isLate stamps the upstream lateness flag: the clock-in instant measured
// against the effective shift start plus the grace period. No resolvable
// shift means not late.
func (a *AttendanceServiceImpl) isLate(ctx context.Context, employeeID string, at time.Time) (bool, error) {
	history, err := a.shifts.ListByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to load shift assignments: %w", err)
	}
	if len(history) == 0 {
		return false, nil
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].AssignedDate.Before(history[j].AssignedDate)
	})

	day := at.Truncate(24 * time.Hour)
	effective := history[len(history)-1]
	for _, assignment := range history {
		if assignment.AssignedDate.After(day) {
			break
		}
		effective = assignment
	}

	scheduledStart, ok := effective.StartOnDate(at)
	if !ok {
		// Malformed start time degrades to on time, same as no shift.
		return false, nil
	}

	return at.After(scheduledStart.Add(a.gracePeriod)), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockEventResponse{}, err
	}

	// The repository locates the open session system-wide (a session may
	// span midnight) and closes it transactionally.
	nowUTC := time.Now().UTC()
	event, err := a.clockEvents.CloseOpenSession(ctx, req.EmployeeID, nowUTC)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.ClockEventResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.ClockEventResponse{}, fmt.Errorf("failed to close open session: %w", err)
	}

	return mapEventToResponse(event), nil
}

// ListEvents implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.ClockEventFilter) (attendance.ListClockEventsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListClockEventsResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	events, total, err := a.clockEvents.List(ctx, filter)
	if err != nil {
		return attendance.ListClockEventsResponse{}, fmt.Errorf("failed to list clock events: %w", err)
	}

	responses := make([]attendance.ClockEventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapEventToResponse(ev))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListClockEventsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Events:     responses,
	}, nil
}

// mapEventToResponse converts a ClockEvent entity to ClockEventResponse
func mapEventToResponse(ev attendance.ClockEvent) attendance.ClockEventResponse {
	return attendance.ClockEventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Date:       ev.Date.Format("2006-01-02"),
		ClockIn:    timePtrToString(ev.ClockIn),
		ClockOut:   timePtrToString(ev.ClockOut),
		Late:       ev.Late,
		Open:       ev.Open(),
	}
}
