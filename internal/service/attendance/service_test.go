package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClockEventRepo mimics the atomic open-session guard in memory.
type fakeClockEventRepo struct {
	events []attendance.ClockEvent
}

func (f *fakeClockEventRepo) Create(_ context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	for _, ev := range f.events {
		if ev.EmployeeID == event.EmployeeID && ev.ClockOut == nil {
			return attendance.ClockEvent{}, attendance.ErrAlreadyClockedIn
		}
	}
	event.ID = "evt-" + event.EmployeeID
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeClockEventRepo) CloseOpenSession(_ context.Context, employeeID string, at time.Time) (attendance.ClockEvent, error) {
	var open *attendance.ClockEvent
	for i := range f.events {
		ev := &f.events[i]
		if ev.EmployeeID != employeeID || ev.ClockOut != nil {
			continue
		}
		if open == nil || (ev.ClockIn != nil && open.ClockIn != nil && ev.ClockIn.After(*open.ClockIn)) {
			open = ev
		}
	}
	if open == nil {
		return attendance.ClockEvent{}, attendance.ErrNotClockedIn
	}
	open.ClockOut = &at
	return *open, nil
}

func (f *fakeClockEventRepo) List(_ context.Context, filter attendance.ClockEventFilter) ([]attendance.ClockEvent, int64, error) {
	var matched []attendance.ClockEvent
	for _, ev := range f.events {
		if filter.EmployeeID != nil && *filter.EmployeeID != ev.EmployeeID {
			continue
		}
		matched = append(matched, ev)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeClockEventRepo) ListForWindow(_ context.Context, _ string, _, _ time.Time) ([]attendance.ClockEvent, error) {
	return f.events, nil
}

type fakeAssignmentRepo struct {
	assignments []shift.Assignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a shift.Assignment) (shift.Assignment, error) {
	f.assignments = append(f.assignments, a)
	return a, nil
}

func (f *fakeAssignmentRepo) ListByEmployee(_ context.Context, employeeID string) ([]shift.Assignment, error) {
	var matched []shift.Assignment
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (f *fakeAssignmentRepo) ListForWindow(_ context.Context, _ string, _ time.Time) ([]shift.Assignment, error) {
	return f.assignments, nil
}

func newTestService(events *fakeClockEventRepo, shifts *fakeAssignmentRepo, graceMinutes int) attendance.AttendanceService {
	return NewAttendanceService(nil, events, shifts, graceMinutes)
}

func TestClockInRejectsSecondOpenSession(t *testing.T) {
	ctx := context.Background()
	repo := &fakeClockEventRepo{}
	svc := newTestService(repo, &fakeAssignmentRepo{}, 0)

	first, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.True(t, first.Open)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	// A different employee is unaffected.
	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-2"})
	assert.NoError(t, err)
}

func TestClockInStampsLatenessWithoutShift(t *testing.T) {
	ctx := context.Background()
	repo := &fakeClockEventRepo{}
	svc := newTestService(repo, &fakeAssignmentRepo{}, 0)

	result, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// No resolvable shift means not late.
	assert.False(t, result.Late)
}

func TestClockInValidatesRequest(t *testing.T) {
	svc := newTestService(&fakeClockEventRepo{}, &fakeAssignmentRepo{}, 0)

	_, err := svc.ClockIn(context.Background(), attendance.ClockInRequest{})
	assert.Error(t, err)
}

func TestClockOutClosesOpenSession(t *testing.T) {
	ctx := context.Background()
	repo := &fakeClockEventRepo{}
	svc := newTestService(repo, &fakeAssignmentRepo{}, 0)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	result, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.False(t, result.Open)
	assert.NotNil(t, result.ClockOut)

	// Session is closed now; a second clock-out has nothing to target.
	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutWithoutOpenSession(t *testing.T) {
	svc := newTestService(&fakeClockEventRepo{}, &fakeAssignmentRepo{}, 0)

	_, err := svc.ClockOut(context.Background(), attendance.ClockOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestListEventsPaginationDefaults(t *testing.T) {
	ctx := context.Background()
	repo := &fakeClockEventRepo{}
	svc := newTestService(repo, &fakeAssignmentRepo{}, 0)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	result, err := svc.ListEvents(ctx, attendance.ClockEventFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Events, 1)
	assert.Equal(t, "emp-1", result.Events[0].EmployeeID)
}
