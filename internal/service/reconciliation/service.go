package reconciliation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type ReconciliationServiceImpl struct {
	db          *database.DB
	clockEvents attendance.ClockEventRepository
	shifts      shift.AssignmentRepository
	overrides   calendar.OverrideRepository
	leaves      leave.LeaveRepository
	engine      *Engine
}

func NewReconciliationService(
	db *database.DB,
	clockEventRepo attendance.ClockEventRepository,
	shiftRepo shift.AssignmentRepository,
	overrideRepo calendar.OverrideRepository,
	leaveRepo leave.LeaveRepository,
) reconciliation.ReconciliationService {
	return &ReconciliationServiceImpl{
		db:          db,
		clockEvents: clockEventRepo,
		shifts:      shiftRepo,
		overrides:   overrideRepo,
		leaves:      leaveRepo,
		engine:      NewEngine(),
	}
}

// DailyRecords implements reconciliation.ReconciliationService.
func (s *ReconciliationServiceImpl) DailyRecords(ctx context.Context, req reconciliation.DailyReportRequest) (reconciliation.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return reconciliation.DailyReportResponse{}, err
	}

	month, _ := time.Parse("2006-01", req.Month)
	from, to := monthBounds(month)

	snap, err := s.loadSnapshot(ctx, req.EmployeeID, from, to)
	if err != nil {
		return reconciliation.DailyReportResponse{}, err
	}

	now := time.Now().UTC()
	records := s.engine.Reconcile(snap, req.EmployeeID, from, to, now)

	return reconciliation.DailyReportResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Days:       records,
	}, nil
}

// MonthlySummaries implements reconciliation.ReconciliationService.
func (s *ReconciliationServiceImpl) MonthlySummaries(ctx context.Context, req reconciliation.MonthlySummaryRequest) (reconciliation.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return reconciliation.MonthlySummaryResponse{}, err
	}

	month, _ := time.Parse("2006-01", req.Month)
	from, to := monthBounds(month)

	employeeID := ""
	if req.EmployeeID != nil {
		employeeID = *req.EmployeeID
	}

	snap, err := s.loadSnapshot(ctx, employeeID, from, to)
	if err != nil {
		return reconciliation.MonthlySummaryResponse{}, err
	}

	var employeeIDs []string
	if employeeID != "" {
		employeeIDs = []string{employeeID}
	} else {
		employeeIDs = employeesInSnapshot(snap)
	}

	now := time.Now().UTC()
	summaries := make([]reconciliation.MonthlySummary, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		summaries = append(summaries, s.engine.Summarize(snap, id, month, now))
	}

	return reconciliation.MonthlySummaryResponse{
		Month:     req.Month,
		Summaries: summaries,
	}, nil
}

// loadSnapshot materializes every input the engine needs for the window.
// An empty employeeID loads all employees.
func (s *ReconciliationServiceImpl) loadSnapshot(ctx context.Context, employeeID string, from, to time.Time) (reconciliation.Snapshot, error) {
	events, err := s.clockEvents.ListForWindow(ctx, employeeID, from, to)
	if err != nil {
		return reconciliation.Snapshot{}, fmt.Errorf("failed to load clock events: %w", err)
	}

	// Shift history older than the window still matters: the resolver
	// falls back to the most recent assignment before the target date.
	assignments, err := s.shifts.ListForWindow(ctx, employeeID, to)
	if err != nil {
		return reconciliation.Snapshot{}, fmt.Errorf("failed to load shift assignments: %w", err)
	}

	overrides, err := s.overrides.ListRange(ctx, from, to)
	if err != nil {
		return reconciliation.Snapshot{}, fmt.Errorf("failed to load calendar overrides: %w", err)
	}

	leaves, err := s.leaves.ListOverlapping(ctx, employeeID, from, to)
	if err != nil {
		return reconciliation.Snapshot{}, fmt.Errorf("failed to load leave records: %w", err)
	}

	return reconciliation.Snapshot{
		Events:    events,
		Shifts:    assignments,
		Overrides: overrides,
		Leaves:    leaves,
	}, nil
}

// employeesInSnapshot collects every employee that appears anywhere in the
// window, sorted for stable report output.
func employeesInSnapshot(snap reconciliation.Snapshot) []string {
	seen := make(map[string]struct{})
	for _, ev := range snap.Events {
		seen[ev.EmployeeID] = struct{}{}
	}
	for _, a := range snap.Shifts {
		seen[a.EmployeeID] = struct{}{}
	}
	for _, l := range snap.Leaves {
		seen[l.EmployeeID] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
