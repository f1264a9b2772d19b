package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

const dateFormat = "2006-01-02"

type LeaveServiceImpl struct {
	db     *database.DB
	leaves leave.LeaveRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:     db,
		leaves: leaveRepo,
	}
}

// CreateLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse(dateFormat, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	record := leave.Record{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     leave.StatusPending,
	}

	created, err := s.leaves.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaves.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRecordNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRecordNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return mapRecordToResponse(updated), nil
}

// ListLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	records, err := s.leaves.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return responses, nil
}

func mapRecordToResponse(rec leave.Record) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		StartDate:  rec.StartDate.Format(dateFormat),
		EndDate:    rec.EndDate.Format(dateFormat),
		Status:     rec.Status,
	}
}
