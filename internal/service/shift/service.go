package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

const dateFormat = "2006-01-02"

type ShiftServiceImpl struct {
	db          *database.DB
	assignments shift.AssignmentRepository
}

func NewShiftService(db *database.DB, assignmentRepo shift.AssignmentRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:          db,
		assignments: assignmentRepo,
	}
}

// CreateAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	assignedDate, err := time.Parse(dateFormat, req.AssignedDate)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to parse assigned date: %w", err)
	}

	assignment := shift.Assignment{
		EmployeeID:   req.EmployeeID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		AssignedDate: assignedDate,
	}

	created, err := s.assignments.Create(ctx, assignment)
	if err != nil {
		return shift.AssignmentResponse{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// ListAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context, employeeID string) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignments.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}

	return responses, nil
}

func mapAssignmentToResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		AssignedDate: a.AssignedDate.Format(dateFormat),
	}
}
