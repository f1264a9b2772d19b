package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

// Create implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) Create(ctx context.Context, assignment shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	assignment.ID = uuid.NewString()

	query := `
		INSERT INTO shift_assignments (id, employee_id, start_time, end_time, assigned_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		assignment.ID,
		assignment.EmployeeID,
		assignment.StartTime,
		assignment.EndTime,
		assignment.AssignedDate,
	).Scan(&assignment.CreatedAt)

	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}

// ListByEmployee implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_time, end_time, assigned_date, created_at
		FROM shift_assignments
		WHERE employee_id = $1
		ORDER BY assigned_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListForWindow implements shift.AssignmentRepository.
func (r *shiftAssignmentRepository) ListForWindow(ctx context.Context, employeeID string, until time.Time) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_time, end_time, assigned_date, created_at
		FROM shift_assignments
		WHERE assigned_date <= $1
	`
	args := []interface{}{until}
	if employeeID != "" {
		query += " AND employee_id = $2"
		args = append(args, employeeID)
	}
	query += " ORDER BY employee_id, assigned_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments for window: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

func scanAssignments(rows pgx.Rows) ([]shift.Assignment, error) {
	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.StartTime, &a.EndTime, &a.AssignedDate, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
