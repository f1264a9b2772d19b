package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRecordRepository struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRecordRepository{db: db}
}

// Create implements leave.LeaveRepository.
func (r *leaveRecordRepository) Create(ctx context.Context, record leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	if record.Status == "" {
		record.Status = leave.StatusPending
	}

	query := `
		INSERT INTO leave_records (id, employee_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.StartDate,
		record.EndDate,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to create leave record: %w", err)
	}

	return record, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRecordRepository) UpdateStatus(ctx context.Context, id string, status string) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_records
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, employee_id, start_date, end_date, status, created_at, updated_at
	`

	var record leave.Record
	err := q.QueryRow(ctx, query, status, time.Now(), id).Scan(
		&record.ID, &record.EmployeeID, &record.StartDate, &record.EndDate,
		&record.Status, &record.CreatedAt, &record.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Record{}, leave.ErrLeaveRecordNotFound
		}
		return leave.Record{}, fmt.Errorf("failed to update leave record status: %w", err)
	}

	return record, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRecordRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT id, employee_id, start_date, end_date, status, created_at, updated_at
		FROM leave_records
		WHERE ` + baseWhere + `
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	return scanLeaveRecords(rows)
}

// ListOverlapping implements leave.LeaveRepository.
func (r *leaveRecordRepository) ListOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, status, created_at, updated_at
		FROM leave_records
		WHERE start_date <= $1 AND end_date >= $2
	`
	args := []interface{}{to, from}
	if employeeID != "" {
		query += " AND employee_id = $3"
		args = append(args, employeeID)
	}
	query += " ORDER BY employee_id, start_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping leave records: %w", err)
	}
	defer rows.Close()

	return scanLeaveRecords(rows)
}

func scanLeaveRecords(rows pgx.Rows) ([]leave.Record, error) {
	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
