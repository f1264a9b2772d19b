package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) attendance.ClockEventRepository {
	return &clockEventRepository{db: db}
}

// Create implements attendance.ClockEventRepository.
// The insert only happens when no open session exists for the employee; the
// partial unique index on (employee_id) WHERE clock_out IS NULL backs this
// up against concurrent writers.
func (r *clockEventRepository) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	event.ID = uuid.NewString()

	query := `
		INSERT INTO clock_events (id, employee_id, date, clock_in, clock_out, late)
		SELECT $1, $2, $3, $4, NULL, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM clock_events
			WHERE employee_id = $2 AND clock_out IS NULL
		)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.Date,
		event.ClockIn,
		event.Late,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ClockEvent{}, attendance.ErrAlreadyClockedIn
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.ClockEvent{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

// CloseOpenSession implements attendance.ClockEventRepository.
// The select and the update run in one transaction with the session row
// locked, so two concurrent clock-outs cannot both close the same session.
func (r *clockEventRepository) CloseOpenSession(ctx context.Context, employeeID string, at time.Time) (attendance.ClockEvent, error) {
	var closed attendance.ClockEvent

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		selectQuery := `
			SELECT id, employee_id, date, clock_in, clock_out, late, created_at, updated_at
			FROM clock_events
			WHERE employee_id = $1
			  AND clock_out IS NULL
			ORDER BY clock_in DESC
			LIMIT 1
			FOR UPDATE
		`

		var ev attendance.ClockEvent
		err := q.QueryRow(txCtx, selectQuery, employeeID).Scan(
			&ev.ID, &ev.EmployeeID, &ev.Date, &ev.ClockIn, &ev.ClockOut, &ev.Late,
			&ev.CreatedAt, &ev.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.ErrNotClockedIn
			}
			return fmt.Errorf("failed to get open session: %w", err)
		}

		updateQuery := `
			UPDATE clock_events
			SET clock_out = $1, updated_at = $2
			WHERE id = $3
			RETURNING updated_at
		`

		if err := q.QueryRow(txCtx, updateQuery, at, time.Now(), ev.ID).Scan(&ev.UpdatedAt); err != nil {
			return fmt.Errorf("failed to close clock event: %w", err)
		}

		ev.ClockOut = &at
		closed = ev
		return nil
	})

	if err != nil {
		return attendance.ClockEvent{}, err
	}
	return closed, nil
}

// List implements attendance.ClockEventRepository.
func (r *clockEventRepository) List(ctx context.Context, filter attendance.ClockEventFilter) ([]attendance.ClockEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM clock_events WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clock events: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, employee_id, date, clock_in, clock_out, late, created_at, updated_at
		FROM clock_events
		WHERE %s
		ORDER BY date DESC, clock_in DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var ev attendance.ClockEvent
		err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.Date, &ev.ClockIn, &ev.ClockOut, &ev.Late,
			&ev.CreatedAt, &ev.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, nil
}

// ListForWindow implements attendance.ClockEventRepository.
func (r *clockEventRepository) ListForWindow(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, late, created_at, updated_at
		FROM clock_events
		WHERE date >= $1 AND date <= $2
	`
	args := []interface{}{from, to}
	if employeeID != "" {
		query += " AND employee_id = $3"
		args = append(args, employeeID)
	}
	query += " ORDER BY employee_id, date, clock_in"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events for window: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var ev attendance.ClockEvent
		err := rows.Scan(
			&ev.ID, &ev.EmployeeID, &ev.Date, &ev.ClockIn, &ev.ClockOut, &ev.Late,
			&ev.CreatedAt, &ev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, ev)
	}

	return events, nil
}
