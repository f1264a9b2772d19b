package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type calendarOverrideRepository struct {
	db *database.DB
}

func NewCalendarOverrideRepository(db *database.DB) calendar.OverrideRepository {
	return &calendarOverrideRepository{db: db}
}

// Upsert implements calendar.OverrideRepository.
func (r *calendarOverrideRepository) Upsert(ctx context.Context, override calendar.Override) (calendar.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendar_overrides (date, status, note)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE
		SET status = EXCLUDED.status, note = EXCLUDED.note
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		override.Date,
		override.Status,
		override.Note,
	).Scan(&override.CreatedAt)

	if err != nil {
		return calendar.Override{}, fmt.Errorf("failed to upsert calendar override: %w", err)
	}

	return override, nil
}

// ListRange implements calendar.OverrideRepository.
func (r *calendarOverrideRepository) ListRange(ctx context.Context, from, to time.Time) ([]calendar.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, status, note, created_at
		FROM calendar_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar overrides: %w", err)
	}
	defer rows.Close()

	var overrides []calendar.Override
	for rows.Next() {
		var o calendar.Override
		if err := rows.Scan(&o.Date, &o.Status, &o.Note, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan calendar override: %w", err)
		}
		overrides = append(overrides, o)
	}

	return overrides, nil
}
