package calendar

import (
	"context"
	"time"
)

// OverrideRepository defines data access for calendar overrides.
type OverrideRepository interface {
	// Upsert inserts or replaces the override for its date.
	Upsert(ctx context.Context, override Override) (Override, error)

	// ListRange returns overrides within the inclusive date range.
	ListRange(ctx context.Context, from, to time.Time) ([]Override, error)
}
