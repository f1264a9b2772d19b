package calendar

import (
	"context"
)

// CalendarService manages company calendar overrides.
type CalendarService interface {
	// UpsertOverride creates or replaces the override for a date.
	UpsertOverride(ctx context.Context, req CreateOverrideRequest) (OverrideResponse, error)

	// ListOverrides returns overrides inside the requested date range.
	ListOverrides(ctx context.Context, req ListOverridesRequest) ([]OverrideResponse, error)
}
