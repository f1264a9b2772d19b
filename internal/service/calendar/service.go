package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

const dateFormat = "2006-01-02"

type CalendarServiceImpl struct {
	db        *database.DB
	overrides calendar.OverrideRepository
}

func NewCalendarService(db *database.DB, overrideRepo calendar.OverrideRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		db:        db,
		overrides: overrideRepo,
	}
}

// UpsertOverride implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpsertOverride(ctx context.Context, req calendar.CreateOverrideRequest) (calendar.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.OverrideResponse{}, err
	}

	date, err := time.Parse(dateFormat, req.Date)
	if err != nil {
		return calendar.OverrideResponse{}, fmt.Errorf("failed to parse override date: %w", err)
	}

	override := calendar.Override{
		Date:   date,
		Status: req.Status,
		Note:   req.Note,
	}

	upserted, err := s.overrides.Upsert(ctx, override)
	if err != nil {
		return calendar.OverrideResponse{}, fmt.Errorf("failed to upsert calendar override: %w", err)
	}

	return mapOverrideToResponse(upserted), nil
}

// ListOverrides implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListOverrides(ctx context.Context, req calendar.ListOverridesRequest) ([]calendar.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, err := time.Parse(dateFormat, req.From)
	if err != nil {
		return nil, fmt.Errorf("failed to parse range start: %w", err)
	}
	to, err := time.Parse(dateFormat, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to parse range end: %w", err)
	}

	overrides, err := s.overrides.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar overrides: %w", err)
	}

	responses := make([]calendar.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, mapOverrideToResponse(o))
	}

	return responses, nil
}

func mapOverrideToResponse(o calendar.Override) calendar.OverrideResponse {
	return calendar.OverrideResponse{
		Date:   o.Date.Format(dateFormat),
		Status: o.Status,
		Note:   o.Note,
	}
}
