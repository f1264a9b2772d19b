package reconciliation

import (
	"context"
)

// ReconciliationService materializes a snapshot for the requested window and
// runs the engine over it.
type ReconciliationService interface {
	// DailyRecords reconciles one employee's calendar month into per-day
	// records.
	DailyRecords(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// MonthlySummaries folds a month into per-employee rollups.
	MonthlySummaries(ctx context.Context, req MonthlySummaryRequest) (MonthlySummaryResponse, error)
}
