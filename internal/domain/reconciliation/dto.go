package reconciliation

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// DAILY ATTENDANCE REPORT
// ========================================

type DailyReportRequest struct {
	EmployeeID string
	Month      string // "YYYY-MM"
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyReportResponse struct {
	EmployeeID string      `json:"employee_id"`
	Month      string      `json:"month"`
	Days       []DayRecord `json:"days"`
}

// ========================================
// MONTHLY SUMMARY REPORT
// ========================================

type MonthlySummaryRequest struct {
	Month      string  // "YYYY-MM"
	EmployeeID *string // nil = every employee seen in the window
}

func (r *MonthlySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.EmployeeID != nil && validator.IsEmpty(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be blank when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlySummaryResponse struct {
	Month     string           `json:"month"`
	Summaries []MonthlySummary `json:"summaries"`
}
