package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/reconciliation"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reconciliationService reconciliation.ReconciliationService
}

func NewReportHandler(reconciliationService reconciliation.ReconciliationService) ReportHandler {
	return &reportHandlerImpl{
		reconciliationService: reconciliationService,
	}
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := reconciliation.DailyReportRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reconciliationService.DailyRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlySummary implements ReportHandler.
func (h *reportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	req := reconciliation.MonthlySummaryRequest{
		Month: r.URL.Query().Get("month"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reconciliationService.MonthlySummaries(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
