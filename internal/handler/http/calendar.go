package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// Upsert implements CalendarHandler.
func (h *calendarHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateOverrideRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calendarService.UpsertOverride(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Calendar override saved", result)
}

// List implements CalendarHandler.
func (h *calendarHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := calendar.ListOverridesRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.calendarService.ListOverrides(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
