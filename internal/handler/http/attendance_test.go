package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	clockInResult attendance.ClockEventResponse
	clockInErr    error
	listResult    attendance.ListClockEventsResponse
	listErr       error
}

func (s *stubAttendanceService) ClockIn(_ context.Context, _ attendance.ClockInRequest) (attendance.ClockEventResponse, error) {
	return s.clockInResult, s.clockInErr
}

func (s *stubAttendanceService) ClockOut(_ context.Context, _ attendance.ClockOutRequest) (attendance.ClockEventResponse, error) {
	return attendance.ClockEventResponse{}, nil
}

func (s *stubAttendanceService) ListEvents(_ context.Context, _ attendance.ClockEventFilter) (attendance.ListClockEventsResponse, error) {
	return s.listResult, s.listErr
}

func TestAttendanceListEnvelopeCarriesMeta(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		listResult: attendance.ListClockEventsResponse{
			TotalCount: 42,
			Page:       2,
			Limit:      5,
			TotalPages: 9,
			Events: []attendance.ClockEventResponse{
				{ID: "evt-1", EmployeeID: "emp-1", Date: "2026-03-02"},
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/?page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                             `json:"success"`
		Data    []attendance.ClockEventResponse `json:"data"`
		Meta    struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalItems int64 `json:"total_items"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "evt-1", body.Data[0].ID)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, 5, body.Meta.Limit)
	assert.Equal(t, int64(42), body.Meta.TotalItems)
	assert.Equal(t, 9, body.Meta.TotalPages)
}

func TestAttendanceClockInConflict(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		clockInErr: attendance.ErrAlreadyClockedIn,
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"employee_id":"emp-1"}`))
	rec := httptest.NewRecorder()

	handler.ClockIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "CONFLICT", body.Error.Code)
}
