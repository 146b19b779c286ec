package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/usecase"
	"health-monitor-api/pkg/apperror"
	"health-monitor-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditLogUsecase struct {
	mock.Mock
}

func (m *MockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) ExportDailyVitals(ctx context.Context, patientID *uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetAllAuditLogs(t *testing.T) {
	uc := new(MockAuditLogUsecase)
	h := NewAuditLogHandler(uc)

	uc.On("GetAllAuditLogs", mock.Anything, 25).Return(&dto.AuditLogListResponse{
		Logs:  []dto.AuditLogResponse{{ID: 1, Action: "user.login"}},
		Total: 1,
	}, nil)

	rec := httptest.NewRecorder()
	h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=25", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestGetAllAuditLogs_InvalidLimit(t *testing.T) {
	uc := new(MockAuditLogUsecase)
	h := NewAuditLogHandler(uc)

	rec := httptest.NewRecorder()
	h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?limit=ten", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetAllAuditLogs", mock.Anything, mock.Anything)
}

func TestGetAuditLog_NotFound(t *testing.T) {
	uc := new(MockAuditLogUsecase)
	h := NewAuditLogHandler(uc)

	uc.On("GetAuditLog", mock.Anything, int64(7)).Return(nil, usecase.ErrAuditLogNotFound)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs/7", nil), map[string]string{"id": "7"})
	rec := httptest.NewRecorder()
	h.GetAuditLog(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "audit log not found", decode(t, rec).Message)
}

func TestExportDailyVitals(t *testing.T) {
	uc := new(MockExportUsecase)
	h := NewExportHandler(uc)
	patient := uuid.New()

	uc.On("ExportDailyVitals", mock.Anything, &patient).Return([]byte("PK\x03\x04"), nil)

	rec := httptest.NewRecorder()
	h.ExportDailyVitals(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/daily-vitals?patient="+patient.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "daily-vitals-")
	assert.Equal(t, "PK\x03\x04", rec.Body.String())
}

func TestExportDailyVitals_Errors(t *testing.T) {
	uc := new(MockExportUsecase)
	h := NewExportHandler(uc)

	rec := httptest.NewRecorder()
	h.ExportDailyVitals(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/daily-vitals?patient=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.On("ExportDailyVitals", mock.Anything, (*uuid.UUID)(nil)).Return(nil, apperror.Dependency("failed to find daily vitals", errors.New("timeout")))

	rec = httptest.NewRecorder()
	h.ExportDailyVitals(rec, httptest.NewRequest(http.MethodGet, "/api/v1/export/daily-vitals", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode(t, rec).Message)
}

func TestHealthCheck(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("refused") })

	rec := httptest.NewRecorder()
	NewHealthHandler(map[string]Pinger{"database": up}).Check(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(map[string]Pinger{"database": up, "redis": down}).Check(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"up","redis":"down"}`, rec.Body.String())
}
