package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-monitor-api/config"
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/delivery/http/handler"
	"health-monitor-api/internal/delivery/http/middleware"
	"health-monitor-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditLogUsecase struct{}

func (stubAuditLogUsecase) GetAllAuditLogs(context.Context, int) (*dto.AuditLogListResponse, error) {
	return &dto.AuditLogListResponse{Logs: []dto.AuditLogResponse{}}, nil
}

func (stubAuditLogUsecase) GetAuditLog(_ context.Context, id int64) (*dto.AuditLogResponse, error) {
	return &dto.AuditLogResponse{ID: id}, nil
}

type stubExportUsecase struct{}

func (stubExportUsecase) ExportDailyVitals(context.Context, *uuid.UUID) ([]byte, error) {
	return []byte("xlsx"), nil
}

func newTestRouter(t *testing.T) (http.Handler, *jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-secret", Expiry: time.Hour})
	rl := middleware.NewRateLimiter(100, 100)
	t.Cleanup(rl.Stop)

	graphqlStub := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	router := NewRouter(
		graphqlStub,
		handler.NewHealthHandler(nil),
		handler.NewExportHandler(stubExportUsecase{}),
		handler.NewAuditLogHandler(stubAuditLogUsecase{}),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewCORSMiddleware(nil),
		rl,
		config.EnvProduction,
	)
	return router.Setup(), jwtService
}

func TestRouter(t *testing.T) {
	h, jwtService := newTestRouter(t)

	bearer := func(roles ...string) string {
		token, _, err := jwtService.GenerateToken(uuid.New(), "u@example.com", roles)
		require.NoError(t, err)
		return "Bearer " + token
	}

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		status int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"graphql post", http.MethodPost, "/graphql", "", http.StatusTeapot},
		{"graphql get", http.MethodGet, "/graphql", "", http.StatusTeapot},
		{"graphql delete", http.MethodDelete, "/graphql", "", http.StatusMethodNotAllowed},
		{"export anonymous", http.MethodGet, "/api/v1/export/daily-vitals", "", http.StatusUnauthorized},
		{"export patient", http.MethodGet, "/api/v1/export/daily-vitals", bearer("Patient"), http.StatusForbidden},
		{"export nurse", http.MethodGet, "/api/v1/export/daily-vitals", bearer("Nurse"), http.StatusOK},
		{"audit nurse", http.MethodGet, "/api/v1/admin/audit-logs", bearer("Nurse"), http.StatusForbidden},
		{"audit admin", http.MethodGet, "/api/v1/admin/audit-logs", bearer("Admin"), http.StatusOK},
		{"audit entry", http.MethodGet, "/api/v1/admin/audit-logs/12", bearer("Admin"), http.StatusOK},
		{"unknown", http.MethodGet, "/api/v2/health", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
