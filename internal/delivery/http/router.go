package http

import (
	"net/http"
	"os"

	"health-monitor-api/config"
	"health-monitor-api/internal/delivery/http/handler"
	"health-monitor-api/internal/delivery/http/middleware"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	graphqlHandler  http.Handler
	healthHandler   *handler.HealthHandler
	exportHandler   *handler.ExportHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
	rateLimiter     *middleware.RateLimiter
	env             string
}

func NewRouter(
	graphqlHandler http.Handler,
	healthHandler *handler.HealthHandler,
	exportHandler *handler.ExportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
	env string,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		graphqlHandler:  graphqlHandler,
		healthHandler:   healthHandler,
		exportHandler:   exportHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
		rateLimiter:     rateLimiter,
		env:             env,
	}
}

// Setup registers the routes and wraps them in the middleware chain.
func (r *Router) Setup() http.Handler {
	// GraphQL endpoint; the caller is identified from the token cookie when present
	gql := middleware.CaptureHTTP(r.authMiddleware.Identify(r.graphqlHandler))
	r.router.Handle("/graphql", gql).Methods(http.MethodGet, http.MethodPost)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Export routes (nurse or admin)
	export := api.PathPrefix("/export").Subrouter()
	export.Use(r.authMiddleware.Authenticate)
	export.Use(middleware.RequireStaff)
	export.HandleFunc("/daily-vitals", r.exportHandler.ExportDailyVitals).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = r.rateLimiter.Handle(h)
	h = r.corsMiddleware.Handle(h)

	switch r.env {
	case config.EnvDevelopment:
		h = handlers.CombinedLoggingHandler(os.Stdout, h)
	case config.EnvProduction:
		h = handlers.CompressHandler(h)
	}

	return h
}
