package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"health-monitor-api/pkg/response"

	"golang.org/x/sync/errgroup"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Check pings every dependency concurrently and answers 200 when all respond, 503 otherwise.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	var (
		mu     sync.Mutex
		g      errgroup.Group
		status = map[string]string{"status": "ok"}
	)
	for name, check := range h.checks {
		g.Go(func() error {
			state := "up"
			err := check.Ping(ctx)
			if err != nil {
				state = "down"
			}

			mu.Lock()
			status[name] = state
			mu.Unlock()
			return err
		})
	}

	code := http.StatusOK
	if err := g.Wait(); err != nil {
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}

	response.JSON(w, code, status)
}
