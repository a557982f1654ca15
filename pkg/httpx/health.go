package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (EventBus and RedisClient both qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by the health endpoint. A nil
// Checker marks an optional dependency that is not configured; it reports
// "disabled" and does not degrade the status.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"           example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
} // @name HealthResponse

// HealthHandler returns an http.HandlerFunc that probes every check and
// reports 503 "degraded" if any configured dependency fails to answer.
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			switch {
			case c.Checker == nil:
				resp.Checks[c.Name] = "disabled"
			case c.Checker.Ping(ctx) != nil:
				resp.Status = "degraded"
				resp.Checks[c.Name] = "unreachable"
			default:
				resp.Checks[c.Name] = "ok"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
