package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/cartshop/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

func serveHealth(t *testing.T, checks ...httpx.HealthCheck) (int, httpx.HealthResponse) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var resp httpx.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, resp
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     []httpx.HealthCheck
		wantStatus int
		want       map[string]string
	}{
		{
			name: "all healthy",
			checks: []httpx.HealthCheck{
				{Name: "event_bus", Checker: &stubChecker{}},
				{Name: "redis", Checker: &stubChecker{}},
			},
			wantStatus: http.StatusOK,
			want:       map[string]string{"event_bus": "ok", "redis": "ok"},
		},
		{
			name: "redis not configured",
			checks: []httpx.HealthCheck{
				{Name: "event_bus", Checker: &stubChecker{}},
				{Name: "redis"},
			},
			wantStatus: http.StatusOK,
			want:       map[string]string{"event_bus": "ok", "redis": "disabled"},
		},
		{
			name: "redis down",
			checks: []httpx.HealthCheck{
				{Name: "event_bus", Checker: &stubChecker{}},
				{Name: "redis", Checker: &stubChecker{err: errors.New("timeout")}},
			},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"event_bus": "ok", "redis": "unreachable"},
		},
		{
			name: "event bus closed",
			checks: []httpx.HealthCheck{
				{Name: "event_bus", Checker: &stubChecker{err: errors.New("closed")}},
				{Name: "redis"},
			},
			wantStatus: http.StatusServiceUnavailable,
			want:       map[string]string{"event_bus": "unreachable", "redis": "disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := serveHealth(t, tt.checks...)
			if code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, code)
			}
			wantOverall := "ok"
			if tt.wantStatus != http.StatusOK {
				wantOverall = "degraded"
			}
			if resp.Status != wantOverall {
				t.Errorf("status: got %q, want %q", resp.Status, wantOverall)
			}
			for name, want := range tt.want {
				if resp.Checks[name] != want {
					t.Errorf("%s: got %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}

func TestHealthHandler_NoChecks(t *testing.T) {
	code, resp := serveHealth(t)
	if code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ok with no checks, got %d %+v", code, resp)
	}
}
