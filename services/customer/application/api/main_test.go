package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/services/customer/application/api"
	appsvcs "github.com/ghuser/cartshop/services/customer/application/services"
	"github.com/ghuser/cartshop/services/customer/infrastructure/persistence/memory"
)

func newRouter() http.Handler {
	svcs := &appsvcs.Services{
		Customer: appsvcs.NewCustomerService(memory.NewCustomerRepository(), logger.Discard()),
	}
	r := chi.NewRouter()
	api.CustomerRoutes(r, svcs)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, http.NoBody)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestCustomerRoutes_CreateAndGet(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/customers", `{"name":"John Smith","phone":"555-123-4567","email":"john@example.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created["id"].(float64) != 1 {
		t.Fatalf("expected id 1, got %v", created["id"])
	}

	w = do(t, h, http.MethodGet, "/customers/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "John Smith") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCustomerRoutes_Errors(t *testing.T) {
	h := newRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"missing phone", http.MethodPost, "/customers", `{"name":"John"}`, http.StatusUnprocessableEntity},
		{"bad email", http.MethodPost, "/customers", `{"name":"John","phone":"1","email":"nope"}`, http.StatusUnprocessableEntity},
		{"malformed json", http.MethodPost, "/customers", `{`, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/customers/9", "", http.StatusNotFound},
		{"bad id", http.MethodGet, "/customers/abc", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCustomerRoutes_Search(t *testing.T) {
	h := newRouter()
	do(t, h, http.MethodPost, "/customers", `{"name":"John Smith","phone":"555-123-4567"}`)
	do(t, h, http.MethodPost, "/customers", `{"name":"Jane Doe","phone":"555-987-6543"}`)

	w := do(t, h, http.MethodGet, "/customers?q=jane", "")
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "Jane Doe" {
		t.Fatalf("unexpected search result: %v", got)
	}

	w = do(t, h, http.MethodGet, "/customers", "")
	got = nil
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(got))
	}
}
