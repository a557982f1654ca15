package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/cartshop/pkg/httpx"
)

func requestWithParam(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"1850000000000000000", 1850000000000000000, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := httpx.PathID(requestWithParam("id", tt.raw), "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQueryID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/bills?customer_id=7", http.NoBody)
	id, ok, err := httpx.QueryID(r, "customer_id")
	if err != nil || !ok || id != 7 {
		t.Fatalf("got (%d, %v, %v)", id, ok, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/bills", http.NoBody)
	if _, ok, err := httpx.QueryID(r, "customer_id"); ok || err != nil {
		t.Fatalf("absent param: ok=%v err=%v", ok, err)
	}

	r = httptest.NewRequest(http.MethodGet, "/bills?customer_id=x", http.NoBody)
	if _, _, err := httpx.QueryID(r, "customer_id"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}
