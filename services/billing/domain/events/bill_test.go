package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain/events"
	"github.com/ghuser/cartshop/services/billing/domain/models"
)

func TestNewBillCreatedEvent(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	bill := &models.Bill{
		ID:         1850000000000000001,
		CustomerID: 1,
		Date:       at,
		Items: []models.BillItem{
			{ID: 1, Name: "Battery Replacement", Price: decimal.NewFromInt(65), Quantity: 1},
			{ID: 2, Name: "Battery Pack", Price: decimal.NewFromInt(120), Quantity: 2},
		},
		Total: decimal.NewFromInt(305),
	}

	evt := events.NewBillCreatedEvent(bill)
	if evt.Version != 1 {
		t.Errorf("Version: got %d, want 1", evt.Version)
	}
	if evt.BillID != bill.ID || evt.CustomerID != 1 {
		t.Errorf("ids: got bill=%d customer=%d", evt.BillID, evt.CustomerID)
	}
	if evt.ItemCount != 3 {
		t.Errorf("ItemCount: got %d, want 3 units", evt.ItemCount)
	}
	if !evt.OccurredAt.Equal(at) {
		t.Errorf("OccurredAt: got %v, want %v", evt.OccurredAt, at)
	}

	other := events.NewBillCreatedEvent(bill)
	if other.EventID == evt.EventID {
		t.Error("each event must get its own EventID")
	}
}

func TestBillCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.NewBillCreatedEvent(&models.Bill{
		ID:         1850000000000000001,
		CustomerID: 2,
		Date:       time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		Items:      []models.BillItem{{Quantity: 1}},
		Total:      decimal.RequireFromString("185.00"),
	})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.BillCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.BillID != original.BillID {
		t.Errorf("BillID: got %d, want %d", decoded.BillID, original.BillID)
	}
	if !decoded.Total.Equal(original.Total) {
		t.Errorf("Total: got %s, want %s", decoded.Total, original.Total)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}
	for _, field := range []string{"event_id", "version", "bill_id", "customer_id", "total", "item_count", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if _, ok := raw["bill_id"].(string); !ok {
		t.Errorf("bill_id must be encoded as a string, got %T", raw["bill_id"])
	}
}
