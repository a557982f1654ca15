package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/idgen"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := NewStores()
	ids, err := idgen.NewSnowflake(1)
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}
	now := time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC)

	if err := Seed(ctx, s, ids, now); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	customers, _ := s.Customers.List(ctx)
	jobs, _ := s.Jobs.List(ctx)
	parts, _ := s.Parts.List(ctx)
	inventory, _ := s.Inventory.List(ctx)
	accessories, _ := s.Accessories.List(ctx)
	bills, _ := s.Bills.List(ctx)

	counts := map[string]int{
		"customers":   len(customers),
		"jobs":        len(jobs),
		"parts":       len(parts),
		"inventory":   len(inventory),
		"accessories": len(accessories),
	}
	for name, n := range counts {
		if n != 2 {
			t.Errorf("%s: expected 2 seeded records, got %d", name, n)
		}
	}

	if customers[0].ID != 1 || customers[0].Name != "John Smith" {
		t.Errorf("unexpected first customer: %+v", customers[0])
	}
	if !parts[0].Markup.Equal(decimal.RequireFromString("41.18")) {
		t.Errorf("battery markup: got %s, want 41.18", parts[0].Markup)
	}

	if len(bills) != 1 {
		t.Fatalf("expected 1 seeded bill, got %d", len(bills))
	}
	b := bills[0]
	if b.CustomerID != 1 || !b.Paid || len(b.Items) != 2 {
		t.Errorf("unexpected seeded bill: %+v", b)
	}
	if !b.Total.Equal(decimal.NewFromInt(185)) {
		t.Errorf("seeded bill total: got %s, want 185", b.Total)
	}
	if !b.Date.Equal(now.Add(-72 * time.Hour)) {
		t.Errorf("seeded bill date: got %v", b.Date)
	}
}
