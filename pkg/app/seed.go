package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/idgen"
	billingmodels "github.com/ghuser/cartshop/services/billing/domain/models"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
	customermodels "github.com/ghuser/cartshop/services/customer/domain/models"
)

// Seed loads the demo shop: two customers, two of each catalog kind and one
// paid bill for the first customer dated three days before now. Expects
// empty stores; seeded records take IDs 1 and 2 in each.
func Seed(ctx context.Context, s *Stores, ids idgen.Generator, now time.Time) error {
	customers := []customermodels.Customer{
		{Name: "John Smith", Phone: "555-123-4567", Email: "john@example.com", Address: "123 Main St"},
		{Name: "Jane Doe", Phone: "555-987-6543", Email: "jane@example.com", Address: "456 Oak Ave"},
	}
	for i := range customers {
		if err := s.Customers.Save(ctx, &customers[i]); err != nil {
			return err
		}
	}

	jobs := []catalogmodels.Job{
		{Description: "Lift Kit Install", HourlyRate: money("75"), EstimatedTime: 120},
		{Description: "Battery Replacement", HourlyRate: money("65"), EstimatedTime: 45},
	}
	for i := range jobs {
		if err := s.Jobs.Save(ctx, &jobs[i]); err != nil {
			return err
		}
	}

	for _, p := range []struct {
		name, cost, market, supplier string
		qty                          int
	}{
		{"Golf Cart Battery", "85", "120", "BatteryPlus", 10},
		{"Lift Kit Standard", "220", "350", "CartMods Inc", 5},
	} {
		part, err := catalogmodels.NewPart(p.name, money(p.cost), money(p.market), p.qty, p.supplier)
		if err != nil {
			return err
		}
		if err := s.Parts.Save(ctx, part); err != nil {
			return err
		}
	}

	inventory := []catalogmodels.InventoryItem{
		{Name: "Used Golf Cart - E-Z-GO", Type: catalogmodels.InventoryCart, Price: money("2800"), ForSale: true, QuantityOnHand: 1},
		{Name: "Wheel Set - Premium", Type: catalogmodels.InventoryPart, Price: money("240"), ForSale: true, QuantityOnHand: 3},
	}
	for i := range inventory {
		if err := s.Inventory.Save(ctx, &inventory[i]); err != nil {
			return err
		}
	}

	accessories := []catalogmodels.Accessory{
		{Name: "Premium Cup Holder", SalesPoint: "Perfect for drinks on the course!", Price: money("24.99"), QuantityOnHand: 15},
		{Name: "Folding Windshield", SalesPoint: "Protection from wind and debris", Price: money("89.95"), QuantityOnHand: 8},
	}
	for i := range accessories {
		if err := s.Accessories.Save(ctx, &accessories[i]); err != nil {
			return err
		}
	}

	items := []billingmodels.BillItem{
		{ID: ids.Next(), Type: catalogmodels.KindJob, Name: jobs[1].Description, Price: jobs[1].HourlyRate, Quantity: 1, OriginalItemID: jobs[1].ID},
		{ID: ids.Next(), Type: catalogmodels.KindPart, Name: "Golf Cart Battery", Price: money("120"), Quantity: 1, OriginalItemID: 1},
	}
	bill := &billingmodels.Bill{
		ID:         ids.Next(),
		CustomerID: customers[0].ID,
		Date:       now.Add(-3 * 24 * time.Hour),
		Items:      items,
		Total:      billingmodels.Total(items),
		Paid:       true,
	}
	if err := s.Bills.Append(ctx, bill); err != nil {
		return fmt.Errorf("seed bill: %w", err)
	}
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
