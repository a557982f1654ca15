package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/memstore"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	"github.com/ghuser/cartshop/services/billing/domain/repositories"
)

var _ repositories.BillRepository = (*BillRepository)(nil)

func bill(id, customerID int64) *models.Bill {
	return &models.Bill{
		ID:         id,
		CustomerID: customerID,
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Items:      []models.BillItem{{ID: id * 10, Name: "Battery Pack", Price: decimal.NewFromInt(120), Quantity: 1}},
		Total:      decimal.NewFromInt(120),
	}
}

func TestBillRepository_AppendKeepsIDAndOrder(t *testing.T) {
	ctx := context.Background()
	r := NewBillRepository()

	for _, b := range []*models.Bill{bill(900, 1), bill(500, 2), bill(700, 1)} {
		if err := r.Append(ctx, b); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	list, _ := r.List(ctx)
	if len(list) != 3 || list[0].ID != 900 || list[1].ID != 500 || list[2].ID != 700 {
		t.Fatalf("expected commit order 900,500,700 got %+v", list)
	}

	if err := r.Append(ctx, bill(500, 3)); !errors.Is(err, memstore.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestBillRepository_FindByCustomer(t *testing.T) {
	ctx := context.Background()
	r := NewBillRepository()
	_ = r.Append(ctx, bill(1, 1))
	_ = r.Append(ctx, bill(2, 2))
	_ = r.Append(ctx, bill(3, 1))

	got, err := r.FindByCustomer(ctx, 1)
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected bills: %+v", got)
	}

	none, _ := r.FindByCustomer(ctx, 42)
	if len(none) != 0 {
		t.Fatalf("expected no bills, got %d", len(none))
	}
}

func TestBillRepository_SetPaidOnlyTouchesPaid(t *testing.T) {
	ctx := context.Background()
	r := NewBillRepository()
	orig := bill(1, 1)
	_ = r.Append(ctx, orig)

	updated, err := r.SetPaid(ctx, 1, true)
	if err != nil {
		t.Fatalf("SetPaid: %v", err)
	}
	if !updated.Paid {
		t.Fatal("expected paid=true")
	}

	got, _ := r.GetByID(ctx, 1)
	if !got.Paid || !got.Total.Equal(orig.Total) || len(got.Items) != 1 || !got.Date.Equal(orig.Date) {
		t.Fatalf("SetPaid changed more than Paid: %+v", got)
	}

	if _, err := r.SetPaid(ctx, 99, true); !errors.Is(err, billingdomain.ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestBillRepository_StoredBillsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := NewBillRepository()
	b := bill(1, 1)
	_ = r.Append(ctx, b)

	b.Items[0].Name = "changed after append"
	got, _ := r.GetByID(ctx, 1)
	got.Items[0].Price = decimal.NewFromInt(1)

	again, _ := r.GetByID(ctx, 1)
	if again.Items[0].Name != "Battery Pack" || !again.Items[0].Price.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("stored bill was mutated: %+v", again.Items[0])
	}
}
