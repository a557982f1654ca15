package services

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/cache"
	"github.com/ghuser/cartshop/pkg/logger"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	"github.com/ghuser/cartshop/services/billing/infrastructure/persistence/memory"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

func seedLedger(t *testing.T) (*memory.BillRepository, *models.Bill) {
	t.Helper()
	repo := memory.NewBillRepository()
	bill := &models.Bill{
		ID:         1850000000000000001,
		CustomerID: 1,
		Date:       time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		Items: []models.BillItem{
			{ID: 11, Type: catalogmodels.KindJob, Name: "Battery Replacement", Price: decimal.NewFromInt(65), Quantity: 1, OriginalItemID: 2},
			{ID: 12, Type: catalogmodels.KindPart, Name: "Golf Cart Battery", Price: decimal.NewFromInt(120), Quantity: 2, OriginalItemID: 1},
		},
	}
	bill.Total = models.Total(bill.Items)
	if err := repo.Append(context.Background(), bill); err != nil {
		t.Fatalf("Append: %v", err)
	}
	return repo, bill
}

func TestLedgerService_Summary_NoCache(t *testing.T) {
	repo, bill := seedLedger(t)
	svc := NewLedgerService(repo, nil, logger.Discard())

	got, err := svc.Summary(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.BillID != bill.ID || got.CustomerID != 1 {
		t.Errorf("unexpected summary %+v", got)
	}
	if got.ItemCount != 3 {
		t.Errorf("expected 3 units, got %d", got.ItemCount)
	}
	if !got.Total.Equal(decimal.NewFromInt(305)) {
		t.Errorf("expected total 305, got %s", got.Total)
	}

	if _, err := svc.Summary(context.Background(), 42); !errors.Is(err, billingdomain.ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestLedgerService_SetPaid(t *testing.T) {
	repo, bill := seedLedger(t)
	svc := NewLedgerService(repo, nil, logger.Discard())
	ctx := context.Background()

	updated, err := svc.SetPaid(ctx, bill.ID, true)
	if err != nil {
		t.Fatalf("SetPaid: %v", err)
	}
	if !updated.Paid {
		t.Fatal("expected paid bill")
	}

	got, err := svc.GetByID(ctx, bill.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Paid || !got.Total.Equal(bill.Total) || len(got.Items) != 2 {
		t.Fatalf("SetPaid must only flip the paid flag, got %+v", got)
	}

	if _, err := svc.SetPaid(ctx, 42, true); !errors.Is(err, billingdomain.ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}
}

func TestLedgerService_FindByCustomer(t *testing.T) {
	repo, bill := seedLedger(t)
	svc := NewLedgerService(repo, nil, logger.Discard())
	ctx := context.Background()

	bills, err := svc.FindByCustomer(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 || bills[0].ID != bill.ID {
		t.Fatalf("expected the seeded bill, got %v", bills)
	}

	none, err := svc.FindByCustomer(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no bills, got %d", len(none))
	}
}

// Integration tests below require a live Redis instance.
func TestLedgerService_SummaryCache(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	rc, err := cache.NewRedisClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	repo, bill := seedLedger(t)
	billCache := cache.NewBillCache(rc)
	t.Cleanup(func() { _ = billCache.Delete(ctx, bill.ID) })
	svc := NewLedgerService(repo, billCache, logger.Discard())

	if err := svc.WarmSummary(ctx, bill.ID); err != nil {
		t.Fatalf("WarmSummary: %v", err)
	}
	cached, err := billCache.Get(ctx, bill.ID)
	if err != nil {
		t.Fatalf("expected warmed entry: %v", err)
	}
	if cached.Paid {
		t.Fatal("warmed summary should be unpaid")
	}

	if _, err := svc.SetPaid(ctx, bill.ID, true); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Summary(ctx, bill.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Paid {
		t.Fatal("SetPaid must invalidate the cached summary")
	}
}
