package services

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/pkg/cache"
	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	"github.com/ghuser/cartshop/services/billing/domain/repositories"
)

// BillSummary is the compact read model served from the cache when possible.
type BillSummary struct {
	BillID     int64
	CustomerID int64
	Date       time.Time
	Total      decimal.Decimal
	ItemCount  int
	Paid       bool
}

// LedgerService reads committed bills and records payments.
type LedgerService struct {
	bills repositories.BillRepository
	cache *cache.BillCache // nil disables caching
	log   logger.Logger
}

// NewLedgerService creates a new LedgerService. billCache may be nil.
func NewLedgerService(bills repositories.BillRepository, billCache *cache.BillCache, log logger.Logger) *LedgerService {
	return &LedgerService{bills: bills, cache: billCache, log: log}
}

// List returns every bill in commit order.
func (s *LedgerService) List(ctx context.Context) ([]*models.Bill, error) {
	return s.bills.List(ctx)
}

// GetByID returns one bill or ErrBillNotFound.
func (s *LedgerService) GetByID(ctx context.Context, id int64) (*models.Bill, error) {
	return s.bills.GetByID(ctx, id)
}

// FindByCustomer returns the customer's bills in commit order.
func (s *LedgerService) FindByCustomer(ctx context.Context, customerID int64) ([]*models.Bill, error) {
	return s.bills.FindByCustomer(ctx, customerID)
}

// SetPaid records whether a bill has been paid and drops its cached summary.
func (s *LedgerService) SetPaid(ctx context.Context, id int64, paid bool) (*models.Bill, error) {
	bill, err := s.bills.SetPaid(ctx, id, paid)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "bill summary cache invalidation failed", "error", err, "bill_id", id)
	}
	s.log.InfoContext(ctx, "bill payment updated", "bill_id", id, "paid", paid)
	return bill, nil
}

// Summary returns the bill summary, reading through the cache.
// On a miss it loads from the ledger and populates the cache.
func (s *LedgerService) Summary(ctx context.Context, id int64) (*BillSummary, error) {
	cached, err := s.cache.Get(ctx, id)
	if err == nil {
		return fromCached(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		s.log.WarnContext(ctx, "bill summary cache read failed", "error", err, "bill_id", id)
	}

	bill, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := summarize(bill)
	s.store(ctx, summary)
	return summary, nil
}

// WarmSummary loads a bill and writes its summary to the cache.
func (s *LedgerService) WarmSummary(ctx context.Context, id int64) error {
	bill, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, toCached(summarize(bill)))
}

func (s *LedgerService) store(ctx context.Context, summary *BillSummary) {
	if err := s.cache.Set(ctx, toCached(summary)); err != nil {
		s.log.WarnContext(ctx, "bill summary cache write failed", "error", err, "bill_id", summary.BillID)
	}
}

func summarize(b *models.Bill) *BillSummary {
	return &BillSummary{
		BillID:     b.ID,
		CustomerID: b.CustomerID,
		Date:       b.Date,
		Total:      b.Total,
		ItemCount:  b.ItemCount(),
		Paid:       b.Paid,
	}
}

func toCached(s *BillSummary) *cache.CachedBillSummary {
	return &cache.CachedBillSummary{
		BillID:     s.BillID,
		CustomerID: s.CustomerID,
		Date:       s.Date,
		Total:      s.Total,
		ItemCount:  s.ItemCount,
		Paid:       s.Paid,
	}
}

func fromCached(c *cache.CachedBillSummary) *BillSummary {
	return &BillSummary{
		BillID:     c.BillID,
		CustomerID: c.CustomerID,
		Date:       c.Date,
		Total:      c.Total,
		ItemCount:  c.ItemCount,
		Paid:       c.Paid,
	}
}
