package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// BillSummaryTTL is the time-to-live for cached bill summaries.
	BillSummaryTTL = 24 * time.Hour

	billSummaryKeyPrefix = "bill:summary"
)

// CachedBillSummary is the read model stored in Redis for one committed bill.
type CachedBillSummary struct {
	BillID     int64
	CustomerID int64
	Date       time.Time
	Total      decimal.Decimal
	ItemCount  int
	Paid       bool
}

// BillCache reads and writes bill summaries as Redis hashes.
// Key format: "bill:summary:{billID}"
//
// A nil *BillCache is valid and behaves as an always-empty cache, so callers
// need not check whether Redis is configured.
type BillCache struct {
	client *RedisClient
}

// NewBillCache returns a BillCache backed by r, or nil when r is nil.
func NewBillCache(r *RedisClient) *BillCache {
	if r == nil {
		return nil
	}
	return &BillCache{client: r}
}

// Get returns redis.Nil when the summary is absent, expired or the cache is disabled.
func (c *BillCache) Get(ctx context.Context, billID int64) (*CachedBillSummary, error) {
	if c == nil {
		return nil, redis.Nil
	}
	vals, err := c.client.Client().HGetAll(ctx, c.key(billID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return parseSummary(vals)
}

// Set writes the summary with a 24-hour TTL in one pipeline.
func (c *BillCache) Set(ctx context.Context, s *CachedBillSummary) error {
	if c == nil {
		return nil
	}
	key := c.key(s.BillID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"bill_id", strconv.FormatInt(s.BillID, 10),
		"customer_id", strconv.FormatInt(s.CustomerID, 10),
		"date", s.Date.UTC().Format(time.RFC3339Nano),
		"total", s.Total.String(),
		"item_count", strconv.Itoa(s.ItemCount),
		"paid", strconv.FormatBool(s.Paid),
	)
	pipe.Expire(ctx, key, BillSummaryTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached summary.
func (c *BillCache) Delete(ctx context.Context, billID int64) error {
	if c == nil {
		return nil
	}
	if err := c.client.Client().Del(ctx, c.key(billID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *BillCache) key(billID int64) string {
	return fmt.Sprintf("%s:%d", billSummaryKeyPrefix, billID)
}

func parseSummary(vals map[string]string) (*CachedBillSummary, error) {
	var (
		s   CachedBillSummary
		err error
	)
	if s.BillID, err = strconv.ParseInt(vals["bill_id"], 10, 64); err != nil {
		return nil, fmt.Errorf("cache parse bill_id: %w", err)
	}
	if s.CustomerID, err = strconv.ParseInt(vals["customer_id"], 10, 64); err != nil {
		return nil, fmt.Errorf("cache parse customer_id: %w", err)
	}
	if s.Date, err = time.Parse(time.RFC3339Nano, vals["date"]); err != nil {
		return nil, fmt.Errorf("cache parse date: %w", err)
	}
	if s.Total, err = decimal.NewFromString(vals["total"]); err != nil {
		return nil, fmt.Errorf("cache parse total: %w", err)
	}
	if s.ItemCount, err = strconv.Atoi(vals["item_count"]); err != nil {
		return nil, fmt.Errorf("cache parse item_count: %w", err)
	}
	if s.Paid, err = strconv.ParseBool(vals["paid"]); err != nil {
		return nil, fmt.Errorf("cache parse paid: %w", err)
	}
	return &s, nil
}
