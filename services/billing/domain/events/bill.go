package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain/models"
)

// TopicBillCreated is the Watermill topic published when a bill is committed.
const TopicBillCreated = "bill.created"

// BillCreatedEvent is published after a new Bill is appended to the ledger.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicBillCreated).
type BillCreatedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	BillID     int64           `json:"bill_id,string"`
	CustomerID int64           `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewBillCreatedEvent builds the version 1 event for b.
func NewBillCreatedEvent(b *models.Bill) BillCreatedEvent {
	return BillCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BillID:     b.ID,
		CustomerID: b.CustomerID,
		Total:      b.Total,
		ItemCount:  b.ItemCount(),
		OccurredAt: b.Date,
	}
}
