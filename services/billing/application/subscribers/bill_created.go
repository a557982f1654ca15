// Package subscribers holds billing's domain event handlers. The event bus is
// in-process, so they run inside the API process rather than a worker.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/services/billing/application/services"
	domainevents "github.com/ghuser/cartshop/services/billing/domain/events"
)

// Subscriber is satisfied by *events.EventBus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Register wires all billing event handlers and drains their error channels.
// Handlers stop when ctx is cancelled or the bus is closed.
func Register(ctx context.Context, bus Subscriber, svcs *services.Services, log logger.Logger) error {
	errCh, err := bus.Subscribe(ctx, domainevents.TopicBillCreated, HandleBillCreated(svcs.Ledger, log))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			log.ErrorContext(ctx, "subscriber error",
				"topic", domainevents.TopicBillCreated,
				"error", err,
			)
		}
	}()

	log.Info("event subscribers registered", "topics", []string{domainevents.TopicBillCreated})
	return nil
}

// HandleBillCreated returns a handler for bill.created events.
// Handlers must be idempotent: EventBus retries up to 3x on failure.
// Warms the bill summary cache so the first summary read is a hit.
func HandleBillCreated(ledger *services.LedgerService, log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.BillCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", domainevents.TopicBillCreated, err)
		}

		if err := ledger.WarmSummary(ctx, evt.BillID); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			log.WarnContext(ctx, "cache warm failed for bill.created",
				"bill_id", evt.BillID, "error", err)
			return nil
		}

		log.InfoContext(ctx, "bill summary cached",
			"bill_id", evt.BillID, "customer_id", evt.CustomerID, "total", evt.Total.StringFixed(2))
		return nil
	}
}
