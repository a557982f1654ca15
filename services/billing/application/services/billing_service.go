package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/cartshop/pkg/idgen"
	"github.com/ghuser/cartshop/pkg/logger"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	domainevents "github.com/ghuser/cartshop/services/billing/domain/events"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	"github.com/ghuser/cartshop/services/billing/domain/repositories"
	domainsvcs "github.com/ghuser/cartshop/services/billing/domain/services"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
	customermodels "github.com/ghuser/cartshop/services/customer/domain/models"
)

// CustomerDirectory resolves customer IDs for selection.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id int64) (*customermodels.Customer, error)
}

// RecordLookup resolves (kind, id) catalog references.
type RecordLookup interface {
	Lookup(ctx context.Context, kind catalogmodels.Kind, id int64) (catalogmodels.Record, error)
}

// EventPublisher is satisfied by *events.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// BillingDeps are the collaborators of a BillingService.
type BillingDeps struct {
	Customers CustomerDirectory
	Catalog   RecordLookup
	Bills     repositories.BillRepository
	IDs       idgen.Generator
	Publisher EventPublisher // optional
	Policy    models.SwitchPolicy
	Clock     func() time.Time // defaults to time.Now
	Logger    logger.Logger
}

// SessionView is a point-in-time copy of the active session.
type SessionView struct {
	CustomerID  int64
	HasCustomer bool
	Items       []models.BillItem
	Total       decimal.Decimal
	Policy      models.SwitchPolicy
}

// BillingService owns the single active billing session of the process.
// Every operation runs under one mutex, so commit is atomic with respect
// to concurrent adds and removes.
type BillingService struct {
	mu      sync.Mutex
	session *models.Session

	customers CustomerDirectory
	catalog   RecordLookup
	bills     repositories.BillRepository
	ids       idgen.Generator
	publisher EventPublisher
	now       func() time.Time
	log       logger.Logger
	metrics   *billingMetrics
}

// NewBillingService returns a BillingService with an empty session.
func NewBillingService(deps BillingDeps) (*BillingService, error) {
	metrics, err := newBillingMetrics()
	if err != nil {
		return nil, err
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &BillingService{
		session:   models.NewSession(deps.Policy),
		customers: deps.Customers,
		catalog:   deps.Catalog,
		bills:     deps.Bills,
		ids:       deps.IDs,
		publisher: deps.Publisher,
		now:       clock,
		log:       deps.Logger,
		metrics:   metrics,
	}, nil
}

// SelectCustomer makes id the active customer. Unknown IDs are rejected
// with ErrCustomerNotFound and leave the session untouched.
func (s *BillingService) SelectCustomer(ctx context.Context, id int64) (SessionView, error) {
	if _, err := s.customers.GetByID(ctx, id); err != nil {
		return SessionView{}, fmt.Errorf("select customer: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.SelectCustomer(id)
	s.log.InfoContext(ctx, "customer selected", "customer_id", id, "policy", s.session.Policy())
	return s.viewLocked(), nil
}

// DeselectCustomer clears the active customer together with any pending items.
func (s *BillingService) DeselectCustomer(ctx context.Context) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := len(s.session.Items())
	s.session.DeselectCustomer()
	s.log.InfoContext(ctx, "customer deselected", "dropped_items", dropped)
	return s.viewLocked()
}

// AddRecord prices rec and appends it to the active bill with a fresh ID.
// It does not consult the record's ForSale flag; see AddCatalogItem.
func (s *BillingService) AddRecord(ctx context.Context, rec catalogmodels.Record, qty int) (models.BillItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.session.Customer(); !ok {
		return models.BillItem{}, billingdomain.ErrNoActiveCustomer
	}

	if qty < 1 {
		return models.BillItem{}, fmt.Errorf("%w: got %d", billingdomain.ErrInvalidQuantity, qty)
	}

	priced, err := domainsvcs.Price(rec)
	if err != nil {
		return models.BillItem{}, err
	}

	item := models.BillItem{
		ID:             s.ids.Next(),
		Type:           priced.Kind,
		Name:           priced.Name,
		Price:          priced.Price,
		Quantity:       qty,
		OriginalItemID: priced.OriginalID,
	}
	if err := s.session.Add(item); err != nil {
		return models.BillItem{}, err
	}

	s.metrics.itemAdded(ctx, item.Type, item.Quantity)
	s.log.InfoContext(ctx, "bill item added",
		"bill_item_id", item.ID, "kind", item.Type, "original_item_id", item.OriginalItemID, "quantity", item.Quantity)
	return item, nil
}

// AddCatalogItem looks up the record of the given kind and adds it. Inventory
// items flagged not for sale are rejected with ErrNotForSale.
func (s *BillingService) AddCatalogItem(ctx context.Context, kind catalogmodels.Kind, recordID int64, qty int) (models.BillItem, error) {
	ctx, span := tracer.Start(ctx, "billing.AddCatalogItem", trace.WithAttributes(
		attribute.String("catalog.kind", string(kind)),
		attribute.Int64("catalog.record_id", recordID),
	))
	defer span.End()

	if !s.hasCustomer() {
		return models.BillItem{}, billingdomain.ErrNoActiveCustomer
	}

	rec, err := s.catalog.Lookup(ctx, kind, recordID)
	if err != nil {
		return models.BillItem{}, fmt.Errorf("add %s %d: %w", kind, recordID, err)
	}
	if inv, ok := rec.(catalogmodels.InventoryItem); ok && !inv.ForSale {
		return models.BillItem{}, fmt.Errorf("%w: %s", billingdomain.ErrNotForSale, inv.Name)
	}
	return s.AddRecord(ctx, rec, qty)
}

// RemoveItem drops the bill item with the given ID. Unknown IDs are ignored.
func (s *BillingService) RemoveItem(ctx context.Context, billItemID int64) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Remove(billItemID) {
		s.log.InfoContext(ctx, "bill item removed", "bill_item_id", billItemID)
	}
	return s.viewLocked()
}

// Clear drops every pending item and keeps the active customer.
func (s *BillingService) Clear(ctx context.Context) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Clear()
	s.log.InfoContext(ctx, "active bill cleared")
	return s.viewLocked()
}

// Commit turns the session into an unpaid Bill, appends it to the ledger and
// clears the pending items. If the append fails the session is unchanged.
// A bill.created event is published afterwards; publish failures are logged
// and do not undo the commit.
func (s *BillingService) Commit(ctx context.Context, notes string) (*models.Bill, error) {
	ctx, span := tracer.Start(ctx, "billing.Commit")
	defer span.End()

	bill, err := s.commitLocked(ctx, notes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("bill.id", bill.ID), attribute.Int("bill.items", len(bill.Items)))

	s.metrics.billCommitted(ctx, bill)
	s.log.InfoContext(ctx, billingdomain.BillCreatedNotice,
		"bill_id", bill.ID, "customer_id", bill.CustomerID, "total", bill.Total.StringFixed(2), "items", len(bill.Items))
	s.publishCreated(ctx, bill)
	return bill, nil
}

func (s *BillingService) commitLocked(ctx context.Context, notes string) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.session.BuildBill(s.ids.Next(), s.now(), notes)
	if err != nil {
		return nil, err
	}
	if err := s.bills.Append(ctx, bill); err != nil {
		return nil, fmt.Errorf("commit bill: %w", err)
	}
	s.session.Clear()
	return bill, nil
}

// Snapshot returns the active customer, a copy of the pending items and
// their running total.
func (s *BillingService) Snapshot(_ context.Context) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *BillingService) hasCustomer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.session.Customer()
	return ok
}

func (s *BillingService) viewLocked() SessionView {
	id, ok := s.session.Customer()
	return SessionView{
		CustomerID:  id,
		HasCustomer: ok,
		Items:       s.session.Items(),
		Total:       s.session.Total(),
		Policy:      s.session.Policy(),
	}
}

func (s *BillingService) publishCreated(ctx context.Context, bill *models.Bill) {
	if s.publisher == nil {
		return
	}
	event := domainevents.NewBillCreatedEvent(bill)
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal bill created event", "error", err, "bill_id", bill.ID)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.publisher.Publish(ctx, domainevents.TopicBillCreated, msg); err != nil {
		s.log.ErrorContext(ctx, "publish bill created event", "error", err, "bill_id", bill.ID)
	}
}
