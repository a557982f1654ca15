package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain"
)

// SwitchPolicy decides what happens to pending items when one customer is
// swapped for another. Deselecting always drops them.
type SwitchPolicy string

const (
	// SwitchPreserve keeps pending items; they bill to whoever is selected at commit.
	SwitchPreserve SwitchPolicy = "preserve"
	// SwitchDetach clears pending items whenever the active customer changes.
	SwitchDetach SwitchPolicy = "detach"
)

// ParseSwitchPolicy accepts "preserve" or "detach". Empty means preserve.
func ParseSwitchPolicy(s string) (SwitchPolicy, error) {
	switch p := SwitchPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", SwitchPreserve:
		return SwitchPreserve, nil
	case SwitchDetach:
		return SwitchDetach, nil
	default:
		return "", fmt.Errorf("unknown customer switch policy %q", s)
	}
}

// Session is the bill under construction: an optional active customer and
// the pending items. It is not safe for concurrent use.
type Session struct {
	policy     SwitchPolicy
	customerID int64
	hasCust    bool
	items      []BillItem
}

// NewSession returns an empty session using the given switch policy.
func NewSession(policy SwitchPolicy) *Session {
	return &Session{policy: policy}
}

// Policy reports the session's switch policy.
func (s *Session) Policy() SwitchPolicy { return s.policy }

// Customer returns the active customer, if any.
func (s *Session) Customer() (int64, bool) {
	return s.customerID, s.hasCust
}

// SelectCustomer makes id the active customer.
func (s *Session) SelectCustomer(id int64) {
	if s.hasCust && s.customerID == id {
		return
	}
	s.switched()
	s.customerID, s.hasCust = id, true
}

// DeselectCustomer clears the active customer and drops pending items under
// every policy, since items cannot exist without a customer.
func (s *Session) DeselectCustomer() {
	s.items = nil
	s.customerID, s.hasCust = 0, false
}

func (s *Session) switched() {
	if s.policy == SwitchDetach {
		s.items = nil
	}
}

// Add appends item. It fails without changing state when no customer is
// active or the quantity is below 1.
func (s *Session) Add(item BillItem) error {
	if !s.hasCust {
		return domain.ErrNoActiveCustomer
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, item.Quantity)
	}
	s.items = append(s.items, item)
	return nil
}

// Remove drops the item with the given id. It reports whether one was found;
// an unknown id leaves the session unchanged.
func (s *Session) Remove(itemID int64) bool {
	i := slices.IndexFunc(s.items, func(it BillItem) bool { return it.ID == itemID })
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Clear drops every pending item. The active customer is kept.
func (s *Session) Clear() {
	s.items = nil
}

// Items returns a copy of the pending items in insertion order.
func (s *Session) Items() []BillItem {
	return slices.Clone(s.items)
}

// Total is the running total of the pending items.
func (s *Session) Total() decimal.Decimal {
	return Total(s.items)
}

// BuildBill snapshots the session into an unpaid Bill. The session itself
// is not modified; callers clear it once the bill is stored.
func (s *Session) BuildBill(id int64, at time.Time, notes string) (*Bill, error) {
	if !s.hasCust || len(s.items) == 0 {
		return nil, domain.ErrNothingToBill
	}
	items := slices.Clone(s.items)
	return &Bill{
		ID:         id,
		CustomerID: s.customerID,
		Date:       at,
		Items:      items,
		Total:      Total(items),
		Paid:       false,
		Notes:      strings.TrimSpace(notes),
	}, nil
}
