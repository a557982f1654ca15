package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

func item(id int64, price string, qty int) BillItem {
	return BillItem{
		ID:       id,
		Type:     catalogmodels.KindPart,
		Name:     "item",
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestParseSwitchPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    SwitchPolicy
		wantErr bool
	}{
		{"", SwitchPreserve, false},
		{"preserve", SwitchPreserve, false},
		{"DETACH", SwitchDetach, false},
		{"keep", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSwitchPolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSwitchPolicy(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestSession_AddRequiresCustomer(t *testing.T) {
	s := NewSession(SwitchPreserve)

	err := s.Add(item(1, "10", 1))
	if !errors.Is(err, domain.ErrNoActiveCustomer) {
		t.Fatalf("expected ErrNoActiveCustomer, got %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatal("rejected add must not change items")
	}
}

func TestSession_AddRejectsQuantityBelowOne(t *testing.T) {
	s := NewSession(SwitchPreserve)
	s.SelectCustomer(1)

	for _, qty := range []int{0, -1} {
		if err := s.Add(item(1, "10", qty)); !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("qty %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
	if len(s.Items()) != 0 {
		t.Fatal("rejected add must not change items")
	}
}

func TestSession_RunningTotal(t *testing.T) {
	s := NewSession(SwitchPreserve)
	s.SelectCustomer(1)
	_ = s.Add(item(1, "65", 1))
	_ = s.Add(item(2, "12.99", 3))

	if want := decimal.RequireFromString("103.97"); !s.Total().Equal(want) {
		t.Fatalf("Total = %s, want %s", s.Total(), want)
	}
}

func TestSession_Remove(t *testing.T) {
	s := NewSession(SwitchPreserve)
	s.SelectCustomer(1)
	_ = s.Add(item(1, "10", 1))
	_ = s.Add(item(2, "20", 1))
	_ = s.Add(item(3, "30", 1))

	if !s.Remove(2) {
		t.Fatal("expected item 2 to be removed")
	}
	if s.Remove(2) {
		t.Fatal("second remove of the same id must be a no-op")
	}
	if s.Remove(99) {
		t.Fatal("remove of unknown id must be a no-op")
	}

	got := s.Items()
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected items after remove: %+v", got)
	}
}

func TestSession_ItemsReturnsCopy(t *testing.T) {
	s := NewSession(SwitchPreserve)
	s.SelectCustomer(1)
	_ = s.Add(item(1, "10", 1))

	items := s.Items()
	items[0].Name = "mutated"

	if s.Items()[0].Name != "item" {
		t.Fatal("session items changed through returned slice")
	}
}

func TestSession_SwitchPolicy(t *testing.T) {
	tests := []struct {
		policy       SwitchPolicy
		switchTo     func(*Session)
		wantItems    int
		wantCustomer bool
	}{
		{SwitchPreserve, func(s *Session) { s.SelectCustomer(2) }, 1, true},
		{SwitchPreserve, func(s *Session) { s.DeselectCustomer() }, 0, false},
		{SwitchPreserve, func(s *Session) { s.SelectCustomer(1) }, 1, true},
		{SwitchDetach, func(s *Session) { s.SelectCustomer(2) }, 0, true},
		{SwitchDetach, func(s *Session) { s.DeselectCustomer() }, 0, false},
		{SwitchDetach, func(s *Session) { s.SelectCustomer(1) }, 1, true},
	}
	for i, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			s := NewSession(tt.policy)
			s.SelectCustomer(1)
			_ = s.Add(item(1, "10", 1))

			tt.switchTo(s)

			if n := len(s.Items()); n != tt.wantItems {
				t.Fatalf("case %d: expected %d items, got %d", i, tt.wantItems, n)
			}
			if _, ok := s.Customer(); ok != tt.wantCustomer {
				t.Fatalf("case %d: customer active = %v, want %v", i, ok, tt.wantCustomer)
			}
		})
	}
}

func TestSession_DeselectDropsItems(t *testing.T) {
	for _, policy := range []SwitchPolicy{SwitchPreserve, SwitchDetach} {
		t.Run(string(policy), func(t *testing.T) {
			s := NewSession(policy)
			s.SelectCustomer(1)
			_ = s.Add(item(1, "10", 2))
			_ = s.Add(item(2, "5", 1))

			s.DeselectCustomer()

			if _, ok := s.Customer(); ok {
				t.Fatal("customer still active after deselect")
			}
			if n := len(s.Items()); n != 0 {
				t.Fatalf("expected no pending items without a customer, got %d", n)
			}
			if !s.Total().IsZero() {
				t.Fatalf("expected zero total, got %s", s.Total())
			}

			s.SelectCustomer(1)
			if n := len(s.Items()); n != 0 {
				t.Fatalf("reselecting must not restore items, got %d", n)
			}
		})
	}
}

func TestSession_PreservedItemsBillToNewCustomer(t *testing.T) {
	s := NewSession(SwitchPreserve)
	s.SelectCustomer(1)
	_ = s.Add(item(1, "50", 1))
	s.SelectCustomer(2)

	b, err := s.BuildBill(100, time.Now(), "")
	if err != nil {
		t.Fatalf("BuildBill: %v", err)
	}
	if b.CustomerID != 2 || len(b.Items) != 1 {
		t.Fatalf("unexpected bill: %+v", b)
	}
}

func TestSession_BuildBill(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("no customer", func(t *testing.T) {
		s := NewSession(SwitchPreserve)
		if _, err := s.BuildBill(1, at, ""); !errors.Is(err, domain.ErrNothingToBill) {
			t.Fatalf("expected ErrNothingToBill, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		s := NewSession(SwitchPreserve)
		s.SelectCustomer(1)
		if _, err := s.BuildBill(1, at, ""); !errors.Is(err, domain.ErrNothingToBill) {
			t.Fatalf("expected ErrNothingToBill, got %v", err)
		}
	})

	t.Run("snapshot", func(t *testing.T) {
		s := NewSession(SwitchPreserve)
		s.SelectCustomer(1)
		_ = s.Add(item(1, "65", 1))
		_ = s.Add(item(2, "120", 1))

		b, err := s.BuildBill(7, at, "  call when ready ")
		if err != nil {
			t.Fatalf("BuildBill: %v", err)
		}
		if b.ID != 7 || b.CustomerID != 1 || !b.Date.Equal(at) || b.Paid {
			t.Fatalf("unexpected bill header: %+v", b)
		}
		if !b.Total.Equal(decimal.RequireFromString("185.00")) {
			t.Fatalf("Total = %s, want 185.00", b.Total)
		}
		if b.Notes != "call when ready" {
			t.Fatalf("notes not trimmed: %q", b.Notes)
		}
		if len(s.Items()) != 2 {
			t.Fatal("BuildBill must not clear the session")
		}

		s.Clear()
		if len(b.Items) != 2 {
			t.Fatal("clearing the session must not affect the built bill")
		}
	})
}

func TestBill_CloneAndCount(t *testing.T) {
	b := Bill{Items: []BillItem{item(1, "10", 2), item(2, "5", 3)}}
	c := b.Clone()
	c.Items[0].Name = "changed"

	if b.Items[0].Name != "item" {
		t.Fatal("Clone shares the Items backing array")
	}
	if b.ItemCount() != 5 {
		t.Fatalf("ItemCount = %d, want 5", b.ItemCount())
	}
	if !Total(b.Items).Equal(decimal.NewFromInt(35)) {
		t.Fatalf("Total = %s, want 35", Total(b.Items))
	}
}
