package models

import (
	"errors"
	"testing"

	"github.com/ghuser/cartshop/services/customer/domain"
)

func TestNewCustomer(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		c, err := NewCustomer("  John Smith ", " 555-123-4567", "john@example.com ", "123 Main St")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Name != "John Smith" || c.Phone != "555-123-4567" || c.Email != "john@example.com" {
			t.Fatalf("fields not trimmed: %+v", c)
		}
		if c.ID != 0 {
			t.Fatalf("expected unassigned ID, got %d", c.ID)
		}
	})

	t.Run("email and address are optional", func(t *testing.T) {
		if _, err := NewCustomer("Jane Doe", "555-987-6543", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := NewCustomer("   ", "555", "", "")
		if !errors.Is(err, domain.ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("missing phone", func(t *testing.T) {
		_, err := NewCustomer("Jane", "", "", "")
		if !errors.Is(err, domain.ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})
}

func TestCustomer_Matches(t *testing.T) {
	c := &Customer{Name: "John Smith", Phone: "555-123-4567", Email: "John@Example.com"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"john", true},
		{"SMITH", true},
		{"example.COM", true},
		{"123-45", true},
		{"jane", false},
		{"999", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := c.Matches(tt.term); got != tt.want {
				t.Fatalf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}
