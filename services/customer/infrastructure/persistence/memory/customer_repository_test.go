package memory

import (
	"context"
	"errors"
	"testing"

	customerdomain "github.com/ghuser/cartshop/services/customer/domain"
	"github.com/ghuser/cartshop/services/customer/domain/models"
)

func seed(t *testing.T, r *CustomerRepository) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []*models.Customer{
		{Name: "John Smith", Phone: "555-123-4567", Email: "john@example.com"},
		{Name: "Jane Doe", Phone: "555-987-6543", Email: "jane@example.com"},
	} {
		if err := r.Save(ctx, c); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
}

func TestCustomerRepository_SaveAssignsSequentialIDs(t *testing.T) {
	r := NewCustomerRepository()
	seed(t, r)

	list, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", list[0].ID, list[1].ID)
	}
}

func TestCustomerRepository_GetByID(t *testing.T) {
	r := NewCustomerRepository()
	seed(t, r)
	ctx := context.Background()

	c, err := r.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Name != "Jane Doe" {
		t.Fatalf("unexpected customer: %+v", c)
	}

	_, err = r.GetByID(ctx, 99)
	if !errors.Is(err, customerdomain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_ReturnedValuesAreCopies(t *testing.T) {
	r := NewCustomerRepository()
	seed(t, r)
	ctx := context.Background()

	c, _ := r.GetByID(ctx, 1)
	c.Name = "Mutated"

	again, _ := r.GetByID(ctx, 1)
	if again.Name != "John Smith" {
		t.Fatalf("stored customer changed through returned pointer: %q", again.Name)
	}
}

func TestCustomerRepository_Search(t *testing.T) {
	r := NewCustomerRepository()
	seed(t, r)

	tests := []struct {
		term    string
		wantIDs []int64
	}{
		{"", []int64{1, 2}},
		{"JANE", []int64{2}},
		{"example.com", []int64{1, 2}},
		{"123-4567", []int64{1}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got, err := r.Search(context.Background(), tt.term)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tt.wantIDs), len(got))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Fatalf("result %d: expected id %d, got %d", i, tt.wantIDs[i], c.ID)
				}
			}
		})
	}
}
