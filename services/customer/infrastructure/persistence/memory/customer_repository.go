package memory

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/memstore"
	customerdomain "github.com/ghuser/cartshop/services/customer/domain"
	"github.com/ghuser/cartshop/services/customer/domain/models"
)

// CustomerRepository implements repositories.CustomerRepository in process memory.
type CustomerRepository struct {
	table *memstore.Table[models.Customer]
}

// NewCustomerRepository returns an empty CustomerRepository. IDs start at 1.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		table: memstore.New(memstore.Schema[models.Customer]{
			ID:       func(c *models.Customer) int64 { return c.ID },
			SetID:    func(c *models.Customer, id int64) { c.ID = id },
			NotFound: customerdomain.ErrCustomerNotFound,
		}),
	}
}

// Save assigns the next ID to customer and stores it.
func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	if err := r.table.Insert(ctx, customer); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID returns ErrCustomerNotFound for unknown IDs.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	return r.table.Get(ctx, id)
}

// List returns all customers in insertion order.
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	return r.table.List(ctx)
}

// Search returns customers matching term, in insertion order.
func (r *CustomerRepository) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	return r.table.Filter(ctx, func(c *models.Customer) bool { return c.Matches(term) })
}
