package memory

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/memstore"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	"github.com/ghuser/cartshop/services/billing/domain/models"
)

// BillRepository implements repositories.BillRepository in process memory.
type BillRepository struct {
	table *memstore.Table[models.Bill]
}

// NewBillRepository returns an empty ledger.
func NewBillRepository() *BillRepository {
	return &BillRepository{
		table: memstore.New(memstore.Schema[models.Bill]{
			ID:       func(b *models.Bill) int64 { return b.ID },
			SetID:    func(b *models.Bill, id int64) { b.ID = id },
			Clone:    models.Bill.Clone,
			NotFound: billingdomain.ErrBillNotFound,
		}),
	}
}

// Append stores bill. Returns memstore.ErrDuplicateID if the ID is taken.
func (r *BillRepository) Append(ctx context.Context, bill *models.Bill) error {
	if err := r.table.InsertWithID(ctx, bill); err != nil {
		return fmt.Errorf("append bill: %w", err)
	}
	return nil
}

func (r *BillRepository) List(ctx context.Context) ([]*models.Bill, error) {
	return r.table.List(ctx)
}

// GetByID returns ErrBillNotFound for unknown IDs.
func (r *BillRepository) GetByID(ctx context.Context, id int64) (*models.Bill, error) {
	return r.table.Get(ctx, id)
}

func (r *BillRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*models.Bill, error) {
	return r.table.Filter(ctx, func(b *models.Bill) bool { return b.CustomerID == customerID })
}

// SetPaid changes only the Paid flag.
func (r *BillRepository) SetPaid(ctx context.Context, id int64, paid bool) (*models.Bill, error) {
	return r.table.Mutate(ctx, id, func(b *models.Bill) error {
		b.Paid = paid
		return nil
	})
}
