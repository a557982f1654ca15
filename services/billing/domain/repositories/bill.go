package repositories

import (
	"context"

	"github.com/ghuser/cartshop/services/billing/domain/models"
)

// BillRepository is the ledger of committed bills. It is append-only apart
// from SetPaid. The domain layer owns this interface; infrastructure implements it.
type BillRepository interface {
	// Append stores a new bill under the ID it already carries.
	Append(ctx context.Context, bill *models.Bill) error
	// List returns bills in commit order.
	List(ctx context.Context) ([]*models.Bill, error)
	GetByID(ctx context.Context, id int64) (*models.Bill, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*models.Bill, error)
	// SetPaid toggles the paid flag and returns the updated bill.
	SetPaid(ctx context.Context, id int64, paid bool) (*models.Bill, error)
}
