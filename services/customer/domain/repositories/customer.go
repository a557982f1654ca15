package repositories

import (
	"context"

	"github.com/ghuser/cartshop/services/customer/domain/models"
)

// CustomerRepository is the store interface for customers.
// The domain layer owns this interface; infrastructure implements it.
type CustomerRepository interface {
	// Save inserts a new customer and assigns its ID.
	Save(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)

	// Search returns customers matching the selector term (see Customer.Matches).
	Search(ctx context.Context, term string) ([]*models.Customer, error)
}
