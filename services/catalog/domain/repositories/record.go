package repositories

import (
	"context"

	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// RecordRepository is the store interface shared by the four catalog collections.
// The domain layer owns this interface; infrastructure implements it.
type RecordRepository[T any] interface {
	// Save inserts a new record and assigns its ID.
	Save(ctx context.Context, rec *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]*T, error)
	// Update replaces the record stored under id. rec's own ID is overwritten.
	Update(ctx context.Context, id int64, rec *T) error
	Delete(ctx context.Context, id int64) error
}

type (
	JobRepository       = RecordRepository[models.Job]
	PartRepository      = RecordRepository[models.Part]
	InventoryRepository = RecordRepository[models.InventoryItem]
	AccessoryRepository = RecordRepository[models.Accessory]
)
