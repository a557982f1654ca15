package services

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/logger"
	catalogdomain "github.com/ghuser/cartshop/services/catalog/domain"
	"github.com/ghuser/cartshop/services/catalog/domain/models"
	"github.com/ghuser/cartshop/services/catalog/domain/repositories"
)

// CatalogService groups the four catalog collections and resolves
// (kind, id) references for billing.
type CatalogService struct {
	Jobs        *RecordService[models.Job]
	Parts       *RecordService[models.Part]
	Inventory   *RecordService[models.InventoryItem]
	Accessories *RecordService[models.Accessory]
}

// Catalog is a point-in-time listing of every collection.
type Catalog struct {
	Jobs        []*models.Job
	Parts       []*models.Part
	Inventory   []*models.InventoryItem
	Accessories []*models.Accessory
}

// NewCatalogService wires a CatalogService over the given repositories.
func NewCatalogService(
	jobs repositories.JobRepository,
	parts repositories.PartRepository,
	inventory repositories.InventoryRepository,
	accessories repositories.AccessoryRepository,
	log logger.Logger,
) *CatalogService {
	return &CatalogService{
		Jobs:        NewRecordService(models.KindJob, jobs, log),
		Parts:       NewRecordService(models.KindPart, parts, log),
		Inventory:   NewRecordService(models.KindInventory, inventory, log),
		Accessories: NewRecordService(models.KindAccessory, accessories, log),
	}
}

// Lookup returns a copy of the record of the given kind. It returns
// ErrRecordNotFound for unknown ids and ErrUnknownKind for unknown kinds.
func (s *CatalogService) Lookup(ctx context.Context, kind models.Kind, id int64) (models.Record, error) {
	switch kind {
	case models.KindJob:
		return lookup(ctx, s.Jobs, id)
	case models.KindPart:
		return lookup(ctx, s.Parts, id)
	case models.KindInventory:
		return lookup(ctx, s.Inventory, id)
	case models.KindAccessory:
		return lookup(ctx, s.Accessories, id)
	}
	return nil, fmt.Errorf("%w: %q", catalogdomain.ErrUnknownKind, kind)
}

func lookup[T models.Record](ctx context.Context, svc *RecordService[T], id int64) (models.Record, error) {
	rec, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

// Listing returns every collection in insertion order.
func (s *CatalogService) Listing(ctx context.Context) (*Catalog, error) {
	var (
		c   Catalog
		err error
	)
	if c.Jobs, err = s.Jobs.List(ctx); err != nil {
		return nil, err
	}
	if c.Parts, err = s.Parts.List(ctx); err != nil {
		return nil, err
	}
	if c.Inventory, err = s.Inventory.List(ctx); err != nil {
		return nil, err
	}
	if c.Accessories, err = s.Accessories.List(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}
