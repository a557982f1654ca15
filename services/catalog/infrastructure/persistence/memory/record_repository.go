package memory

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/memstore"
	catalogdomain "github.com/ghuser/cartshop/services/catalog/domain"
	"github.com/ghuser/cartshop/services/catalog/domain/models"
)

// RecordRepository implements repositories.RecordRepository[T] in process memory.
type RecordRepository[T any] struct {
	table *memstore.Table[T]
	setID func(*T, int64)
	noun  string
}

func newRecordRepository[T any](noun string, schema memstore.Schema[T]) *RecordRepository[T] {
	schema.NotFound = catalogdomain.ErrRecordNotFound
	return &RecordRepository[T]{table: memstore.New(schema), setID: schema.SetID, noun: noun}
}

// NewJobRepository returns an empty job store.
func NewJobRepository() *RecordRepository[models.Job] {
	return newRecordRepository("job", memstore.Schema[models.Job]{
		ID:    func(j *models.Job) int64 { return j.ID },
		SetID: func(j *models.Job, id int64) { j.ID = id },
		Clone: models.Job.Clone,
	})
}

// NewPartRepository returns an empty part store.
func NewPartRepository() *RecordRepository[models.Part] {
	return newRecordRepository("part", memstore.Schema[models.Part]{
		ID:    func(p *models.Part) int64 { return p.ID },
		SetID: func(p *models.Part, id int64) { p.ID = id },
	})
}

// NewInventoryRepository returns an empty inventory store.
func NewInventoryRepository() *RecordRepository[models.InventoryItem] {
	return newRecordRepository("inventory item", memstore.Schema[models.InventoryItem]{
		ID:    func(i *models.InventoryItem) int64 { return i.ID },
		SetID: func(i *models.InventoryItem, id int64) { i.ID = id },
	})
}

// NewAccessoryRepository returns an empty accessory store.
func NewAccessoryRepository() *RecordRepository[models.Accessory] {
	return newRecordRepository("accessory", memstore.Schema[models.Accessory]{
		ID:    func(a *models.Accessory) int64 { return a.ID },
		SetID: func(a *models.Accessory, id int64) { a.ID = id },
	})
}

func (r *RecordRepository[T]) Save(ctx context.Context, rec *T) error {
	if err := r.table.Insert(ctx, rec); err != nil {
		return fmt.Errorf("insert %s: %w", r.noun, err)
	}
	return nil
}

// GetByID returns ErrRecordNotFound for unknown IDs.
func (r *RecordRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	rec, err := r.table.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.noun, err)
	}
	return rec, nil
}

func (r *RecordRepository[T]) List(ctx context.Context) ([]*T, error) {
	return r.table.List(ctx)
}

func (r *RecordRepository[T]) Update(ctx context.Context, id int64, rec *T) error {
	r.setID(rec, id)
	if err := r.table.Update(ctx, rec); err != nil {
		return fmt.Errorf("%s: %w", r.noun, err)
	}
	return nil
}

func (r *RecordRepository[T]) Delete(ctx context.Context, id int64) error {
	if err := r.table.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", r.noun, err)
	}
	return nil
}
