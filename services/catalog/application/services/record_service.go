package services

import (
	"context"
	"fmt"

	"github.com/ghuser/cartshop/pkg/logger"
	"github.com/ghuser/cartshop/services/catalog/domain/models"
	"github.com/ghuser/cartshop/services/catalog/domain/repositories"
)

// RecordService manages one catalog collection. Callers build records
// through the model constructors, which validate them.
type RecordService[T any] struct {
	kind models.Kind
	repo repositories.RecordRepository[T]
	log  logger.Logger
}

// NewRecordService returns a RecordService for the collection of the given kind.
func NewRecordService[T any](kind models.Kind, repo repositories.RecordRepository[T], log logger.Logger) *RecordService[T] {
	return &RecordService[T]{kind: kind, repo: repo, log: log}
}

// Kind reports which collection this service manages.
func (s *RecordService[T]) Kind() models.Kind { return s.kind }

func (s *RecordService[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save %s: %w", s.kind, err)
	}
	s.log.InfoContext(ctx, "catalog record created", "kind", s.kind)
	return rec, nil
}

func (s *RecordService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.kind, err)
	}
	return rec, nil
}

func (s *RecordService[T]) List(ctx context.Context) ([]*T, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return recs, nil
}

// Update replaces the record stored under id. Bill items already priced
// from the old record keep their snapshot values.
func (s *RecordService[T]) Update(ctx context.Context, id int64, rec *T) (*T, error) {
	if err := s.repo.Update(ctx, id, rec); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.kind, err)
	}
	s.log.InfoContext(ctx, "catalog record updated", "kind", s.kind, "id", id)
	return rec, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}
	s.log.InfoContext(ctx, "catalog record deleted", "kind", s.kind, "id", id)
	return nil
}
