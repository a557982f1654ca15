// Package memstore provides the process-local keyed collections that back
// every store in the shop. State lives only as long as the process does.
//
// A Table hands out copies on every read and stores copies on every write, so
// callers can never mutate stored records through a returned pointer.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateID is returned by InsertWithID when the ID is already taken.
var ErrDuplicateID = errors.New("memstore: duplicate id")

// Schema describes how a Table reads and writes the ID of T.
type Schema[T any] struct {
	// ID returns the record's identifier.
	ID func(*T) int64
	// SetID assigns an identifier. Required for Insert.
	SetID func(*T, int64)
	// Clone deep-copies a record. Defaults to a plain value copy; set it when
	// T holds slices or maps.
	Clone func(T) T
	// NotFound is returned (wrapped) when an ID is unknown.
	NotFound error
}

// Table is a concurrency-safe, insertion-ordered collection keyed by int64.
// IDs assigned by Insert start at 1 and are never reused, even after Delete.
type Table[T any] struct {
	mu     sync.RWMutex
	schema Schema[T]
	seq    int64
	rows   map[int64]T
	order  []int64
}

// New returns an empty Table for the given schema.
func New[T any](schema Schema[T]) *Table[T] {
	if schema.Clone == nil {
		schema.Clone = func(v T) T { return v }
	}
	if schema.NotFound == nil {
		schema.NotFound = errors.New("memstore: not found")
	}
	return &Table[T]{
		schema: schema,
		rows:   make(map[int64]T),
	}
}

// Insert assigns the next ID to rec and stores a copy of it.
func (t *Table[T]) Insert(_ context.Context, rec *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.schema.SetID(rec, t.seq)
	t.put(t.seq, *rec)
	return nil
}

// InsertWithID stores a copy of rec under the ID it already carries.
// The sequence is advanced past that ID so later Inserts never collide.
func (t *Table[T]) InsertWithID(_ context.Context, rec *T) error {
	id := t.schema.ID(rec)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if id > t.seq {
		t.seq = id
	}
	t.put(id, *rec)
	return nil
}

// Get returns a copy of the record with the given ID.
func (t *Table[T]) Get(_ context.Context, id int64) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", t.schema.NotFound, id)
	}
	out := t.schema.Clone(row)
	return &out, nil
}

// List returns copies of all records in insertion order.
func (t *Table[T]) List(ctx context.Context) ([]*T, error) {
	return t.Filter(ctx, nil)
}

// Filter returns copies of the records for which keep reports true, in
// insertion order. A nil keep matches everything.
func (t *Table[T]) Filter(_ context.Context, keep func(*T) bool) ([]*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		row := t.schema.Clone(t.rows[id])
		if keep != nil && !keep(&row) {
			continue
		}
		out = append(out, &row)
	}
	return out, nil
}

// Update replaces the stored record that has rec's ID.
func (t *Table[T]) Update(_ context.Context, rec *T) error {
	id := t.schema.ID(rec)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%w: id %d", t.schema.NotFound, id)
	}
	t.rows[id] = t.schema.Clone(*rec)
	return nil
}

// Mutate applies fn to the stored record under the write lock. fn works on a
// copy; the result is stored only if fn returns nil.
func (t *Table[T]) Mutate(_ context.Context, id int64, fn func(*T) error) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", t.schema.NotFound, id)
	}
	next := t.schema.Clone(row)
	if err := fn(&next); err != nil {
		return nil, err
	}
	t.rows[id] = t.schema.Clone(next)
	return &next, nil
}

// Delete removes the record with the given ID.
func (t *Table[T]) Delete(_ context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%w: id %d", t.schema.NotFound, id)
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// Exists reports whether a record with the given ID is stored.
func (t *Table[T]) Exists(_ context.Context, id int64) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rows[id]
	return ok, nil
}

// Len returns the number of stored records.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T]) put(id int64, rec T) {
	t.rows[id] = t.schema.Clone(rec)
	t.order = append(t.order, id)
}
