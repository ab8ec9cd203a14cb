// Package pantry implements the item store: the canonical in-memory
// collection of tracked items, mirrored to a persistence backend on every
// mutation.
package pantry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/erazemk/shramba/internal/model"
)

// Mirror persists the store's collection. The in-memory collection is
// canonical; the mirror only has to keep up. Local mirrors typically write
// the full snapshot, remote mirrors translate the single changed item into
// one API call.
type Mirror interface {
	// Load returns the persisted collection in order. A missing or
	// unreadable backend yields an empty collection, not an error.
	Load(ctx context.Context) ([]model.Item, error)

	// Put persists a created or updated item. snapshot is the full
	// collection after the mutation, for mirrors that persist snapshots.
	Put(ctx context.Context, item model.Item, snapshot []model.Item) error

	// Delete persists an item removal. Deleting an unknown id is not an
	// error.
	Delete(ctx context.Context, id string, snapshot []model.Item) error
}

// AddRequest carries the fields for creating an item. Name and ExpiryDate
// are required, Quantity and Category default when empty.
type AddRequest struct {
	Name       string
	ExpiryDate model.Date
	Quantity   string
	Category   string
}

// Update carries a partial edit. Nil fields are left untouched; id and
// creation time can never change.
type Update struct {
	Name       *string
	ExpiryDate *model.Date
	Quantity   *string
	Category   *string
}

// Store owns the canonical ordered collection of items. It is built for a
// single logical thread of control: mutations happen one at a time in
// response to discrete user or scan events.
type Store struct {
	mirror Mirror
	items  []model.Item

	now   func() time.Time
	newID func() string
}

// NewStore creates a store backed by the given mirror and loads the
// persisted collection.
func NewStore(ctx context.Context, mirror Mirror) (*Store, error) {
	items, err := mirror.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		mirror: mirror,
		items:  items,
		now:    time.Now,
		newID:  uuid.NewString,
	}, nil
}

// Add validates the request, assigns a fresh id and creation time, appends
// the item, and mirrors the change. On a mirror failure the item is kept
// in memory and returned alongside a *PersistenceError.
func (s *Store) Add(ctx context.Context, req AddRequest) (model.Item, error) {
	if req.Name == "" {
		return model.Item{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if req.ExpiryDate.IsZero() {
		return model.Item{}, &ValidationError{Field: "expiryDate", Reason: "must be a valid date"}
	}

	item := model.Item{
		ID:         s.newID(),
		Name:       req.Name,
		ExpiryDate: req.ExpiryDate,
		Quantity:   req.Quantity,
		Category:   req.Category,
		CreatedAt:  s.now(),
	}
	if item.Quantity == "" {
		item.Quantity = model.DefaultQuantity
	}
	if item.Category == "" {
		item.Category = model.DefaultCategory
	}

	s.items = append(s.items, item)

	if err := s.mirror.Put(ctx, item, s.snapshot()); err != nil {
		return item, &PersistenceError{Op: "add", Err: err}
	}
	return item, nil
}

// Update merges the provided fields into the item with the given id and
// mirrors the change. Returns ErrNotFound if the id is unknown.
func (s *Store) Update(ctx context.Context, id string, upd Update) (model.Item, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Item{}, ErrNotFound
	}

	if upd.Name != nil && *upd.Name == "" {
		return model.Item{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if upd.ExpiryDate != nil && upd.ExpiryDate.IsZero() {
		return model.Item{}, &ValidationError{Field: "expiryDate", Reason: "must be a valid date"}
	}

	item := s.items[idx]
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.ExpiryDate != nil {
		item.ExpiryDate = *upd.ExpiryDate
	}
	if upd.Quantity != nil {
		item.Quantity = *upd.Quantity
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	s.items[idx] = item

	if err := s.mirror.Put(ctx, item, s.snapshot()); err != nil {
		return item, &PersistenceError{Op: "update", Err: err}
	}
	return item, nil
}

// Remove deletes the item with the given id and mirrors the change.
// Returns ErrNotFound if the id is unknown; the collection is unchanged in
// that case.
func (s *Store) Remove(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)

	if err := s.mirror.Delete(ctx, id, s.snapshot()); err != nil {
		return &PersistenceError{Op: "remove", Err: err}
	}
	return nil
}

// List returns the collection in insertion order. The returned slice is a
// copy; callers may re-sort it for display.
func (s *Store) List() []model.Item {
	return s.snapshot()
}

// Get returns the item with the given id, or ErrNotFound.
func (s *Store) Get(id string) (model.Item, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Item{}, ErrNotFound
	}
	return s.items[idx], nil
}

func (s *Store) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}
