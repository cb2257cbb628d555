package memory

import (
	"context"
	"sync"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
)

// Entity is implemented by every domain type a Registry can store: the type
// exposes its identifier and can produce a copy carrying an issued one.
type Entity[T any] interface {
	ID() kernel.ID
	WithID(id kernel.ID) T
}

// Registry is the in-memory implementation of the registry port for one
// entity collection. Entities are stored by value; List and Find hand out
// copies, so callers can never mutate stored state without going through
// Mutate.
type Registry[T Entity[T]] struct {
	paramName string
	seq       *Sequence

	mu    sync.RWMutex
	order []kernel.ID
	items map[kernel.ID]T
}

// NewRegistry creates an empty registry drawing identifiers from seq.
// The paramName labels not-found errors, for example "donorId".
func NewRegistry[T Entity[T]](paramName string, seq *Sequence) *Registry[T] {
	return &Registry[T]{
		paramName: paramName,
		seq:       seq,
		items:     make(map[kernel.ID]T),
	}
}

// Insert stores the entity under a freshly issued identifier and returns
// the stored copy.
func (r *Registry[T]) Insert(_ context.Context, entity T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := entity.WithID(r.seq.Next())
	r.items[stored.ID()] = stored
	r.order = append(r.order, stored.ID())
	return stored, nil
}

// Find retrieves the entity stored under id.
func (r *Registry[T]) Find(_ context.Context, id kernel.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError(r.paramName, id)
	}
	return entity, nil
}

// Exists reports whether an entity is stored under id.
func (r *Registry[T]) Exists(_ context.Context, id kernel.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

// List returns a snapshot of all stored entities in insertion order.
func (r *Registry[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]T, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, r.items[id])
	}
	return snapshot, nil
}

// Mutate applies fn to the entity stored under id and stores the result.
// The stored entity is left untouched when fn returns an error.
func (r *Registry[T]) Mutate(_ context.Context, id kernel.ID, fn func(T) (T, error)) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError(r.paramName, id)
	}

	updated, err := fn(entity)
	if err != nil {
		var zero T
		return zero, err
	}

	r.items[id] = updated
	return updated, nil
}

// Remove deletes the entity stored under id.
func (r *Registry[T]) Remove(_ context.Context, id kernel.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return errs.NewObjectNotFoundError(r.paramName, id)
	}

	delete(r.items, id)
	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
