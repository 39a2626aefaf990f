// Package memstore provides an in-memory store implementation intended for
// tests and single-user deployments. It keeps aggregates for exactly one
// owner; operations issued under a different owner fail with
// shared.ErrUnsupported instead of silently mixing tenants.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type record[T any] struct {
	owner     uuid.UUID
	aggregate T
}

// Store is a thread-safe in-memory implementation of both
// shared.TenantStore and shared.AdminStore.
type Store[T shared.Aggregate[T]] struct {
	mu      sync.RWMutex
	records map[string]record[T]
}

// New returns an empty Store.
func New[T shared.Aggregate[T]]() *Store[T] {
	return &Store[T]{records: make(map[string]record[T])}
}

func (s *Store[T]) ExistsByID(_ context.Context, owner uuid.UUID, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return false, nil
	}
	if rec.owner != owner {
		return false, foreignOwnerError(rec.owner, owner)
	}
	return true, nil
}

func (s *Store[T]) Insert(_ context.Context, owner uuid.UUID, aggregate T) error {
	stored, err := aggregate.Copy()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[aggregate.ID()]; ok {
		if rec.owner != owner {
			return foreignOwnerError(rec.owner, owner)
		}
		return shared.ErrAlreadyExists
	}
	s.records[aggregate.ID()] = record[T]{owner: owner, aggregate: stored}
	return nil
}

func (s *Store[T]) Save(_ context.Context, owner uuid.UUID, aggregate T) error {
	stored, err := aggregate.Copy()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[aggregate.ID()]; ok && rec.owner != owner {
		return foreignOwnerError(rec.owner, owner)
	}
	s.records[aggregate.ID()] = record[T]{owner: owner, aggregate: stored}
	return nil
}

func (s *Store[T]) FindByID(_ context.Context, owner uuid.UUID, id string) (T, error) {
	var zero T

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return zero, shared.ErrNotFound
	}
	if rec.owner != owner {
		return zero, foreignOwnerError(rec.owner, owner)
	}
	return rec.aggregate.Copy()
}

func (s *Store[T]) FindAll(_ context.Context, owner uuid.UUID) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if rec.owner != owner {
			return nil, foreignOwnerError(rec.owner, owner)
		}
		copied, err := rec.aggregate.Copy()
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}
	sortByID(out)
	return out, nil
}

func (s *Store[T]) DeleteByID(_ context.Context, owner uuid.UUID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return false, nil
	}
	if rec.owner != owner {
		return false, foreignOwnerError(rec.owner, owner)
	}
	delete(s.records, id)
	return true, nil
}

// Update applies mutate to a copy of the stored aggregate and commits the
// copy only when mutate succeeds. The mutation is atomic with respect to
// concurrent operations on the store.
func (s *Store[T]) Update(_ context.Context, owner uuid.UUID, id string, mutate func(T) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return false, nil
	}
	if rec.owner != owner {
		return false, foreignOwnerError(rec.owner, owner)
	}

	working, err := rec.aggregate.Copy()
	if err != nil {
		return false, err
	}
	if err := mutate(working); err != nil {
		return false, err
	}
	s.records[id] = record[T]{owner: owner, aggregate: working}
	return true, nil
}

func (s *Store[T]) FindAllOwners(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		copied, err := rec.aggregate.Copy()
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}
	sortByID(out)
	return out, nil
}

func (s *Store[T]) DeleteAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]record[T])
	return nil
}

func foreignOwnerError(have, want uuid.UUID) error {
	return fmt.Errorf("%w: in-memory store holds records for owner %s, got %s",
		shared.ErrUnsupported, have, want)
}

func sortByID[T shared.Aggregate[T]](items []T) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID() < items[j].ID() })
}
