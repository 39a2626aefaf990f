package shared

import (
	"context"

	"github.com/google/uuid"
)

// Aggregate is satisfied by every domain aggregate a store can persist.
// Copy re-validates through the aggregate's public constructor, so a copy of
// state that no longer satisfies its own invariants fails instead of leaking
// an invalid object.
type Aggregate[T any] interface {
	ID() string
	Copy() (T, error)
}

// TenantStore persists aggregates scoped by their owning user. Every record
// belongs to exactly one owner, and the aggregate's natural id is unique only
// within (aggregate type, owner).
//
// Stores return independent copies, never internal references. "Not found" is
// reported through the ErrNotFound sentinel (FindByID) or a false result
// (DeleteByID, Update); it is never a caller-visible failure at the service
// boundary.
type TenantStore[T Aggregate[T]] interface {
	// ExistsByID reports whether a record exists for (id, owner).
	ExistsByID(ctx context.Context, owner uuid.UUID, id string) (bool, error)

	// Insert creates a new record and fails with ErrAlreadyExists when a
	// record for (id, owner) is already present. Uniqueness is enforced by
	// the backing storage, not a check-then-act sequence.
	Insert(ctx context.Context, owner uuid.UUID, aggregate T) error

	// Save upserts: existing records keep their owner and surrogate key and
	// have only their mutable fields replaced.
	Save(ctx context.Context, owner uuid.UUID, aggregate T) error

	// FindByID returns an independent copy, or ErrNotFound.
	FindByID(ctx context.Context, owner uuid.UUID, id string) (T, error)

	// FindAll returns independent copies of the owner's records.
	FindAll(ctx context.Context, owner uuid.UUID) ([]T, error)

	// DeleteByID removes the record and reports whether one existed.
	DeleteByID(ctx context.Context, owner uuid.UUID, id string) (bool, error)

	// Update atomically applies mutate to the stored record: no concurrent
	// caller observes a half-applied mutation, and a mutate failure leaves
	// the record unchanged. Returns false when no record exists.
	Update(ctx context.Context, owner uuid.UUID, id string, mutate func(T) error) (bool, error)
}

// AdminStore exposes the owner-less administrative operations. It is a
// separate interface so code holding only a TenantStore cannot reach across
// tenants by accident; requesting the wrong variant is a compile-time error.
type AdminStore[T Aggregate[T]] interface {
	// FindAllOwners returns copies of every record regardless of owner.
	FindAllOwners(ctx context.Context) ([]T, error)

	// DeleteAll clears all records. Administrative and test reset only.
	DeleteAll(ctx context.Context) error
}
