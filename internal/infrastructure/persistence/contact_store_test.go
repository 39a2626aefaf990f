package persistence

import (
	"context"
	"testing"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContact(t *testing.T, id string) *contact.Contact {
	t.Helper()
	c, err := contact.New(id, "Ada", "Lovelace", "5551234567", "12 Analytical Row")
	require.NoError(t, err)
	return c
}

func TestGormContactStoreInsert(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("inserts and finds by id", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))

		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))

		found, err := store.FindByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", found.FirstName())

		exists, err := store.ExistsByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate id for same owner fails with ErrAlreadyExists", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))

		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))
		err := store.Insert(ctx, owner, newContact(t, "c1"))

		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("same id under different owners is legal", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))
		otherOwner := uuid.New()

		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))
		require.NoError(t, store.Insert(ctx, otherOwner, newContact(t, "c1")))

		all, err := store.FindAllOwners(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("nil contact fails with ErrInvalidInput", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))
		assert.ErrorIs(t, store.Insert(ctx, owner, nil), shared.ErrInvalidInput)
	})
}

func TestGormContactStoreFind(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("missing id fails with ErrNotFound", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))

		_, err := store.FindByID(ctx, owner, "ghost")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindAll is owner scoped and ordered", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))
		otherOwner := uuid.New()
		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c2")))
		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))
		require.NoError(t, store.Insert(ctx, otherOwner, newContact(t, "c3")))

		all, err := store.FindAll(ctx, owner)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "c1", all[0].ID())
		assert.Equal(t, "c2", all[1].ID())
	})
}

func TestGormContactStoreDelete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := NewGormContactStore(newTestDB(t))
	require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))

	t.Run("foreign owner cannot delete", func(t *testing.T) {
		deleted, err := store.DeleteByID(ctx, uuid.New(), "c1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("delete reports true then false", func(t *testing.T) {
		deleted, err := store.DeleteByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestGormContactStoreUpdate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("commits the mutation", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))
		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))

		found, err := store.Update(ctx, owner, "c1", func(c *contact.Contact) error {
			return c.Update("Grace", "Hopper", "5559876543", "9 Compiler Way")
		})
		require.NoError(t, err)
		assert.True(t, found)

		updated, err := store.FindByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Grace", updated.FirstName())
		assert.Equal(t, "5559876543", updated.Phone())
	})

	t.Run("missing id reports false", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))

		found, err := store.Update(ctx, owner, "ghost", func(c *contact.Contact) error {
			return nil
		})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("failed mutation rolls back", func(t *testing.T) {
		store := NewGormContactStore(newTestDB(t))
		require.NoError(t, store.Insert(ctx, owner, newContact(t, "c1")))

		_, err := store.Update(ctx, owner, "c1", func(c *contact.Contact) error {
			return c.Update("Grace", "Hopper", "bad", "9 Compiler Way")
		})
		require.Error(t, err)

		unchanged, err := store.FindByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", unchanged.FirstName())
	})
}

func TestGormContactStoreSave(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := NewGormContactStore(newTestDB(t))

	t.Run("creates when missing", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, owner, newContact(t, "c1")))

		found, err := store.FindByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Ada", found.FirstName())
	})

	t.Run("overwrites when present", func(t *testing.T) {
		changed, err := contact.New("c1", "Grace", "Hopper", "5559876543", "9 Compiler Way")
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, owner, changed))

		found, err := store.FindByID(ctx, owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Grace", found.FirstName())

		all, err := store.FindAll(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestGormContactStoreAdmin(t *testing.T) {
	ctx := context.Background()
	store := NewGormContactStore(newTestDB(t))
	require.NoError(t, store.Insert(ctx, uuid.New(), newContact(t, "c1")))
	require.NoError(t, store.Insert(ctx, uuid.New(), newContact(t, "c1")))

	all, err := store.FindAllOwners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.DeleteAll(ctx))
	all, err = store.FindAllOwners(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
