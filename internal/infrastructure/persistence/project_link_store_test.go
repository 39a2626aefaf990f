package persistence

import (
	"context"
	"strings"
	"testing"

	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProject(t *testing.T, id string) *project.Project {
	t.Helper()
	p, err := project.New(id, "Website relaunch", "New marketing site", project.StatusActive)
	require.NoError(t, err)
	return p
}

type linkFixture struct {
	db       *gorm.DB
	projects *GormProjectStore
	contacts *GormContactStore
	links    *GormProjectLinkStore
	owner    uuid.UUID
}

func newLinkFixture(t *testing.T) linkFixture {
	t.Helper()
	db := newTestDB(t)
	f := linkFixture{
		db:       db,
		projects: NewGormProjectStore(db),
		contacts: NewGormContactStore(db),
		links:    NewGormProjectLinkStore(db),
		owner:    uuid.New(),
	}
	ctx := context.Background()
	require.NoError(t, f.projects.Insert(ctx, f.owner, newProject(t, "p1")))
	require.NoError(t, f.contacts.Insert(ctx, f.owner, newContact(t, "c1")))
	return f
}

func TestGormProjectStoreCRUD(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := NewGormProjectStore(newTestDB(t))

	require.NoError(t, store.Insert(ctx, owner, newProject(t, "p1")))
	assert.ErrorIs(t, store.Insert(ctx, owner, newProject(t, "p1")), shared.ErrAlreadyExists)

	found, err := store.Update(ctx, owner, "p1", func(p *project.Project) error {
		return p.Update("Website v2", "", project.StatusCompleted)
	})
	require.NoError(t, err)
	assert.True(t, found)

	updated, err := store.FindByID(ctx, owner, "p1")
	require.NoError(t, err)
	assert.Equal(t, project.StatusCompleted, updated.Status())
	assert.Empty(t, updated.Description())
}

func TestGormProjectLinkStoreLink(t *testing.T) {
	ctx := context.Background()

	t.Run("links existing project and contact", func(t *testing.T) {
		f := newLinkFixture(t)

		linked, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", "sponsor")
		require.NoError(t, err)
		assert.True(t, linked)

		contacts, err := f.links.ContactsFor(ctx, f.owner, "p1")
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "c1", contacts[0].ID())

		projects, err := f.links.ProjectsFor(ctx, f.owner, "c1")
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "p1", projects[0].ID())
	})

	t.Run("missing project or contact reports false", func(t *testing.T) {
		f := newLinkFixture(t)

		linked, err := f.links.LinkContact(ctx, f.owner, "ghost", "c1", "")
		require.NoError(t, err)
		assert.False(t, linked)

		linked, err = f.links.LinkContact(ctx, f.owner, "p1", "ghost", "")
		require.NoError(t, err)
		assert.False(t, linked)
	})

	t.Run("duplicate pair fails with ErrAlreadyExists", func(t *testing.T) {
		f := newLinkFixture(t)

		_, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", "")
		require.NoError(t, err)

		_, err = f.links.LinkContact(ctx, f.owner, "p1", "c1", "reviewer")
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("rejects role over thirty characters", func(t *testing.T) {
		f := newLinkFixture(t)

		_, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", strings.Repeat("r", 31))
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
	})

	t.Run("links are owner scoped", func(t *testing.T) {
		f := newLinkFixture(t)
		_, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", "")
		require.NoError(t, err)

		contacts, err := f.links.ContactsFor(ctx, uuid.New(), "p1")
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})
}

func TestGormProjectLinkStoreUnlink(t *testing.T) {
	ctx := context.Background()
	f := newLinkFixture(t)
	_, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", "")
	require.NoError(t, err)

	removed, err := f.links.UnlinkContact(ctx, f.owner, "p1", "c1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.links.UnlinkContact(ctx, f.owner, "p1", "c1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGormProjectStoreDeleteRemovesLinks(t *testing.T) {
	ctx := context.Background()
	f := newLinkFixture(t)
	_, err := f.links.LinkContact(ctx, f.owner, "p1", "c1", "")
	require.NoError(t, err)

	deleted, err := f.projects.DeleteByID(ctx, f.owner, "p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	projects, err := f.links.ProjectsFor(ctx, f.owner, "c1")
	require.NoError(t, err)
	assert.Empty(t, projects)
}
