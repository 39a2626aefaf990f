package project

import (
	"context"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Store persists Project aggregates scoped by owning user.
type Store = shared.TenantStore[*Project]

// AdminStore exposes the owner-less administrative operations for projects.
type AdminStore = shared.AdminStore[*Project]

// LinkStore persists project-contact associations. Links are unique per
// (project, contact) pair within an owner and carry an optional role.
type LinkStore interface {
	// LinkContact associates a contact with a project. Returns false when
	// either record does not exist for the owner; a duplicate pair fails
	// with ErrAlreadyExists.
	LinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID, role string) (bool, error)

	// UnlinkContact removes the association and reports whether one existed.
	UnlinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID string) (bool, error)

	// ContactsFor returns the contacts linked to the project.
	ContactsFor(ctx context.Context, owner uuid.UUID, projectID string) ([]*contact.Contact, error)

	// ProjectsFor returns the projects a contact is linked to.
	ProjectsFor(ctx context.Context, owner uuid.UUID, contactID string) ([]*Project, error)
}
