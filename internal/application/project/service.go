// Package project provides the application service for managing projects
// and their contact links.
package project

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles project-related business operations. The link operations
// require a LinkStore; backends without one reject them with
// shared.ErrUnsupported.
type Service struct {
	store  project.Store
	admin  project.AdminStore
	links  project.LinkStore
	logger *zap.Logger
}

// NewService creates a new project Service. links may be nil when the
// backend has no junction table.
func NewService(store project.Store, admin project.AdminStore, links project.LinkStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		admin:  admin,
		links:  links,
		logger: logger.Named("project"),
	}
}

// Add stores a new project for the owner. It returns false when a project
// with the same ID already exists.
func (s *Service) Add(ctx context.Context, owner uuid.UUID, p *project.Project) (bool, error) {
	if p == nil {
		return false, shared.ErrInvalidInput
	}
	if err := s.store.Insert(ctx, owner, p); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Debug("project already exists",
				zap.String("owner", owner.String()),
				zap.String("id", p.ID()))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the project and reports whether it existed. The id is
// validated and trimmed first.
func (s *Service) Delete(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	trimmedID, err := project.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.DeleteByID(ctx, owner, trimmedID)
}

// Update atomically replaces every mutable field of the project. It returns
// false when the project does not exist; a validation failure leaves the
// stored project unchanged.
func (s *Service) Update(ctx context.Context, owner uuid.UUID, id, name, description string, status project.Status) (bool, error) {
	trimmedID, err := project.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.Update(ctx, owner, trimmedID, func(p *project.Project) error {
		return p.Update(name, description, status)
	})
}

// GetByID returns the project, or nil when the owner has no project with
// that ID.
func (s *Service) GetByID(ctx context.Context, owner uuid.UUID, id string) (*project.Project, error) {
	trimmedID, err := project.ValidateID(id)
	if err != nil {
		return nil, err
	}
	p, err := s.store.FindByID(ctx, owner, trimmedID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// List returns all the owner's projects.
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*project.Project, error) {
	return s.store.FindAll(ctx, owner)
}

// ListByStatus returns the owner's projects in the given status.
func (s *Service) ListByStatus(ctx context.Context, owner uuid.UUID, status project.Status) ([]*project.Project, error) {
	if !status.Valid() {
		return nil, shared.NewValidationError("status", "status must be one of ACTIVE, ON_HOLD, COMPLETED, ARCHIVED")
	}
	projects, err := s.store.FindAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	filtered := make([]*project.Project, 0, len(projects))
	for _, p := range projects {
		if p.Status() == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// LinkContact associates a contact with the project under the given role.
// It returns false when the project or contact is missing, or when the pair
// is already linked.
func (s *Service) LinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID, role string) (bool, error) {
	if s.links == nil {
		return false, shared.ErrUnsupported
	}
	projectID, contactID, err := validateLinkIDs(projectID, contactID)
	if err != nil {
		return false, err
	}
	linked, err := s.links.LinkContact(ctx, owner, projectID, contactID, role)
	if errors.Is(err, shared.ErrAlreadyExists) {
		s.logger.Debug("contact already linked",
			zap.String("owner", owner.String()),
			zap.String("project", projectID),
			zap.String("contact", contactID))
		return false, nil
	}
	return linked, err
}

// UnlinkContact removes the association and reports whether one existed.
func (s *Service) UnlinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID string) (bool, error) {
	if s.links == nil {
		return false, shared.ErrUnsupported
	}
	projectID, contactID, err := validateLinkIDs(projectID, contactID)
	if err != nil {
		return false, err
	}
	return s.links.UnlinkContact(ctx, owner, projectID, contactID)
}

// ContactsFor returns the contacts linked to the project.
func (s *Service) ContactsFor(ctx context.Context, owner uuid.UUID, projectID string) ([]*contact.Contact, error) {
	if s.links == nil {
		return nil, shared.ErrUnsupported
	}
	trimmedID, err := project.ValidateID(projectID)
	if err != nil {
		return nil, err
	}
	return s.links.ContactsFor(ctx, owner, trimmedID)
}

// ProjectsFor returns the projects the contact is linked to.
func (s *Service) ProjectsFor(ctx context.Context, owner uuid.UUID, contactID string) ([]*project.Project, error) {
	if s.links == nil {
		return nil, shared.ErrUnsupported
	}
	trimmedID, err := contact.ValidateID(contactID)
	if err != nil {
		return nil, err
	}
	return s.links.ProjectsFor(ctx, owner, trimmedID)
}

func validateLinkIDs(projectID, contactID string) (string, string, error) {
	trimmedProjectID, err := project.ValidateID(projectID)
	if err != nil {
		return "", "", err
	}
	trimmedContactID, err := contact.ValidateID(contactID)
	if err != nil {
		return "", "", err
	}
	return trimmedProjectID, trimmedContactID, nil
}

// ListAllOwners returns projects across every owner. Intended for
// administrative use only.
func (s *Service) ListAllOwners(ctx context.Context) ([]*project.Project, error) {
	return s.admin.FindAllOwners(ctx)
}

// Clear removes every project across every owner. Intended for
// administrative use only.
func (s *Service) Clear(ctx context.Context) error {
	s.logger.Info("clearing all projects")
	return s.admin.DeleteAll(ctx)
}
