// Package contact provides the application service for managing contacts.
package contact

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles contact-related business operations
type Service struct {
	store  contact.Store
	admin  contact.AdminStore
	logger *zap.Logger
}

// NewService creates a new contact Service
func NewService(store contact.Store, admin contact.AdminStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		admin:  admin,
		logger: logger.Named("contact"),
	}
}

// Add stores a new contact for the owner. It returns false when a contact
// with the same ID already exists.
func (s *Service) Add(ctx context.Context, owner uuid.UUID, c *contact.Contact) (bool, error) {
	if c == nil {
		return false, shared.ErrInvalidInput
	}
	if err := s.store.Insert(ctx, owner, c); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Debug("contact already exists",
				zap.String("owner", owner.String()),
				zap.String("id", c.ID()))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the contact and reports whether it existed. The id is
// validated and trimmed first, so " c1 " targets the stored "c1".
func (s *Service) Delete(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	trimmedID, err := contact.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.DeleteByID(ctx, owner, trimmedID)
}

// Update atomically replaces every mutable field of the contact. It returns
// false when the contact does not exist; a validation failure leaves the
// stored contact unchanged.
func (s *Service) Update(ctx context.Context, owner uuid.UUID, id, firstName, lastName, phone, address string) (bool, error) {
	trimmedID, err := contact.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.Update(ctx, owner, trimmedID, func(c *contact.Contact) error {
		return c.Update(firstName, lastName, phone, address)
	})
}

// GetByID returns the contact, or nil when the owner has no contact with
// that ID.
func (s *Service) GetByID(ctx context.Context, owner uuid.UUID, id string) (*contact.Contact, error) {
	trimmedID, err := contact.ValidateID(id)
	if err != nil {
		return nil, err
	}
	c, err := s.store.FindByID(ctx, owner, trimmedID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return c, err
}

// List returns all the owner's contacts.
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*contact.Contact, error) {
	return s.store.FindAll(ctx, owner)
}

// ListAllOwners returns contacts across every owner. Intended for
// administrative use only.
func (s *Service) ListAllOwners(ctx context.Context) ([]*contact.Contact, error) {
	return s.admin.FindAllOwners(ctx)
}

// Clear removes every contact across every owner. Intended for
// administrative use only.
func (s *Service) Clear(ctx context.Context) error {
	s.logger.Info("clearing all contacts")
	return s.admin.DeleteAll(ctx)
}
