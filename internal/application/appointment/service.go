// Package appointment provides the application service for managing appointments.
package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/contactapp/backend/internal/domain/appointment"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles appointment-related business operations
type Service struct {
	store  appointment.Store
	admin  appointment.AdminStore
	logger *zap.Logger
}

// NewService creates a new appointment Service
func NewService(store appointment.Store, admin appointment.AdminStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		admin:  admin,
		logger: logger.Named("appointment"),
	}
}

// Add stores a new appointment for the owner. It returns false when an
// appointment with the same ID already exists.
func (s *Service) Add(ctx context.Context, owner uuid.UUID, a *appointment.Appointment) (bool, error) {
	if a == nil {
		return false, shared.ErrInvalidInput
	}
	if err := s.store.Insert(ctx, owner, a); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Debug("appointment already exists",
				zap.String("owner", owner.String()),
				zap.String("id", a.ID()))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the appointment and reports whether it existed. The id is
// validated and trimmed first.
func (s *Service) Delete(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	trimmedID, err := appointment.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.DeleteByID(ctx, owner, trimmedID)
}

// Update atomically replaces every mutable field of the appointment. It
// returns false when the appointment does not exist; a validation failure
// leaves the stored appointment unchanged.
func (s *Service) Update(ctx context.Context, owner uuid.UUID, id string, date time.Time, description, projectID, taskID string) (bool, error) {
	trimmedID, err := appointment.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.Update(ctx, owner, trimmedID, func(a *appointment.Appointment) error {
		return a.Update(date, description, projectID, taskID)
	})
}

// GetByID returns the appointment, or nil when the owner has no appointment
// with that ID.
func (s *Service) GetByID(ctx context.Context, owner uuid.UUID, id string) (*appointment.Appointment, error) {
	trimmedID, err := appointment.ValidateID(id)
	if err != nil {
		return nil, err
	}
	a, err := s.store.FindByID(ctx, owner, trimmedID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return a, err
}

// List returns all the owner's appointments.
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*appointment.Appointment, error) {
	return s.store.FindAll(ctx, owner)
}

// ListByProject returns the owner's appointments referencing the given
// project.
func (s *Service) ListByProject(ctx context.Context, owner uuid.UUID, projectID string) ([]*appointment.Appointment, error) {
	appointments, err := s.store.FindAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	filtered := make([]*appointment.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.ProjectID() == projectID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// ListAllOwners returns appointments across every owner. Intended for
// administrative use only.
func (s *Service) ListAllOwners(ctx context.Context) ([]*appointment.Appointment, error) {
	return s.admin.FindAllOwners(ctx)
}

// Clear removes every appointment across every owner. Intended for
// administrative use only.
func (s *Service) Clear(ctx context.Context) error {
	s.logger.Info("clearing all appointments")
	return s.admin.DeleteAll(ctx)
}
