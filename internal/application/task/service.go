// Package task provides the application service for managing tasks.
package task

import (
	"context"
	"errors"
	"time"

	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/domain/task"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles task-related business operations
type Service struct {
	store  task.Store
	admin  task.AdminStore
	clock  shared.Clock
	logger *zap.Logger
}

// NewService creates a new task Service
func NewService(store task.Store, admin task.AdminStore, clock shared.Clock, logger *zap.Logger) *Service {
	if clock == nil {
		clock = shared.SystemClock()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		admin:  admin,
		clock:  clock,
		logger: logger.Named("task"),
	}
}

// Add stores a new task for the owner. It returns false when a task with
// the same ID already exists.
func (s *Service) Add(ctx context.Context, owner uuid.UUID, t *task.Task) (bool, error) {
	if t == nil {
		return false, shared.ErrInvalidInput
	}
	if err := s.store.Insert(ctx, owner, t); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Debug("task already exists",
				zap.String("owner", owner.String()),
				zap.String("id", t.ID()))
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete removes the task and reports whether it existed. The id is
// validated and trimmed first.
func (s *Service) Delete(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	trimmedID, err := task.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.DeleteByID(ctx, owner, trimmedID)
}

// Update atomically replaces every mutable field of the task. It returns
// false when the task does not exist; a validation failure leaves the
// stored task unchanged.
func (s *Service) Update(ctx context.Context, owner uuid.UUID, id, name, description string, status task.Status, dueDate *time.Time, projectID string) (bool, error) {
	trimmedID, err := task.ValidateID(id)
	if err != nil {
		return false, err
	}
	return s.store.Update(ctx, owner, trimmedID, func(t *task.Task) error {
		return t.Update(name, description, status, dueDate, projectID)
	})
}

// GetByID returns the task, or nil when the owner has no task with that ID.
func (s *Service) GetByID(ctx context.Context, owner uuid.UUID, id string) (*task.Task, error) {
	trimmedID, err := task.ValidateID(id)
	if err != nil {
		return nil, err
	}
	t, err := s.store.FindByID(ctx, owner, trimmedID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return t, err
}

// List returns all the owner's tasks.
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*task.Task, error) {
	return s.store.FindAll(ctx, owner)
}

// ListByStatus returns the owner's tasks in the given status.
func (s *Service) ListByStatus(ctx context.Context, owner uuid.UUID, status task.Status) ([]*task.Task, error) {
	if !status.Valid() {
		return nil, shared.NewValidationError("status", "status must be one of TODO, IN_PROGRESS, DONE")
	}
	return s.filter(ctx, owner, func(t *task.Task) bool {
		return t.Status() == status
	})
}

// ListDueBefore returns the owner's tasks with a due date strictly before
// the given instant. Tasks without a due date are excluded.
func (s *Service) ListDueBefore(ctx context.Context, owner uuid.UUID, deadline time.Time) ([]*task.Task, error) {
	return s.filter(ctx, owner, func(t *task.Task) bool {
		due := t.DueDate()
		return due != nil && due.Before(deadline)
	})
}

// ListOverdue returns the owner's unfinished tasks whose due date has
// passed.
func (s *Service) ListOverdue(ctx context.Context, owner uuid.UUID) ([]*task.Task, error) {
	now := s.clock.Now()
	return s.filter(ctx, owner, func(t *task.Task) bool {
		due := t.DueDate()
		return due != nil && due.Before(now) && t.Status() != task.StatusDone
	})
}

// ListByProject returns the owner's tasks referencing the given project.
func (s *Service) ListByProject(ctx context.Context, owner uuid.UUID, projectID string) ([]*task.Task, error) {
	return s.filter(ctx, owner, func(t *task.Task) bool {
		return t.ProjectID() == projectID
	})
}

// ListAllOwners returns tasks across every owner. Intended for
// administrative use only.
func (s *Service) ListAllOwners(ctx context.Context) ([]*task.Task, error) {
	return s.admin.FindAllOwners(ctx)
}

// Clear removes every task across every owner. Intended for administrative
// use only.
func (s *Service) Clear(ctx context.Context) error {
	s.logger.Info("clearing all tasks")
	return s.admin.DeleteAll(ctx)
}

func (s *Service) filter(ctx context.Context, owner uuid.UUID, keep func(*task.Task) bool) ([]*task.Task, error) {
	tasks, err := s.store.FindAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	filtered := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
