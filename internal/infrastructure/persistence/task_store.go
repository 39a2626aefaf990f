package persistence

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/domain/task"
	"github.com/contactapp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskStore implements task.Store and task.AdminStore using GORM.
// Rows are rehydrated through the lenient constructor so tasks whose due
// date has passed remain loadable.
type GormTaskStore struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormTaskStore creates a new GormTaskStore
func NewGormTaskStore(db *gorm.DB, clock shared.Clock) *GormTaskStore {
	if clock == nil {
		clock = shared.SystemClock()
	}
	return &GormTaskStore{db: db, clock: clock}
}

var (
	_ task.Store      = (*GormTaskStore)(nil)
	_ task.AdminStore = (*GormTaskStore)(nil)
)

// ExistsByID reports whether the owner has a task with the given ID.
func (s *GormTaskStore) ExistsByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.TaskModel{}).
		Where("owner_id = ? AND task_id = ?", owner, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new row for the task.
func (s *GormTaskStore) Insert(ctx context.Context, owner uuid.UUID, t *task.Task) error {
	model := models.TaskModelFromDomain(t, owner)
	if model == nil {
		return shared.ErrInvalidInput
	}
	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Save upserts the task, preserving the surrogate key of an existing row.
func (s *GormTaskStore) Save(ctx context.Context, owner uuid.UUID, t *task.Task) error {
	if t == nil {
		return shared.ErrInvalidInput
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.TaskModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND task_id = ?", owner, t.ID()).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(models.TaskModelFromDomain(t, owner)).Error
		}
		if err != nil {
			return err
		}
		if err := model.UpdateFromDomain(t); err != nil {
			return err
		}
		return tx.Save(&model).Error
	})
}

// FindByID finds a task by its ID for the owner.
func (s *GormTaskStore) FindByID(ctx context.Context, owner uuid.UUID, id string) (*task.Task, error) {
	var model models.TaskModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND task_id = ?", owner, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(s.clock)
}

// FindAll finds all tasks for the owner, ordered by ID.
func (s *GormTaskStore) FindAll(ctx context.Context, owner uuid.UUID) ([]*task.Task, error) {
	var taskModels []models.TaskModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("task_id").
		Find(&taskModels).Error; err != nil {
		return nil, err
	}
	return s.tasksToDomain(taskModels)
}

// DeleteByID removes the task and reports whether a row existed.
func (s *GormTaskStore) DeleteByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND task_id = ?", owner, id).
		Delete(&models.TaskModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update applies mutate to the task inside a transaction holding a row lock.
func (s *GormTaskStore) Update(ctx context.Context, owner uuid.UUID, id string, mutate func(*task.Task) error) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.TaskModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND task_id = ?", owner, id).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		domainTask, err := model.ToDomain(s.clock)
		if err != nil {
			return err
		}
		if err := mutate(domainTask); err != nil {
			return err
		}
		if err := model.UpdateFromDomain(domainTask); err != nil {
			return err
		}
		found = true
		return tx.Save(&model).Error
	})
	return found, err
}

// FindAllOwners returns every task regardless of owner.
func (s *GormTaskStore) FindAllOwners(ctx context.Context) ([]*task.Task, error) {
	var taskModels []models.TaskModel
	if err := s.db.WithContext(ctx).
		Order("owner_id, task_id").
		Find(&taskModels).Error; err != nil {
		return nil, err
	}
	return s.tasksToDomain(taskModels)
}

// DeleteAll removes every task row.
func (s *GormTaskStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.TaskModel{}).Error
}

func (s *GormTaskStore) tasksToDomain(taskModels []models.TaskModel) ([]*task.Task, error) {
	tasks := make([]*task.Task, len(taskModels))
	for i := range taskModels {
		t, err := taskModels[i].ToDomain(s.clock)
		if err != nil {
			return nil, err
		}
		tasks[i] = t
	}
	return tasks, nil
}
