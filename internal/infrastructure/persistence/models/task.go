package models

import (
	"time"

	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/domain/task"
	"github.com/google/uuid"
)

// TaskModel is the persistence model for the Task domain aggregate.
type TaskModel struct {
	OwnedModel
	OwnerID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_tasks_owner_task,priority:1"`
	TaskID      string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_tasks_owner_task,priority:2"`
	Name        string      `gorm:"type:varchar(20);not null"`
	Description string      `gorm:"type:varchar(50);not null"`
	Status      task.Status `gorm:"type:varchar(20);not null;default:'TODO';index"`
	DueDate     *time.Time  `gorm:"index"`
	ProjectID   string      `gorm:"type:varchar(10);index"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task aggregate.
// Tasks are rehydrated through Restore so rows whose due date has passed
// since they were written still load.
func (m *TaskModel) ToDomain(clock shared.Clock) (*task.Task, error) {
	return task.Restore(clock, m.TaskID, m.Name, m.Description, m.Status, m.DueDate, m.ProjectID)
}

// UpdateFromDomain overwrites the mutable columns from a domain Task.
func (m *TaskModel) UpdateFromDomain(t *task.Task) error {
	if m == nil || t == nil {
		return shared.ErrInvalidInput
	}
	m.Name = t.Name()
	m.Description = t.Description()
	m.Status = t.Status()
	m.DueDate = t.DueDate()
	m.ProjectID = t.ProjectID()
	return nil
}

// TaskModelFromDomain creates a new persistence model from a domain Task.
func TaskModelFromDomain(t *task.Task, owner uuid.UUID) *TaskModel {
	if t == nil {
		return nil
	}
	return &TaskModel{
		OwnerID:     owner,
		TaskID:      t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		Status:      t.Status(),
		DueDate:     t.DueDate(),
		ProjectID:   t.ProjectID(),
	}
}
