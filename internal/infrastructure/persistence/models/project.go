package models

import (
	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProjectModel is the persistence model for the Project domain aggregate.
type ProjectModel struct {
	OwnedModel
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_projects_owner_project,priority:1"`
	ProjectID   string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_projects_owner_project,priority:2"`
	Name        string         `gorm:"type:varchar(50);not null"`
	Description string         `gorm:"type:varchar(100)"`
	Status      project.Status `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project aggregate.
func (m *ProjectModel) ToDomain() (*project.Project, error) {
	return project.New(m.ProjectID, m.Name, m.Description, m.Status)
}

// UpdateFromDomain overwrites the mutable columns from a domain Project.
func (m *ProjectModel) UpdateFromDomain(p *project.Project) error {
	if m == nil || p == nil {
		return shared.ErrInvalidInput
	}
	m.Name = p.Name()
	m.Description = p.Description()
	m.Status = p.Status()
	return nil
}

// ProjectModelFromDomain creates a new persistence model from a domain Project.
func ProjectModelFromDomain(p *project.Project, owner uuid.UUID) *ProjectModel {
	if p == nil {
		return nil
	}
	return &ProjectModel{
		OwnerID:     owner,
		ProjectID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Status:      p.Status(),
	}
}
