package persistence

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectLinkStore implements project.LinkStore using GORM. Links only
// exist in the relational backend; the in-memory stores have no counterpart.
type GormProjectLinkStore struct {
	db *gorm.DB
}

// NewGormProjectLinkStore creates a new GormProjectLinkStore
func NewGormProjectLinkStore(db *gorm.DB) *GormProjectLinkStore {
	return &GormProjectLinkStore{db: db}
}

var _ project.LinkStore = (*GormProjectLinkStore)(nil)

// LinkContact associates a contact with a project. It returns false when the
// project or the contact does not exist for the owner. A duplicate pair
// fails with shared.ErrAlreadyExists.
func (s *GormProjectLinkStore) LinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID, role string) (bool, error) {
	normalizedRole, err := shared.ValidateLengthAllowBlank(role, "role", project.MaxLinkRoleLength)
	if err != nil {
		return false, err
	}

	linked := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ProjectModel{}).
			Where("owner_id = ? AND project_id = ?", owner, projectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		if err := tx.Model(&models.ContactModel{}).
			Where("owner_id = ? AND contact_id = ?", owner, contactID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return nil
		}

		link := &models.ProjectContactLinkModel{
			OwnerID:   owner,
			ProjectID: projectID,
			ContactID: contactID,
			Role:      normalizedRole,
		}
		if err := tx.Create(link).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}
		linked = true
		return nil
	})
	return linked, err
}

// UnlinkContact removes the association and reports whether one existed.
func (s *GormProjectLinkStore) UnlinkContact(ctx context.Context, owner uuid.UUID, projectID, contactID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND project_id = ? AND contact_id = ?", owner, projectID, contactID).
		Delete(&models.ProjectContactLinkModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ContactsFor returns the contacts linked to the project, ordered by ID.
func (s *GormProjectLinkStore) ContactsFor(ctx context.Context, owner uuid.UUID, projectID string) ([]*contact.Contact, error) {
	var contactModels []models.ContactModel
	if err := s.db.WithContext(ctx).Model(&models.ContactModel{}).
		Joins("JOIN project_contacts ON project_contacts.owner_id = contacts.owner_id AND project_contacts.contact_id = contacts.contact_id").
		Where("contacts.owner_id = ? AND project_contacts.project_id = ?", owner, projectID).
		Order("contacts.contact_id").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return contactsToDomain(contactModels)
}

// ProjectsFor returns the projects a contact is linked to, ordered by ID.
func (s *GormProjectLinkStore) ProjectsFor(ctx context.Context, owner uuid.UUID, contactID string) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	if err := s.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Joins("JOIN project_contacts ON project_contacts.owner_id = projects.owner_id AND project_contacts.project_id = projects.project_id").
		Where("projects.owner_id = ? AND project_contacts.contact_id = ?", owner, contactID).
		Order("projects.project_id").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return projectsToDomain(projectModels)
}
