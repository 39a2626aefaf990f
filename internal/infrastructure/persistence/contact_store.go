package persistence

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContactStore implements contact.Store and contact.AdminStore using GORM.
type GormContactStore struct {
	db *gorm.DB
}

// NewGormContactStore creates a new GormContactStore
func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{db: db}
}

var (
	_ contact.Store      = (*GormContactStore)(nil)
	_ contact.AdminStore = (*GormContactStore)(nil)
)

// ExistsByID reports whether the owner has a contact with the given ID.
func (s *GormContactStore) ExistsByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ContactModel{}).
		Where("owner_id = ? AND contact_id = ?", owner, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new row for the contact. A concurrent insert of the same
// (owner, id) pair loses against the unique index and surfaces as
// shared.ErrAlreadyExists.
func (s *GormContactStore) Insert(ctx context.Context, owner uuid.UUID, c *contact.Contact) error {
	model := models.ContactModelFromDomain(c, owner)
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

// Save upserts the contact, preserving the surrogate key of an existing row.
func (s *GormContactStore) Save(ctx context.Context, owner uuid.UUID, c *contact.Contact) error {
	if c == nil {
		return shared.ErrInvalidInput
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ContactModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND contact_id = ?", owner, c.ID()).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(models.ContactModelFromDomain(c, owner)).Error
		}
		if err != nil {
			return err
		}
		if err := model.UpdateFromDomain(c); err != nil {
			return err
		}
		return tx.Save(&model).Error
	})
}

// FindByID finds a contact by its ID for the owner.
func (s *GormContactStore) FindByID(ctx context.Context, owner uuid.UUID, id string) (*contact.Contact, error) {
	var model models.ContactModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND contact_id = ?", owner, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all contacts for the owner, ordered by ID.
func (s *GormContactStore) FindAll(ctx context.Context, owner uuid.UUID) ([]*contact.Contact, error) {
	var contactModels []models.ContactModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("contact_id").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return contactsToDomain(contactModels)
}

// DeleteByID removes the contact and reports whether a row existed.
func (s *GormContactStore) DeleteByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND contact_id = ?", owner, id).
		Delete(&models.ContactModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update applies mutate to the contact inside a transaction holding a row
// lock, so concurrent updates serialize instead of losing writes.
func (s *GormContactStore) Update(ctx context.Context, owner uuid.UUID, id string, mutate func(*contact.Contact) error) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ContactModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND contact_id = ?", owner, id).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		domainContact, err := model.ToDomain()
		if err != nil {
			return err
		}
		if err := mutate(domainContact); err != nil {
			return err
		}
		if err := model.UpdateFromDomain(domainContact); err != nil {
			return err
		}
		found = true
		return tx.Save(&model).Error
	})
	return found, err
}

// FindAllOwners returns every contact regardless of owner.
func (s *GormContactStore) FindAllOwners(ctx context.Context) ([]*contact.Contact, error) {
	var contactModels []models.ContactModel
	if err := s.db.WithContext(ctx).
		Order("owner_id, contact_id").
		Find(&contactModels).Error; err != nil {
		return nil, err
	}
	return contactsToDomain(contactModels)
}

// DeleteAll removes every contact row.
func (s *GormContactStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.ContactModel{}).Error
}

func contactsToDomain(contactModels []models.ContactModel) ([]*contact.Contact, error) {
	contacts := make([]*contact.Contact, len(contactModels))
	for i := range contactModels {
		c, err := contactModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		contacts[i] = c
	}
	return contacts, nil
}
