package persistence

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/project"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectStore implements project.Store and project.AdminStore using GORM.
type GormProjectStore struct {
	db *gorm.DB
}

// NewGormProjectStore creates a new GormProjectStore
func NewGormProjectStore(db *gorm.DB) *GormProjectStore {
	return &GormProjectStore{db: db}
}

var (
	_ project.Store      = (*GormProjectStore)(nil)
	_ project.AdminStore = (*GormProjectStore)(nil)
)

// ExistsByID reports whether the owner has a project with the given ID.
func (s *GormProjectStore) ExistsByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ProjectModel{}).
		Where("owner_id = ? AND project_id = ?", owner, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new row for the project.
func (s *GormProjectStore) Insert(ctx context.Context, owner uuid.UUID, p *project.Project) error {
	model := models.ProjectModelFromDomain(p, owner)
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

// Save upserts the project, preserving the surrogate key of an existing row.
func (s *GormProjectStore) Save(ctx context.Context, owner uuid.UUID, p *project.Project) error {
	if p == nil {
		return shared.ErrInvalidInput
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ProjectModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND project_id = ?", owner, p.ID()).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(models.ProjectModelFromDomain(p, owner)).Error
		}
		if err != nil {
			return err
		}
		if err := model.UpdateFromDomain(p); err != nil {
			return err
		}
		return tx.Save(&model).Error
	})
}

// FindByID finds a project by its ID for the owner.
func (s *GormProjectStore) FindByID(ctx context.Context, owner uuid.UUID, id string) (*project.Project, error) {
	var model models.ProjectModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND project_id = ?", owner, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all projects for the owner, ordered by ID.
func (s *GormProjectStore) FindAll(ctx context.Context, owner uuid.UUID) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("project_id").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return projectsToDomain(projectModels)
}

// DeleteByID removes the project together with its contact links and reports
// whether a project row existed.
func (s *GormProjectStore) DeleteByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("owner_id = ? AND project_id = ?", owner, id).
			Delete(&models.ProjectModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("owner_id = ? AND project_id = ?", owner, id).
			Delete(&models.ProjectContactLinkModel{}).Error
	})
	return found, err
}

// Update applies mutate to the project inside a transaction holding a row lock.
func (s *GormProjectStore) Update(ctx context.Context, owner uuid.UUID, id string, mutate func(*project.Project) error) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ProjectModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND project_id = ?", owner, id).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		domainProject, err := model.ToDomain()
		if err != nil {
			return err
		}
		if err := mutate(domainProject); err != nil {
			return err
		}
		if err := model.UpdateFromDomain(domainProject); err != nil {
			return err
		}
		found = true
		return tx.Save(&model).Error
	})
	return found, err
}

// FindAllOwners returns every project regardless of owner.
func (s *GormProjectStore) FindAllOwners(ctx context.Context) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	if err := s.db.WithContext(ctx).
		Order("owner_id, project_id").
		Find(&projectModels).Error; err != nil {
		return nil, err
	}
	return projectsToDomain(projectModels)
}

// DeleteAll removes every project row and every contact link.
func (s *GormProjectStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ProjectContactLinkModel{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.ProjectModel{}).Error
	})
}

func projectsToDomain(projectModels []models.ProjectModel) ([]*project.Project, error) {
	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		p, err := projectModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		projects[i] = p
	}
	return projects, nil
}
