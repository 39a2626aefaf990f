package persistence

import (
	"context"
	"errors"

	"github.com/contactapp/backend/internal/domain/appointment"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/contactapp/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAppointmentStore implements appointment.Store and appointment.AdminStore
// using GORM. Appointments revalidate on load, so rows whose date has passed
// surface a validation error instead of an aggregate.
type GormAppointmentStore struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormAppointmentStore creates a new GormAppointmentStore
func NewGormAppointmentStore(db *gorm.DB, clock shared.Clock) *GormAppointmentStore {
	if clock == nil {
		clock = shared.SystemClock()
	}
	return &GormAppointmentStore{db: db, clock: clock}
}

var (
	_ appointment.Store      = (*GormAppointmentStore)(nil)
	_ appointment.AdminStore = (*GormAppointmentStore)(nil)
)

// ExistsByID reports whether the owner has an appointment with the given ID.
func (s *GormAppointmentStore) ExistsByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AppointmentModel{}).
		Where("owner_id = ? AND appointment_id = ?", owner, id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert creates a new row for the appointment.
func (s *GormAppointmentStore) Insert(ctx context.Context, owner uuid.UUID, a *appointment.Appointment) error {
	model := models.AppointmentModelFromDomain(a, owner)
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

// Save upserts the appointment, preserving the surrogate key of an existing row.
func (s *GormAppointmentStore) Save(ctx context.Context, owner uuid.UUID, a *appointment.Appointment) error {
	if a == nil {
		return shared.ErrInvalidInput
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.AppointmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND appointment_id = ?", owner, a.ID()).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(models.AppointmentModelFromDomain(a, owner)).Error
		}
		if err != nil {
			return err
		}
		if err := model.UpdateFromDomain(a); err != nil {
			return err
		}
		return tx.Save(&model).Error
	})
}

// FindByID finds an appointment by its ID for the owner.
func (s *GormAppointmentStore) FindByID(ctx context.Context, owner uuid.UUID, id string) (*appointment.Appointment, error) {
	var model models.AppointmentModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ? AND appointment_id = ?", owner, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(s.clock)
}

// FindAll finds all appointments for the owner, ordered by ID.
func (s *GormAppointmentStore) FindAll(ctx context.Context, owner uuid.UUID) ([]*appointment.Appointment, error) {
	var appointmentModels []models.AppointmentModel
	if err := s.db.WithContext(ctx).
		Where("owner_id = ?", owner).
		Order("appointment_id").
		Find(&appointmentModels).Error; err != nil {
		return nil, err
	}
	return s.appointmentsToDomain(appointmentModels)
}

// DeleteByID removes the appointment and reports whether a row existed.
func (s *GormAppointmentStore) DeleteByID(ctx context.Context, owner uuid.UUID, id string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("owner_id = ? AND appointment_id = ?", owner, id).
		Delete(&models.AppointmentModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update applies mutate to the appointment inside a transaction holding a row lock.
func (s *GormAppointmentStore) Update(ctx context.Context, owner uuid.UUID, id string, mutate func(*appointment.Appointment) error) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.AppointmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("owner_id = ? AND appointment_id = ?", owner, id).
			First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		domainAppointment, err := model.ToDomain(s.clock)
		if err != nil {
			return err
		}
		if err := mutate(domainAppointment); err != nil {
			return err
		}
		if err := model.UpdateFromDomain(domainAppointment); err != nil {
			return err
		}
		found = true
		return tx.Save(&model).Error
	})
	return found, err
}

// FindAllOwners returns every appointment regardless of owner.
func (s *GormAppointmentStore) FindAllOwners(ctx context.Context) ([]*appointment.Appointment, error) {
	var appointmentModels []models.AppointmentModel
	if err := s.db.WithContext(ctx).
		Order("owner_id, appointment_id").
		Find(&appointmentModels).Error; err != nil {
		return nil, err
	}
	return s.appointmentsToDomain(appointmentModels)
}

// DeleteAll removes every appointment row.
func (s *GormAppointmentStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.AppointmentModel{}).Error
}

func (s *GormAppointmentStore) appointmentsToDomain(appointmentModels []models.AppointmentModel) ([]*appointment.Appointment, error) {
	appointments := make([]*appointment.Appointment, len(appointmentModels))
	for i := range appointmentModels {
		a, err := appointmentModels[i].ToDomain(s.clock)
		if err != nil {
			return nil, err
		}
		appointments[i] = a
	}
	return appointments, nil
}
