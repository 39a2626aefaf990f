package models

import (
	"time"

	"github.com/contactapp/backend/internal/domain/appointment"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AppointmentModel is the persistence model for the Appointment domain aggregate.
type AppointmentModel struct {
	OwnedModel
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_appointments_owner_appt,priority:1"`
	AppointmentID string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_appointments_owner_appt,priority:2"`
	Date          time.Time `gorm:"not null;index"`
	Description   string    `gorm:"type:varchar(50);not null"`
	ProjectID     string    `gorm:"type:varchar(10);index"`
	TaskID        string    `gorm:"type:varchar(10);index"`
}

// TableName returns the table name for GORM
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToDomain converts the persistence model to a domain Appointment aggregate.
// Appointments revalidate in full, so a row whose date has passed fails to
// load rather than producing an aggregate the domain would reject.
func (m *AppointmentModel) ToDomain(clock shared.Clock) (*appointment.Appointment, error) {
	return appointment.New(clock, m.AppointmentID, m.Date, m.Description, m.ProjectID, m.TaskID)
}

// UpdateFromDomain overwrites the mutable columns from a domain Appointment.
func (m *AppointmentModel) UpdateFromDomain(a *appointment.Appointment) error {
	if m == nil || a == nil {
		return shared.ErrInvalidInput
	}
	m.Date = a.Date()
	m.Description = a.Description()
	m.ProjectID = a.ProjectID()
	m.TaskID = a.TaskID()
	return nil
}

// AppointmentModelFromDomain creates a new persistence model from a domain Appointment.
func AppointmentModelFromDomain(a *appointment.Appointment, owner uuid.UUID) *AppointmentModel {
	if a == nil {
		return nil
	}
	return &AppointmentModel{
		OwnerID:       owner,
		AppointmentID: a.ID(),
		Date:          a.Date(),
		Description:   a.Description(),
		ProjectID:     a.ProjectID(),
		TaskID:        a.TaskID(),
	}
}
