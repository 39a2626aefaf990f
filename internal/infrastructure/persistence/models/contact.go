package models

import (
	"github.com/contactapp/backend/internal/domain/contact"
	"github.com/contactapp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactModel is the persistence model for the Contact domain aggregate.
type ContactModel struct {
	OwnedModel
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contacts_owner_contact,priority:1"`
	ContactID string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_contacts_owner_contact,priority:2"`
	FirstName string    `gorm:"type:varchar(10);not null"`
	LastName  string    `gorm:"type:varchar(10);not null"`
	Phone     string    `gorm:"type:varchar(10);not null"`
	Address   string    `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact aggregate.
// Rows that fail domain validation are reported as validation errors.
func (m *ContactModel) ToDomain() (*contact.Contact, error) {
	return contact.New(m.ContactID, m.FirstName, m.LastName, m.Phone, m.Address)
}

// UpdateFromDomain overwrites the mutable columns from a domain Contact.
// The owner and natural identifier are never changed on an existing row.
func (m *ContactModel) UpdateFromDomain(c *contact.Contact) error {
	if m == nil || c == nil {
		return shared.ErrInvalidInput
	}
	m.FirstName = c.FirstName()
	m.LastName = c.LastName()
	m.Phone = c.Phone()
	m.Address = c.Address()
	return nil
}

// ContactModelFromDomain creates a new persistence model from a domain Contact.
func ContactModelFromDomain(c *contact.Contact, owner uuid.UUID) *ContactModel {
	if c == nil {
		return nil
	}
	return &ContactModel{
		OwnerID:   owner,
		ContactID: c.ID(),
		FirstName: c.FirstName(),
		LastName:  c.LastName(),
		Phone:     c.Phone(),
		Address:   c.Address(),
	}
}
