package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectContactLinkModel is the junction record tying a contact to a
// project for one owner. The pair is unique per owner; the role is free
// text describing the contact's involvement.
type ProjectContactLinkModel struct {
	Key       uint64    `gorm:"primaryKey;autoIncrement"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_project_contacts_pair,priority:1"`
	ProjectID string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_project_contacts_pair,priority:2"`
	ContactID string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_project_contacts_pair,priority:3;index"`
	Role      string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProjectContactLinkModel) TableName() string {
	return "project_contacts"
}
