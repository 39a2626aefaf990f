package models

import (
	"time"
)

// OwnedModel provides common persistence fields for owner-scoped records.
// The surrogate key stays internal to the persistence layer; the owner
// column lives on each concrete model so it can participate in that
// table's composite (owner, natural id) unique index.
type OwnedModel struct {
	Key       uint64    `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
