package project

import (
	"github.com/contactapp/backend/internal/domain/shared"
)

const (
	minFieldLength       = 1
	maxIDLength          = 10
	maxNameLength        = 50
	maxDescriptionLength = 100

	// MaxLinkRoleLength bounds the optional role on a project-contact link.
	MaxLinkRoleLength = 30
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusCompleted Status = "COMPLETED"
	StatusArchived  Status = "ARCHIVED"
)

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnHold, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

// Project is a validated project record. The id is immutable after
// construction; the description may be blank.
type Project struct {
	id          string
	name        string
	description string
	status      Status
}

// ValidateID validates and trims a project identifier.
func ValidateID(id string) (string, error) {
	return shared.ValidateLength(id, "projectId", minFieldLength, maxIDLength)
}

// New creates a Project after validating and trimming every field.
func New(id, name, description string, status Status) (*Project, error) {
	trimmedID, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	p := &Project{id: trimmedID}
	if err := p.Update(name, description, status); err != nil {
		return nil, err
	}
	return p, nil
}

// ID returns the immutable natural identifier
func (p *Project) ID() string {
	return p.id
}

// Name returns the project name
func (p *Project) Name() string {
	return p.name
}

// Description returns the project description, possibly empty
func (p *Project) Description() string {
	return p.description
}

// Status returns the project status
func (p *Project) Status() Status {
	return p.status
}

// SetName validates and replaces the name
func (p *Project) SetName(name string) error {
	v, err := shared.ValidateLength(name, "name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	p.name = v
	return nil
}

// SetDescription validates and replaces the description; blank is allowed
func (p *Project) SetDescription(description string) error {
	v, err := shared.ValidateLengthAllowBlank(description, "description", maxDescriptionLength)
	if err != nil {
		return err
	}
	p.description = v
	return nil
}

// SetStatus validates and replaces the status
func (p *Project) SetStatus(status Status) error {
	v, err := validateStatus(status)
	if err != nil {
		return err
	}
	p.status = v
	return nil
}

// Update replaces every mutable field after validating every new value.
// If any value is invalid nothing is assigned.
func (p *Project) Update(name, description string, status Status) error {
	trimmedName, err := shared.ValidateLength(name, "name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	trimmedDescription, err := shared.ValidateLengthAllowBlank(description, "description", maxDescriptionLength)
	if err != nil {
		return err
	}
	validStatus, err := validateStatus(status)
	if err != nil {
		return err
	}

	p.name = trimmedName
	p.description = trimmedDescription
	p.status = validStatus
	return nil
}

// Copy reconstructs the project through the public constructor.
func (p *Project) Copy() (*Project, error) {
	return New(p.id, p.name, p.description, p.status)
}

func validateStatus(status Status) (Status, error) {
	if status == "" {
		return "", shared.NewValidationError("status", "status must not be blank")
	}
	if !status.Valid() {
		return "", shared.NewValidationError("status", "status must be one of ACTIVE, ON_HOLD, COMPLETED, ARCHIVED")
	}
	return status, nil
}
