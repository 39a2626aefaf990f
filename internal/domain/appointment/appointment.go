package appointment

import (
	"time"

	"github.com/contactapp/backend/internal/domain/shared"
)

const (
	minFieldLength       = 1
	maxIDLength          = 10
	maxDescriptionLength = 50
	maxLinkIDLength      = 10
)

// Appointment is a validated appointment record. The id is immutable after
// construction. The date must not be earlier than "now" per the injected
// clock; an instant equal to now is valid. The optional projectID and taskID
// fields are soft references checked for length only, never for existence.
type Appointment struct {
	clock       shared.Clock
	id          string
	date        time.Time
	description string
	projectID   string
	taskID      string
}

// ValidateID validates and trims an appointment identifier.
func ValidateID(id string) (string, error) {
	return shared.ValidateLength(id, "appointmentId", minFieldLength, maxIDLength)
}

// New creates an Appointment after validating every field. Date and
// description have no single-field setters: both belong to the aggregate's
// atomic update path so neither can be left unvalidated.
func New(clock shared.Clock, id string, date time.Time, description, projectID, taskID string) (*Appointment, error) {
	if clock == nil {
		clock = shared.SystemClock()
	}
	trimmedID, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	a := &Appointment{clock: clock, id: trimmedID}
	if err := a.Update(date, description, projectID, taskID); err != nil {
		return nil, err
	}
	return a, nil
}

// ID returns the immutable natural identifier
func (a *Appointment) ID() string {
	return a.id
}

// Date returns the appointment date
func (a *Appointment) Date() time.Time {
	return a.date
}

// Description returns the appointment description
func (a *Appointment) Description() string {
	return a.description
}

// ProjectID returns the optional project soft reference, empty when unlinked
func (a *Appointment) ProjectID() string {
	return a.projectID
}

// TaskID returns the optional task soft reference, empty when unlinked
func (a *Appointment) TaskID() string {
	return a.taskID
}

// Update replaces every mutable field after validating every new value.
// If any value is invalid nothing is assigned.
func (a *Appointment) Update(date time.Time, description, projectID, taskID string) error {
	validDate, err := shared.ValidateInstantNotPast(date, "appointmentDate", a.clock)
	if err != nil {
		return err
	}
	trimmedDescription, err := shared.ValidateLength(description, "description", minFieldLength, maxDescriptionLength)
	if err != nil {
		return err
	}
	projectLink, err := shared.ValidateLengthAllowBlank(projectID, "projectId", maxLinkIDLength)
	if err != nil {
		return err
	}
	taskLink, err := shared.ValidateLengthAllowBlank(taskID, "taskId", maxLinkIDLength)
	if err != nil {
		return err
	}

	a.date = validDate
	a.description = trimmedDescription
	a.projectID = projectLink
	a.taskID = taskLink
	return nil
}

// Copy reconstructs the appointment through the public constructor. The
// not-in-the-past rule is re-applied, so state that has stopped satisfying
// the aggregate's invariants fails here instead of leaking.
func (a *Appointment) Copy() (*Appointment, error) {
	return New(a.clock, a.id, a.date, a.description, a.projectID, a.taskID)
}
