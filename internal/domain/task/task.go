package task

import (
	"time"

	"github.com/contactapp/backend/internal/domain/shared"
)

const (
	minFieldLength       = 1
	maxIDLength          = 10
	maxNameLength        = 20
	maxDescriptionLength = 50
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Valid reports whether the status is one of the known values
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a validated task record. The id is immutable after construction.
// The optional due date must not be in the past when it is set through New,
// Update, or SetDueDate; a stored task whose due date has since passed stays
// loadable through Restore so overdue tasks remain visible.
type Task struct {
	clock       shared.Clock
	id          string
	name        string
	description string
	status      Status
	dueDate     *time.Time
	projectID   string
}

// New creates a Task from caller input, validating every field. A zero-value
// status defaults to TODO; dueDate may be nil but must not name a day before
// today per the given clock.
func New(clock shared.Clock, id, name, description string, status Status, dueDate *time.Time, projectID string) (*Task, error) {
	t, err := newTask(clock, id)
	if err != nil {
		return nil, err
	}
	if err := t.Update(name, description, status, dueDate, projectID); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore rebuilds a Task from stored state. Every field constraint is
// re-checked except the due date's not-in-the-past rule, which is an input
// policy rather than a standing invariant.
func Restore(clock shared.Clock, id, name, description string, status Status, dueDate *time.Time, projectID string) (*Task, error) {
	t, err := newTask(clock, id)
	if err != nil {
		return nil, err
	}
	if err := t.apply(name, description, status, dueDate, projectID, false); err != nil {
		return nil, err
	}
	return t, nil
}

// ValidateID validates and trims a task identifier.
func ValidateID(id string) (string, error) {
	return shared.ValidateLength(id, "taskId", minFieldLength, maxIDLength)
}

func newTask(clock shared.Clock, id string) (*Task, error) {
	if clock == nil {
		clock = shared.SystemClock()
	}
	trimmedID, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	return &Task{clock: clock, id: trimmedID}, nil
}

// ID returns the immutable natural identifier
func (t *Task) ID() string {
	return t.id
}

// Name returns the task name
func (t *Task) Name() string {
	return t.name
}

// Description returns the task description
func (t *Task) Description() string {
	return t.description
}

// Status returns the task status
func (t *Task) Status() Status {
	return t.status
}

// DueDate returns an independent copy of the optional due date
func (t *Task) DueDate() *time.Time {
	if t.dueDate == nil {
		return nil
	}
	d := *t.dueDate
	return &d
}

// ProjectID returns the optional project soft reference, empty when unlinked
func (t *Task) ProjectID() string {
	return t.projectID
}

// SetName validates and replaces the name
func (t *Task) SetName(name string) error {
	v, err := shared.ValidateLength(name, "name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	t.name = v
	return nil
}

// SetDescription validates and replaces the description
func (t *Task) SetDescription(description string) error {
	v, err := shared.ValidateLength(description, "description", minFieldLength, maxDescriptionLength)
	if err != nil {
		return err
	}
	t.description = v
	return nil
}

// SetStatus validates and replaces the status; empty defaults to TODO
func (t *Task) SetStatus(status Status) error {
	v, err := normalizeStatus(status)
	if err != nil {
		return err
	}
	t.status = v
	return nil
}

// SetDueDate validates and replaces the optional due date; nil clears it
func (t *Task) SetDueDate(dueDate *time.Time) error {
	v, err := t.validateDueDate(dueDate, true)
	if err != nil {
		return err
	}
	t.dueDate = v
	return nil
}

// SetProjectID validates and replaces the optional project link; empty unlinks
func (t *Task) SetProjectID(projectID string) error {
	v, err := validateProjectID(projectID)
	if err != nil {
		return err
	}
	t.projectID = v
	return nil
}

// Update replaces every mutable field after validating every new value.
// If any value is invalid nothing is assigned.
func (t *Task) Update(name, description string, status Status, dueDate *time.Time, projectID string) error {
	return t.apply(name, description, status, dueDate, projectID, true)
}

func (t *Task) apply(name, description string, status Status, dueDate *time.Time, projectID string, checkDuePast bool) error {
	trimmedName, err := shared.ValidateLength(name, "name", minFieldLength, maxNameLength)
	if err != nil {
		return err
	}
	trimmedDescription, err := shared.ValidateLength(description, "description", minFieldLength, maxDescriptionLength)
	if err != nil {
		return err
	}
	normalizedStatus, err := normalizeStatus(status)
	if err != nil {
		return err
	}
	due, err := t.validateDueDate(dueDate, checkDuePast)
	if err != nil {
		return err
	}
	link, err := validateProjectID(projectID)
	if err != nil {
		return err
	}

	t.name = trimmedName
	t.description = trimmedDescription
	t.status = normalizedStatus
	t.dueDate = due
	t.projectID = link
	return nil
}

// Copy reconstructs the task from its current state. Overdue tasks stay
// copyable, so the due date skips the not-in-the-past rule.
func (t *Task) Copy() (*Task, error) {
	return Restore(t.clock, t.id, t.name, t.description, t.status, t.dueDate, t.projectID)
}

func (t *Task) validateDueDate(dueDate *time.Time, checkPast bool) (*time.Time, error) {
	if dueDate == nil {
		return nil, nil
	}
	d := *dueDate
	if d.IsZero() {
		return nil, shared.NewValidationError("dueDate", "dueDate must not be zero")
	}
	if checkPast {
		if _, err := shared.ValidateDateNotPast(d, "dueDate", t.clock); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func normalizeStatus(status Status) (Status, error) {
	if status == "" {
		return StatusTodo, nil
	}
	if !status.Valid() {
		return "", shared.NewValidationError("status", "status must be one of TODO, IN_PROGRESS, DONE")
	}
	return status, nil
}

func validateProjectID(projectID string) (string, error) {
	return shared.ValidateLengthAllowBlank(projectID, "projectId", maxIDLength)
}
