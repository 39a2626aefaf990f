package contact

import (
	"github.com/contactapp/backend/internal/domain/shared"
)

const (
	minFieldLength   = 1
	maxIDLength      = 10
	maxNameLength    = 10
	maxAddressLength = 30
	phoneLength      = 10
)

// Contact is a validated contact record. The id is immutable after
// construction; every mutable field is validated before assignment, so a
// Contact is never observable in a state that violates its own constraints.
type Contact struct {
	id        string
	firstName string
	lastName  string
	phone     string
	address   string
}

// ValidateID validates and trims a contact identifier. Callers that accept
// an id from outside use it so a padded id addresses the same record the
// constructor stored.
func ValidateID(id string) (string, error) {
	return shared.ValidateLength(id, "contactId", minFieldLength, maxIDLength)
}

// New creates a Contact after validating and trimming every field.
func New(id, firstName, lastName, phone, address string) (*Contact, error) {
	trimmedID, err := ValidateID(id)
	if err != nil {
		return nil, err
	}
	c := &Contact{id: trimmedID}
	if err := c.Update(firstName, lastName, phone, address); err != nil {
		return nil, err
	}
	return c, nil
}

// ID returns the immutable natural identifier
func (c *Contact) ID() string {
	return c.id
}

// FirstName returns the contact's first name
func (c *Contact) FirstName() string {
	return c.firstName
}

// LastName returns the contact's last name
func (c *Contact) LastName() string {
	return c.lastName
}

// Phone returns the contact's 10-digit phone number
func (c *Contact) Phone() string {
	return c.phone
}

// Address returns the contact's address
func (c *Contact) Address() string {
	return c.address
}

// SetFirstName validates and replaces the first name
func (c *Contact) SetFirstName(firstName string) error {
	v, err := validateName(firstName, "firstName")
	if err != nil {
		return err
	}
	c.firstName = v
	return nil
}

// SetLastName validates and replaces the last name
func (c *Contact) SetLastName(lastName string) error {
	v, err := validateName(lastName, "lastName")
	if err != nil {
		return err
	}
	c.lastName = v
	return nil
}

// SetPhone validates and replaces the phone number
func (c *Contact) SetPhone(phone string) error {
	v, err := shared.ValidateDigits(phone, "phone", phoneLength)
	if err != nil {
		return err
	}
	c.phone = v
	return nil
}

// SetAddress validates and replaces the address
func (c *Contact) SetAddress(address string) error {
	v, err := shared.ValidateLength(address, "address", minFieldLength, maxAddressLength)
	if err != nil {
		return err
	}
	c.address = v
	return nil
}

// Update replaces every mutable field after validating every new value.
// If any value is invalid nothing is assigned, so callers never see a
// partially updated contact.
func (c *Contact) Update(firstName, lastName, phone, address string) error {
	first, err := validateName(firstName, "firstName")
	if err != nil {
		return err
	}
	last, err := validateName(lastName, "lastName")
	if err != nil {
		return err
	}
	digits, err := shared.ValidateDigits(phone, "phone", phoneLength)
	if err != nil {
		return err
	}
	addr, err := shared.ValidateLength(address, "address", minFieldLength, maxAddressLength)
	if err != nil {
		return err
	}

	c.firstName = first
	c.lastName = last
	c.phone = digits
	c.address = addr
	return nil
}

// Copy reconstructs the contact through the public constructor, so the copy
// is independent and the source state is re-checked against the current
// invariants.
func (c *Contact) Copy() (*Contact, error) {
	return New(c.id, c.firstName, c.lastName, c.phone, c.address)
}

func validateName(value, field string) (string, error) {
	return shared.ValidateLength(value, field, minFieldLength, maxNameLength)
}
