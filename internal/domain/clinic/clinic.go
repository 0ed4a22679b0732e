// Package clinic holds the searchable clinic projection: a clinic's own
// contact fields plus its dentists, eagerly materialized by the repository
// layer so that search never triggers hidden I/O.
package clinic

import (
	"fmt"
	"strings"
)

// MaxFieldLength is the maximum allowed length for any single text field.
const MaxFieldLength = 1024

// Clinic is a read-only clinic projection. Optional fields are empty strings.
type Clinic struct {
	id          string
	name        string
	address     string
	email       string
	phoneNumber string
	description string
	website     string
	dentists    []Dentist
}

// New validates and creates a Clinic. Name and address are required;
// the remaining fields are optional. Dentist order is preserved.
func New(
	id, name, address, email, phoneNumber, description, website string,
	dentists []Dentist,
) (Clinic, error) {
	if strings.TrimSpace(name) == "" {
		return Clinic{}, fmt.Errorf("clinic name is required")
	}
	if strings.TrimSpace(address) == "" {
		return Clinic{}, fmt.Errorf("clinic address is required")
	}
	for _, f := range []string{id, name, address, email, phoneNumber, description, website} {
		if len(f) > MaxFieldLength {
			return Clinic{}, fmt.Errorf("field too long (max %d chars)", MaxFieldLength)
		}
	}
	return Clinic{
		id:          id,
		name:        name,
		address:     address,
		email:       email,
		phoneNumber: phoneNumber,
		description: description,
		website:     website,
		dentists:    dentists,
	}, nil
}

// Reconstruct rebuilds a Clinic from storage without validation.
func Reconstruct(
	id, name, address, email, phoneNumber, description, website string,
	dentists []Dentist,
) Clinic {
	return Clinic{
		id:          id,
		name:        name,
		address:     address,
		email:       email,
		phoneNumber: phoneNumber,
		description: description,
		website:     website,
		dentists:    dentists,
	}
}

// WithID returns a copy of the clinic with the given identifier.
func (c Clinic) WithID(id string) Clinic {
	c.id = id
	return c
}

// ID returns the clinic identifier.
func (c *Clinic) ID() string { return c.id }

// Name returns the clinic name.
func (c *Clinic) Name() string { return c.name }

// Address returns the clinic street address.
func (c *Clinic) Address() string { return c.address }

// Email returns the clinic contact email ("" when absent).
func (c *Clinic) Email() string { return c.email }

// PhoneNumber returns the clinic phone number ("" when absent).
func (c *Clinic) PhoneNumber() string { return c.phoneNumber }

// Description returns the clinic description ("" when absent).
func (c *Clinic) Description() string { return c.description }

// Website returns the clinic website URL ("" when absent).
func (c *Clinic) Website() string { return c.website }

// Dentists returns the clinic's dentists in insertion order.
func (c *Clinic) Dentists() []Dentist { return c.dentists }
