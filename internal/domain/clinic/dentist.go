package clinic

import (
	"fmt"
	"strings"
)

// Dentist is a dentist sub-record of a clinic. Email and phone are optional.
type Dentist struct {
	name        string
	email       string
	phoneNumber string
}

// NewDentist validates and creates a Dentist.
func NewDentist(name, email, phoneNumber string) (Dentist, error) {
	if strings.TrimSpace(name) == "" {
		return Dentist{}, fmt.Errorf("dentist name is required")
	}
	for _, f := range []string{name, email, phoneNumber} {
		if len(f) > MaxFieldLength {
			return Dentist{}, fmt.Errorf("field too long (max %d chars)", MaxFieldLength)
		}
	}
	return Dentist{name: name, email: email, phoneNumber: phoneNumber}, nil
}

// ReconstructDentist rebuilds a Dentist from storage without validation.
func ReconstructDentist(name, email, phoneNumber string) Dentist {
	return Dentist{name: name, email: email, phoneNumber: phoneNumber}
}

// Name returns the dentist name.
func (d *Dentist) Name() string { return d.name }

// Email returns the dentist email ("" when absent).
func (d *Dentist) Email() string { return d.email }

// PhoneNumber returns the dentist phone number ("" when absent).
func (d *Dentist) PhoneNumber() string { return d.phoneNumber }
