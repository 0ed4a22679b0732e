package domain

import "errors"

var (
	// ErrClinicNotFound signals a missing clinic record.
	ErrClinicNotFound = errors.New("clinic not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidClinic signals a clinic projection that violates the data model.
	ErrInvalidClinic = errors.New("invalid clinic")
	// ErrInvalidQuery signals a malformed search query.
	ErrInvalidQuery = errors.New("invalid query")
)
