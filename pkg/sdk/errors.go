package clindex

import "github.com/novadent/clindex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrClinicNotFound = domain.ErrClinicNotFound
	ErrAlreadyExists  = domain.ErrAlreadyExists
	ErrInvalidClinic  = domain.ErrInvalidClinic
	ErrInvalidQuery   = domain.ErrInvalidQuery
)
