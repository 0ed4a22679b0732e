package chi

import (
	"fmt"

	"github.com/novadent/clindex/internal/domain"
	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// errorCode identifies the error class in API responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeClinicNotFound   errorCode = "clinic_not_found"
	codeUnauthorized     errorCode = "unauthorized"
	codeInternalError    errorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// DentistDTO is the wire shape of a dentist.
type DentistDTO struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// ClinicDTO is the wire shape of a clinic.
type ClinicDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Description string       `json:"description,omitempty"`
	Website     string       `json:"website,omitempty"`
	Dentists    []DentistDTO `json:"dentists,omitempty"`
}

// UpsertClinicRequest is the request body for creating or updating a clinic.
// An empty ID on POST asks the server to generate one.
type UpsertClinicRequest struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Description string       `json:"description,omitempty"`
	Website     string       `json:"website,omitempty"`
	Dentists    []DentistDTO `json:"dentists,omitempty"`
}

// ClinicCursorListResponse is a cursor-paginated clinic listing.
type ClinicCursorListResponse struct {
	Items      []ClinicDTO `json:"items"`
	HasMore    bool        `json:"has_more"`
	NextCursor *string     `json:"next_cursor,omitempty"`
}

// SearchResultListResponse wraps ranked search results.
type SearchResultListResponse struct {
	Items []ClinicDTO `json:"items"`
	Total int         `json:"total"`
}

// HealthResponse reports aggregated component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func clinicToDTO(c *domclinic.Clinic) ClinicDTO {
	var dentists []DentistDTO
	if ds := c.Dentists(); len(ds) > 0 {
		dentists = make([]DentistDTO, len(ds))
		for i := range ds {
			dentists[i] = DentistDTO{
				Name:        ds[i].Name(),
				Email:       ds[i].Email(),
				PhoneNumber: ds[i].PhoneNumber(),
			}
		}
	}

	return ClinicDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Address:     c.Address(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		Description: c.Description(),
		Website:     c.Website(),
		Dentists:    dentists,
	}
}

func clinicFromUpsert(id string, req UpsertClinicRequest) (domclinic.Clinic, error) {
	dentists := make([]domclinic.Dentist, 0, len(req.Dentists))
	for _, d := range req.Dentists {
		dentist, err := domclinic.NewDentist(d.Name, d.Email, d.PhoneNumber)
		if err != nil {
			return domclinic.Clinic{}, fmt.Errorf("dentist %q: %w: %w", d.Name, domain.ErrInvalidClinic, err)
		}
		dentists = append(dentists, dentist)
	}

	c, err := domclinic.New(
		id, req.Name, req.Address, req.Email, req.PhoneNumber,
		req.Description, req.Website, dentists,
	)
	if err != nil {
		return domclinic.Clinic{}, fmt.Errorf("build clinic: %w: %w", domain.ErrInvalidClinic, err)
	}
	return c, nil
}
