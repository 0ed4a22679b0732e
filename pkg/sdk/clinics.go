package clindex

import (
	"context"
	"fmt"
	"time"

	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// ClinicService manages the clinic directory.
type ClinicService struct {
	svc directoryUseCase
	obs *observer
}

// Create stores a new clinic. A clinic without an ID gets a generated one;
// a provided ID must be unused.
func (s *ClinicService) Create(ctx context.Context, c Clinic) (stored Clinic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("clinic_create", start, err) }()

	dom, err := clinicToDomain(c)
	if err != nil {
		return Clinic{}, err
	}

	created, err := s.svc.Create(ctx, dom)
	if err != nil {
		return Clinic{}, fmt.Errorf("create clinic: %w", err)
	}
	return clinicFromDomain(&created), nil
}

// Upsert creates or updates a clinic. Returns the stored clinic and true
// if it was created rather than updated.
func (s *ClinicService) Upsert(ctx context.Context, c Clinic) (stored Clinic, created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("clinic_upsert", start, err) }()

	dom, err := clinicToDomain(c)
	if err != nil {
		return Clinic{}, false, err
	}

	res, created, err := s.svc.Upsert(ctx, dom)
	if err != nil {
		return Clinic{}, false, fmt.Errorf("upsert clinic: %w", err)
	}
	return clinicFromDomain(&res), created, nil
}

// Get retrieves a clinic by ID.
func (s *ClinicService) Get(ctx context.Context, id string) (c Clinic, err error) {
	start := time.Now()
	defer func() { s.obs.observe("clinic_get", start, err) }()

	dom, err := s.svc.Get(ctx, id)
	if err != nil {
		return Clinic{}, fmt.Errorf("get clinic: %w", err)
	}
	return clinicFromDomain(&dom), nil
}

// Delete removes a clinic by ID.
func (s *ClinicService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("clinic_delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete clinic: %w", err)
	}
	return nil
}

// List returns a page of clinics ordered by ID. Pass the returned
// NextCursor to fetch the following page; an empty cursor starts over.
func (s *ClinicService) List(ctx context.Context, cursor string, limit int) (res ListResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("clinic_list", start, err) }()

	clinics, next, err := s.svc.List(ctx, cursor, limit)
	if err != nil {
		return ListResult{}, fmt.Errorf("list clinics: %w", err)
	}

	out := make([]Clinic, len(clinics))
	for i := range clinics {
		out[i] = clinicFromDomain(&clinics[i])
	}
	return ListResult{Clinics: out, NextCursor: next}, nil
}

func clinicToDomain(c Clinic) (domclinic.Clinic, error) {
	dentists := make([]domclinic.Dentist, 0, len(c.Dentists))
	for _, d := range c.Dentists {
		dentist, err := domclinic.NewDentist(d.Name, d.Email, d.PhoneNumber)
		if err != nil {
			return domclinic.Clinic{}, fmt.Errorf("dentist %q: %w: %w", d.Name, ErrInvalidClinic, err)
		}
		dentists = append(dentists, dentist)
	}

	dom, err := domclinic.New(
		c.ID, c.Name, c.Address, c.Email, c.PhoneNumber,
		c.Description, c.Website, dentists,
	)
	if err != nil {
		return domclinic.Clinic{}, fmt.Errorf("build clinic: %w: %w", ErrInvalidClinic, err)
	}
	return dom, nil
}

func clinicFromDomain(c *domclinic.Clinic) Clinic {
	var dentists []Dentist
	if ds := c.Dentists(); len(ds) > 0 {
		dentists = make([]Dentist, len(ds))
		for i := range ds {
			dentists[i] = Dentist{
				Name:        ds[i].Name(),
				Email:       ds[i].Email(),
				PhoneNumber: ds[i].PhoneNumber(),
			}
		}
	}

	return Clinic{
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
