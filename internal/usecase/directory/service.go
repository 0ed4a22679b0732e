// Package directory manages the clinic catalog behind the search engine.
package directory

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/novadent/clindex/internal/domain"
	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// Service handles clinic CRUD.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates a directory service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Create stores a new clinic. A clinic without an ID gets a fresh UUID;
// a provided ID must not collide with an existing clinic.
func (s *Service) Create(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, error) {
	if c.ID() == "" {
		c = c.WithID(uuid.NewString())
	} else if _, err := s.repo.Get(ctx, c.ID()); err == nil {
		return domclinic.Clinic{}, fmt.Errorf("clinic %s: %w", c.ID(), domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrClinicNotFound) {
		return domclinic.Clinic{}, fmt.Errorf("check clinic: %w", err)
	}

	if _, err := s.repo.Upsert(ctx, &c); err != nil {
		return domclinic.Clinic{}, fmt.Errorf("create clinic: %w", err)
	}
	return c, nil
}

// Upsert creates or updates a clinic. A clinic without an ID gets a fresh
// UUID. Returns the stored clinic and true if it was created.
func (s *Service) Upsert(ctx context.Context, c domclinic.Clinic) (domclinic.Clinic, bool, error) {
	if c.ID() == "" {
		c = c.WithID(uuid.NewString())
	}

	created, err := s.repo.Upsert(ctx, &c)
	if err != nil {
		return domclinic.Clinic{}, false, fmt.Errorf("upsert clinic: %w", err)
	}
	return c, created, nil
}

// Get retrieves a clinic by ID.
func (s *Service) Get(ctx context.Context, id string) (domclinic.Clinic, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domclinic.Clinic{}, fmt.Errorf("get clinic: %w", err)
	}
	return c, nil
}

// Delete removes a clinic.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete clinic: %w", err)
	}
	return nil
}

// List returns a page of clinics ordered by ID. The cursor is an opaque
// offset token; an empty nextCursor means the listing is exhausted.
func (s *Service) List(ctx context.Context, cursor string, limit int) (
	clinics []domclinic.Clinic, nextCursor string, err error,
) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	offset := 0
	if cursor != "" {
		offset, err = strconv.Atoi(cursor)
		if err != nil || offset < 0 {
			return nil, "", fmt.Errorf("invalid cursor %q: %w", cursor, domain.ErrInvalidQuery)
		}
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list clinics: %w", err)
	}

	if offset >= len(all) {
		return []domclinic.Clinic{}, "", nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	page := all[offset:end]
	if end < len(all) {
		nextCursor = strconv.Itoa(end)
	}
	return page, nextCursor, nil
}
