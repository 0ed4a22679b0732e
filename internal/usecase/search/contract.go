package search

import (
	"context"

	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// ClinicLister reads the clinic candidate set for ranking.
type ClinicLister interface {
	List(ctx context.Context) ([]domclinic.Clinic, error)
}
