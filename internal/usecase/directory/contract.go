package directory

import (
	"context"

	domclinic "github.com/novadent/clindex/internal/domain/clinic"
)

// Repository defines the storage contract for clinics.
type Repository interface {
	Upsert(ctx context.Context, c *domclinic.Clinic) (created bool, err error)
	Get(ctx context.Context, id string) (domclinic.Clinic, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domclinic.Clinic, error)
}
