package appointment

import (
	"context"

	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// Filter holds list criteria. Empty fields are not applied; non-empty
// fields combine with AND semantics.
type Filter struct {
	OwnerID string
	PetID   string
	Status  string
	Date    string
}

type Repository interface {
	// -------- Conflict check --------

	// HasConflict reports whether a scheduled appointment other than
	// excludeID occupies the exact (petID, date, time) slot. An empty
	// excludeID excludes nothing. Pure read, no side effects.
	HasConflict(
		ctx context.Context,
		petID string,
		date string,
		timeOfDay string,
		excludeID string,
	) (bool, error)

	// -------- Mutations --------

	// Create and Save translate store-level uniqueness violations on the
	// scheduled-slot index into the double-booking business error, so a
	// race that slips past HasConflict surfaces identically.
	Create(ctx context.Context, ap *models.Appointment) error

	Save(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, id string) error

	// -------- Reads --------

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// List returns matches ordered by date then time, both ascending.
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
}
