package appointment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

// memRepo mirrors the gorm repository's contract, including the
// scheduled-slot uniqueness guard the real store enforces via its
// partial unique index.
type memRepo struct {
	byID map[string]models.Appointment
	seq  int
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[string]models.Appointment{}}
}

func (r *memRepo) HasConflict(
	ctx context.Context,
	petID, date, timeOfDay, excludeID string,
) (bool, error) {
	for _, ap := range r.byID {
		if ap.ID == excludeID {
			continue
		}
		if ap.PetID == petID && ap.Date == date && ap.Time == timeOfDay &&
			ap.Status == string(domain.StatusScheduled) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) checkConstraint(candidate models.Appointment) error {
	if candidate.Status != string(domain.StatusScheduled) {
		return nil
	}
	for _, ap := range r.byID {
		if ap.ID == candidate.ID {
			continue
		}
		if ap.PetID == candidate.PetID && ap.Date == candidate.Date &&
			ap.Time == candidate.Time && ap.Status == string(domain.StatusScheduled) {
			return httperr.ErrBusiness(httperr.CodeDoubleBookingRaced)
		}
	}
	return nil
}

func (r *memRepo) Create(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		r.seq++
		ap.ID = fmt.Sprintf("ap-%d", r.seq)
	}
	if err := r.checkConstraint(*ap); err != nil {
		return err
	}
	r.byID[ap.ID] = *ap
	return nil
}

func (r *memRepo) Save(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.byID[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err := r.checkConstraint(*ap); err != nil {
		return err
	}
	r.byID[ap.ID] = *ap
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(r.byID, id)
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ap, ok := r.byID[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &ap, nil
}

func (r *memRepo) List(ctx context.Context, f domain.Filter) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.byID {
		if f.OwnerID != "" && ap.OwnerID != f.OwnerID {
			continue
		}
		if f.PetID != "" && ap.PetID != f.PetID {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *memRepo) countScheduled(petID, date, timeOfDay string) int {
	n := 0
	for _, ap := range r.byID {
		if ap.PetID == petID && ap.Date == date && ap.Time == timeOfDay &&
			ap.Status == string(domain.StatusScheduled) {
			n++
		}
	}
	return n
}

var _ domain.Repository = (*memRepo)(nil)

// racyRepo simulates a request interleaving between the conflict
// pre-check and the write: the pre-check sees a clear slot while the
// store constraint still fires.
type racyRepo struct {
	*memRepo
}

func (r *racyRepo) HasConflict(
	ctx context.Context,
	petID, date, timeOfDay, excludeID string,
) (bool, error) {
	return false, nil
}
