package appointment

import (
	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel is unconditional: cancelling an already completed or cancelled
// appointment is a no-op on the slot invariant and always allowed.
func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}

func Complete(ap *models.Appointment) error {
	if Status(ap.Status) != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	ap.Status = string(StatusCompleted)
	return nil
}

// ===============================
// Partial updates
// ===============================

// Patch carries the fields of a partial update. Nil means the field was
// omitted from the request and keeps its stored value.
type Patch struct {
	PetID   *string
	OwnerID *string
	Date    *string
	Time    *string
	Status  *string
	Reason  *string
}

// Effective overlays p onto ap and returns the merged candidate without
// mutating ap. Conflict checks run against this candidate, not against
// the raw request.
func Effective(ap *models.Appointment, p Patch) models.Appointment {
	out := *ap
	if p.PetID != nil {
		out.PetID = *p.PetID
	}
	if p.OwnerID != nil {
		out.OwnerID = *p.OwnerID
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Reason != nil {
		out.Reason = *p.Reason
	}
	return out
}

// Apply writes every provided field of p onto ap.
func Apply(ap *models.Appointment, p Patch) {
	*ap = Effective(ap, p)
}
