package appointment

import (
	"context"

	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

// ListAppointments is the read side: filter projection only, no
// invariants. Ordering is date then time, ascending.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {
	return uc.repo.List(ctx, f)
}
