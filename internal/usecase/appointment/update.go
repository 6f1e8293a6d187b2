package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/httperr"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
	"github.com/pawsclinic/clinic-scheduler/internal/validators"
)

type UpdateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	// Conflicts are evaluated against the effective candidate: the
	// stored record overlaid with the requested fields. Setting status
	// back to scheduled re-enters conflict checking.
	candidate := domain.Effective(ap, patch)

	if candidate.Status == string(domain.StatusScheduled) {
		conflict, err := uc.repo.HasConflict(
			ctx,
			candidate.PetID,
			candidate.Date,
			candidate.Time,
			ap.ID,
		)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.ErrBusiness(httperr.CodeDoubleBooking)
		}
	}

	domain.Apply(ap, patch)

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.logger.Info("appointment updated",
		zap.String("appointment_id", ap.ID),
		zap.String("status", ap.Status),
	)

	return ap, nil
}

func validatePatch(p domain.Patch) error {
	if p.PetID != nil && *p.PetID == "" {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if p.OwnerID != nil && *p.OwnerID == "" {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if p.Date != nil && !validators.IsCanonicalDate(*p.Date) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if p.Time != nil && !validators.IsCanonicalTime(*p.Time) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	if p.Status != nil && !domain.IsValidStatus(*p.Status) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}
