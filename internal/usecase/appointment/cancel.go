package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

type CancelAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cancellation never creates a conflict, so no check is needed.
	domain.Cancel(ap)

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.logger.Info("appointment cancelled",
		zap.String("appointment_id", ap.ID),
	)

	return ap, nil
}
