package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
	"github.com/pawsclinic/clinic-scheduler/internal/models"
)

type CompleteAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.logger.Info("appointment completed",
		zap.String("appointment_id", ap.ID),
	)

	return ap, nil
}
