package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	domain "github.com/pawsclinic/clinic-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	uc.logger.Info("appointment deleted",
		zap.String("appointment_id", id),
	)

	return nil
}
