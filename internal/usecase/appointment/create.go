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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetID   string
	OwnerID string
	Date    string
	Time    string
	Reason  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		audit:  audit,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.PetID == "" || in.OwnerID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !validators.IsCanonicalDate(in.Date) || !validators.IsCanonicalTime(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// Optimistic pre-check for fast feedback. The partial unique index
	// on (pet_id, date, time) WHERE status='scheduled' is the
	// authoritative guard against interleaved requests.
	conflict, err := uc.repo.HasConflict(ctx, in.PetID, in.Date, in.Time, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.ErrBusiness(httperr.CodeDoubleBooking)
	}

	ap := &models.Appointment{
		PetID:   in.PetID,
		OwnerID: in.OwnerID,
		Date:    in.Date,
		Time:    in.Time,
		Reason:  in.Reason,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.logger.Info("appointment booked",
		zap.String("appointment_id", ap.ID),
		zap.String("pet_id", ap.PetID),
		zap.String("date", ap.Date),
		zap.String("time", ap.Time),
	)

	return ap, nil
}
