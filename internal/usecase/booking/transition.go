package booking

import (
	"context"

	"github.com/arteldev/salon-scheduler/internal/audit"
	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/models"
)

// TransitionAppointment moves an appointment through the operator
// state machine. The availability queries only ever look at the
// current status, so freeing a slot is just leaving the occupying set.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanTransition(domain.Status(ap.Status), to); err != nil {
		return nil, err
	}

	ap.Status = string(to)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": string(to)},
	})

	return ap, nil
}
