package booking

import (
	"context"
	"time"

	"github.com/arteldev/salon-scheduler/internal/audit"
	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/models"
)

// ======================================================
// USE CASE — booking transaction coordinator
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actorID uint,
	in domain.Intent,
) (*models.Appointment, error) {

	// 1. Planned stay window must be well-formed. Nothing is written
	// on violation.
	if err := validatePeriod(in.PlannedStart, in.PlannedEnd); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// 2+3. Availability re-check and the three writes run as one
	// transaction inside the repository: a stale "master is free"
	// read by the caller cannot produce a double booking.
	ap, err := uc.repo.CreateBooking(ctx, in)
	if err != nil {
		if httperr.IsBusiness(err, "master_unavailable") {
			uc.audit.Dispatch(audit.Event{
				UserID: &actorID,
				Action: "booking_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"master_id": in.MasterID,
					"date":      in.Date,
					"time":      in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func validatePeriod(plannedStart, plannedEnd string) error {
	start, err := time.Parse("2006-01-02", plannedStart)
	if err != nil {
		return httperr.ErrBusiness("invalid_period")
	}
	end, err := time.Parse("2006-01-02", plannedEnd)
	if err != nil {
		return httperr.ErrBusiness("invalid_period")
	}
	if start.After(end) {
		return httperr.ErrBusiness("invalid_period")
	}
	return nil
}
