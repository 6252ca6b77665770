package booking

import (
	"context"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/models"
)

// GetAvailability answers the three read-only availability questions.
// Exact-slot semantics throughout: a slot is the (master, date, time)
// tuple, and service duration never blocks adjacent slots.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) IsMasterAvailable(
	ctx context.Context,
	masterID uint,
	date string,
	timeOfDay string,
) (bool, error) {
	return uc.repo.IsMasterAvailable(ctx, domain.Slot{
		MasterID: masterID,
		Date:     date,
		Time:     timeOfDay,
	})
}

func (uc *GetAvailability) ListAvailableMasters(
	ctx context.Context,
	date string,
	timeOfDay string,
) ([]models.Master, error) {
	return uc.repo.ListAvailableMasters(ctx, date, timeOfDay)
}

// ListAvailableMastersInPeriod expects dateFrom <= dateTo; the caller
// validates the range before getting here.
func (uc *GetAvailability) ListAvailableMastersInPeriod(
	ctx context.Context,
	dateFrom string,
	dateTo string,
) ([]models.Master, error) {
	return uc.repo.ListAvailableMastersInPeriod(ctx, dateFrom, dateTo)
}
