package booking

import (
	"context"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByRange lists all appointments, optionally restricted to an
// inclusive date range. Empty from/to means no filter.
func (uc *ListAppointments) ByRange(
	ctx context.Context,
	dateFrom string,
	dateTo string,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListAppointments(ctx, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			ClientName:  ap.Client.FullName,
			MasterName:  ap.Master.FullName,
			ServiceName: ap.Service.Name,
			TotalPrice:  ap.TotalPrice,
		})
	}

	return out, nil
}

func (uc *ListAppointments) ByClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListClientAppointments(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			MasterName:  ap.Master.FullName,
			ServiceName: ap.Service.Name,
			TotalPrice:  ap.TotalPrice,
		})
	}

	return out, nil
}
