package booking

import (
	"context"

	"github.com/arteldev/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog lookups --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetMasterByID(
		ctx context.Context,
		id uint,
	) (*models.Master, error)

	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability (read-only) --------
	IsMasterAvailable(
		ctx context.Context,
		slot Slot,
	) (bool, error)

	ListAvailableMasters(
		ctx context.Context,
		date string,
		timeOfDay string,
	) ([]models.Master, error)

	ListAvailableMastersInPeriod(
		ctx context.Context,
		dateFrom string,
		dateTo string,
	) ([]models.Master, error)

	// -------- Booking (atomic create) --------
	CreateBooking(
		ctx context.Context,
		in Intent,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
		dateFrom string,
		dateTo string,
	) ([]models.Appointment, error)

	ListClientAppointments(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
