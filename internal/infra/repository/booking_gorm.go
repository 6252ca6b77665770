package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/httperr"
	"github.com/arteldev/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func occupying() []string {
	statuses := domain.OccupyingStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) GetMasterByID(
	ctx context.Context,
	id uint,
) (*models.Master, error) {

	var master models.Master
	if err := r.db.WithContext(ctx).First(&master, id).Error; err != nil {
		return nil, err
	}
	return &master, nil
}

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Availability (read-only, no locks)
// --------------------------------------------------

func (r *BookingGormRepository) IsMasterAvailable(
	ctx context.Context,
	slot domain.Slot,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"master_id = ? AND date = ? AND time = ? AND status IN ?",
			slot.MasterID, slot.Date, slot.Time, occupying(),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count == 0, nil
}

func (r *BookingGormRepository) ListAvailableMasters(
	ctx context.Context,
	date string,
	timeOfDay string,
) ([]models.Master, error) {

	var masters []models.Master
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(
			`NOT EXISTS (
				SELECT 1 FROM appointments a
				WHERE a.master_id = masters.id
				  AND a.date = ?
				  AND a.time = ?
				  AND a.status IN ?
			)`,
			date, timeOfDay, occupying(),
		).
		Order("full_name ASC").
		Find(&masters).Error; err != nil {
		return nil, err
	}

	return masters, nil
}

// ListAvailableMastersInPeriod returns active masters with zero
// occupying appointments anywhere in the inclusive range: one hit on
// any day disqualifies the master for the whole period.
func (r *BookingGormRepository) ListAvailableMastersInPeriod(
	ctx context.Context,
	dateFrom string,
	dateTo string,
) ([]models.Master, error) {

	var masters []models.Master
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where(
			`NOT EXISTS (
				SELECT 1 FROM appointments a
				WHERE a.master_id = masters.id
				  AND a.date BETWEEN ? AND ?
				  AND a.status IN ?
			)`,
			dateFrom, dateTo, occupying(),
		).
		Order("full_name ASC").
		Find(&masters).Error; err != nil {
		return nil, err
	}

	return masters, nil
}

// --------------------------------------------------
// Booking (atomic create)
// --------------------------------------------------

// CreateBooking runs the whole booking as one transaction: the slot
// re-check, the appointment + form inserts and the profile upsert all
// commit or roll back together.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	in domain.Intent,
) (*models.Appointment, error) {

	var created models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serializes concurrent bookings on the same master. sqlite
		// has no FOR UPDATE and serializes writers on its own.
		masterQ := tx.Where("id = ? AND active = ?", in.MasterID, true)
		if tx.Dialector.Name() == "postgres" {
			masterQ = masterQ.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var master models.Master
		if err := masterQ.First(&master).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("master_not_found")
			}
			return err
		}

		var conflicts []models.Appointment
		if err := tx.
			Where(
				"master_id = ? AND date = ? AND time = ? AND status IN ?",
				in.MasterID, in.Date, in.Time, occupying(),
			).
			Find(&conflicts).Error; err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ErrBusiness("master_unavailable")
		}

		var svc models.Service
		if err := tx.
			Where("id = ? AND active = ?", in.ServiceID, true).
			First(&svc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("service_not_found")
			}
			return err
		}

		ap := models.Appointment{
			ClientID:   in.ClientID,
			MasterID:   in.MasterID,
			ServiceID:  in.ServiceID,
			Date:       in.Date,
			Time:       in.Time,
			Status:     string(domain.InitialStatus()),
			TotalPrice: svc.Price,
			Notes:      in.Notes,
		}
		if err := tx.Create(&ap).Error; err != nil {
			return err
		}

		form := models.AppointmentForm{
			AppointmentID:      ap.ID,
			PassportNumber:     in.PassportNumber,
			VisitPurpose:       in.VisitPurpose,
			PlannedStart:       in.PlannedStart,
			PlannedEnd:         in.PlannedEnd,
			AdditionalOptionID: in.AdditionalOptionID,
		}
		if err := tx.Create(&form).Error; err != nil {
			return err
		}

		if err := upsertClientProfile(tx, in); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Explicit two-branch upsert: lookup, then insert or overwrite, inside
// the caller's transaction.
func upsertClientProfile(tx *gorm.DB, in domain.Intent) error {
	var profile models.ClientProfile
	err := tx.Where("client_id = ?", in.ClientID).First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.ClientProfile{
			ClientID:           in.ClientID,
			PassportNumber:     in.PassportNumber,
			PlannedStart:       in.PlannedStart,
			PlannedEnd:         in.PlannedEnd,
			AdditionalOptionID: in.AdditionalOptionID,
			Notes:              in.Notes,
		}
		return tx.Create(&profile).Error
	}
	if err != nil {
		return err
	}

	profile.PassportNumber = in.PassportNumber
	profile.PlannedStart = in.PlannedStart
	profile.PlannedEnd = in.PlannedEnd
	profile.AdditionalOptionID = in.AdditionalOptionID
	profile.Notes = in.Notes
	return tx.Save(&profile).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	dateFrom string,
	dateTo string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Master").
		Preload("Service")

	if dateFrom != "" && dateTo != "" {
		q = q.Where("date BETWEEN ? AND ?", dateFrom, dateTo)
	}

	var aps []models.Appointment
	if err := q.
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListClientAppointments(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Master").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
