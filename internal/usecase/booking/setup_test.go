package booking

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/audit"
	dbpkg "github.com/arteldev/salon-scheduler/internal/db"
	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	infraRepo "github.com/arteldev/salon-scheduler/internal/infra/repository"
	"github.com/arteldev/salon-scheduler/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixtures struct {
	client  models.Client
	master  models.Master
	master2 models.Master
	service models.Service
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	client := models.Client{FullName: "Anna Ivanova", Phone: "79150001122", RegistrationDate: "2023-01-12"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}

	master := models.Master{FullName: "Elena Kuznetsova", Specialization: "Hairdresser", Active: true}
	if err := db.Create(&master).Error; err != nil {
		t.Fatalf("master: %v", err)
	}
	master2 := models.Master{FullName: "Olga Popova", Specialization: "Manicure", Active: true}
	if err := db.Create(&master2).Error; err != nil {
		t.Fatalf("master2: %v", err)
	}

	category := models.ServiceCategory{Name: "Hair care", Active: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	service := models.Service{CategoryID: category.ID, Name: "Haircut", Price: 1500, DurationMin: 60, Active: true}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("service: %v", err)
	}

	return fixtures{client: client, master: master, master2: master2, service: service}
}

func newBookingStack(db *gorm.DB) (*CreateBooking, *GetAvailability, *TransitionAppointment, domain.Repository) {
	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	return NewCreateBooking(repo, dispatcher),
		NewGetAvailability(repo),
		NewTransitionAppointment(repo, dispatcher),
		repo
}

func intentFor(f fixtures, date, timeOfDay string) domain.Intent {
	return domain.Intent{
		ClientID:       f.client.ID,
		MasterID:       f.master.ID,
		ServiceID:      f.service.ID,
		Date:           date,
		Time:           timeOfDay,
		PassportNumber: "4500 123456",
		VisitPurpose:   "haircut",
		PlannedStart:   "2024-03-01",
		PlannedEnd:     "2024-03-03",
		Notes:          "first visit",
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
