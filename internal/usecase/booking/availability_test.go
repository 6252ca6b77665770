package booking

import (
	"context"
	"testing"

	domain "github.com/arteldev/salon-scheduler/internal/domain/booking"
	"github.com/arteldev/salon-scheduler/internal/models"
)

func TestListAvailableMastersExcludesOccupiedSlot(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	_, availabilityUC, _, _ := newBookingStack(db)
	ctx := context.Background()

	ap := models.Appointment{
		ClientID:  f.client.ID,
		MasterID:  f.master.ID,
		ServiceID: f.service.ID,
		Date:      "2024-03-01",
		Time:      "10:00:00",
		Status:    string(domain.StatusScheduled),
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	masters, err := availabilityUC.ListAvailableMasters(ctx, "2024-03-01", "10:00:00")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(masters) != 1 {
		t.Fatalf("expected 1 available master, got %d", len(masters))
	}
	if masters[0].ID != f.master2.ID {
		t.Fatalf("expected only master %d, got %d", f.master2.ID, masters[0].ID)
	}

	// A different slot on the same day is free: exact-match semantics,
	// duration never blocks neighbors.
	masters, err = availabilityUC.ListAvailableMasters(ctx, "2024-03-01", "11:00:00")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(masters) != 2 {
		t.Fatalf("expected both masters at 11:00, got %d", len(masters))
	}
}

func TestListAvailableMastersOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	_, availabilityUC, _, _ := newBookingStack(db)

	masters, err := availabilityUC.ListAvailableMasters(context.Background(), "2024-03-01", "10:00:00")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(masters) != 2 {
		t.Fatalf("expected 2 masters, got %d", len(masters))
	}
	// "Elena Kuznetsova" sorts before "Olga Popova".
	if masters[0].ID != f.master.ID || masters[1].ID != f.master2.ID {
		t.Fatalf("unexpected order: %s, %s", masters[0].FullName, masters[1].FullName)
	}
}

func TestListAvailableMastersHidesInactive(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	_, availabilityUC, _, _ := newBookingStack(db)

	if err := db.Model(&models.Master{}).
		Where("id = ?", f.master2.ID).
		Update("active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	masters, err := availabilityUC.ListAvailableMasters(context.Background(), "2024-03-01", "10:00:00")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(masters) != 1 || masters[0].ID != f.master.ID {
		t.Fatalf("expected only the active master, got %d rows", len(masters))
	}
}

func TestListAvailableMastersInPeriod(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	_, availabilityUC, _, _ := newBookingStack(db)
	ctx := context.Background()

	ap := models.Appointment{
		ClientID:  f.client.ID,
		MasterID:  f.master.ID,
		ServiceID: f.service.ID,
		Date:      "2024-03-01",
		Time:      "10:00:00",
		Status:    string(domain.StatusScheduled),
	}
	if err := db.Create(&ap).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	// One occupying appointment inside the range disqualifies the
	// master for the whole range.
	masters, err := availabilityUC.ListAvailableMastersInPeriod(ctx, "2024-02-28", "2024-03-02")
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(masters) != 1 || masters[0].ID != f.master2.ID {
		t.Fatalf("expected only master %d free over the period, got %d rows", f.master2.ID, len(masters))
	}

	// Outside the range the master is free again.
	masters, err = availabilityUC.ListAvailableMastersInPeriod(ctx, "2024-03-02", "2024-03-05")
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(masters) != 2 {
		t.Fatalf("expected both masters free outside the range, got %d", len(masters))
	}
}

func TestPeriodIgnoresNonOccupyingStatuses(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixtures(t, db)
	_, availabilityUC, _, _ := newBookingStack(db)

	for _, status := range []domain.Status{domain.StatusCompleted, domain.StatusNoShow, domain.StatusCancelled} {
		ap := models.Appointment{
			ClientID:  f.client.ID,
			MasterID:  f.master.ID,
			ServiceID: f.service.ID,
			Date:      "2024-03-01",
			Time:      "10:00:00",
			Status:    string(status),
		}
		if err := db.Create(&ap).Error; err != nil {
			t.Fatalf("seed %s: %v", status, err)
		}
	}

	masters, err := availabilityUC.ListAvailableMastersInPeriod(context.Background(), "2024-02-28", "2024-03-02")
	if err != nil {
		t.Fatalf("period: %v", err)
	}
	if len(masters) != 2 {
		t.Fatalf("terminal statuses must not occupy: got %d masters", len(masters))
	}

	available, err := availabilityUC.IsMasterAvailable(context.Background(), f.master.ID, "2024-03-01", "10:00:00")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !available {
		t.Fatalf("expected slot to be free with only terminal statuses on it")
	}
}
