package booking

import "testing"

func TestOccupyingStatuses(t *testing.T) {
	occupying := []Status{StatusScheduled, StatusClientArrived, StatusInProgress}
	for _, s := range occupying {
		if !IsOccupying(s) {
			t.Errorf("expected %s to occupy a slot", s)
		}
	}

	free := []Status{StatusCompleted, StatusNoShow, StatusCancelled}
	for _, s := range free {
		if IsOccupying(s) {
			t.Errorf("expected %s to free its slot", s)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusScheduled {
		t.Fatalf("expected scheduled, got %s", InitialStatus())
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusScheduled, StatusClientArrived},
		{StatusScheduled, StatusCancelled},
		{StatusClientArrived, StatusInProgress},
		{StatusClientArrived, StatusNoShow},
		{StatusClientArrived, StatusCancelled},
		{StatusInProgress, StatusCompleted},
	}
	for _, tc := range allowed {
		if err := CanTransition(tc.from, tc.to); err != nil {
			t.Errorf("expected %s -> %s to be allowed: %v", tc.from, tc.to, err)
		}
	}

	rejected := []struct{ from, to Status }{
		{StatusScheduled, StatusCompleted},
		{StatusScheduled, StatusInProgress},
		{StatusScheduled, StatusNoShow},
		{StatusInProgress, StatusCancelled},
		{StatusCompleted, StatusScheduled},
		{StatusCancelled, StatusScheduled},
		{StatusNoShow, StatusClientArrived},
	}
	for _, tc := range rejected {
		if err := CanTransition(tc.from, tc.to); err == nil {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus(StatusNoShow) {
		t.Fatalf("no_show should be valid")
	}
	if IsValidStatus(Status("postponed")) {
		t.Fatalf("postponed is not part of the taxonomy")
	}
}
