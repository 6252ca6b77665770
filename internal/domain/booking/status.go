package booking

import "github.com/arteldev/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled     Status = "scheduled"
	StatusClientArrived Status = "client_arrived"
	StatusInProgress    Status = "in_progress"
	StatusCompleted     Status = "completed"
	StatusNoShow        Status = "no_show"
	StatusCancelled     Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusClientArrived, StatusInProgress,
		StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// OccupyingStatuses are the states that block a (master, date, time)
// slot from reuse. Completed, no-show and cancelled free the slot.
func OccupyingStatuses() []Status {
	return []Status{StatusScheduled, StatusClientArrived, StatusInProgress}
}

func IsOccupying(s Status) bool {
	switch s {
	case StatusScheduled, StatusClientArrived, StatusInProgress:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusScheduled:     {StatusClientArrived, StatusCancelled},
	StatusClientArrived: {StatusInProgress, StatusNoShow, StatusCancelled},
	StatusInProgress:    {StatusCompleted},
}

func CanTransition(from Status, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}
