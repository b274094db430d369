package appointment

import "github.com/clipperbook/booking-api/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	// StatusCompleted is part of the state space but no exposed operation
	// produces it yet.
	StatusCompleted Status = "completed"
)

// CanCancel: only scheduled appointments may be cancelled, exactly once.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
