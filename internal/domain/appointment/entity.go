package appointment

import (
	"time"

	"github.com/clipperbook/booking-api/internal/models"
)

// DefaultCancelReason is recorded when the caller omits one.
const DefaultCancelReason = "N/A"

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if reason == "" {
		reason = DefaultCancelReason
	}

	ap.Status = string(StatusCancelled)
	ap.CancelReason = reason
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
