package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/clipperbook/booking-api/internal/audit"
	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit AuditSink
}

func NewCancelAppointment(
	repo domain.Repository,
	audit AuditSink,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
) error {

	return uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness("appointment_not_found")
			}
			return err
		}

		if err := domain.Cancel(ap, reason, time.Now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_cancelled",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"reason": ap.CancelReason},
		})

		return nil
	})
}
