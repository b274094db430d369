package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/clipperbook/booking-api/internal/audit"
	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/metrics"
	"github.com/clipperbook/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID *uint

	Start time.Time
	End   time.Time
}

// ======================================================
// USE CASE
// ======================================================

// AuditSink is satisfied by *audit.Dispatcher.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

type ScheduleAppointment struct {
	repo    domain.Repository
	audit   AuditSink
	collect *metrics.Collector
}

func NewScheduleAppointment(
	repo domain.Repository,
	audit AuditSink,
	collect *metrics.Collector,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:    repo,
		audit:   audit,
		collect: collect,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs every booking check and the insert inside one store
// transaction. The overlap reads take row locks on conflicting scheduled
// appointments, so two concurrent attempts for the same barber or client
// and an overlapping range cannot both pass.
func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*models.Appointment, error) {

	if !in.Start.Before(in.End) {
		uc.observe("invalid_range")
		return nil, httperr.ErrBusiness("invalid_range")
	}

	var created *models.Appointment

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		client, err := tx.GetClient(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness("client_not_found")
			}
			return err
		}

		barber, err := tx.GetBarber(ctx, in.BarberID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return httperr.ErrBusiness("barber_not_found")
			}
			return err
		}
		if !barber.Active {
			return httperr.ErrBusiness("barber_inactive")
		}

		// Service reference is optional; when supplied it must exist and
		// be active.
		if in.ServiceID != nil {
			svc, err := tx.GetService(ctx, *in.ServiceID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return httperr.ErrBusiness("service_not_found")
				}
				return err
			}
			if !svc.Active {
				return httperr.ErrBusiness("service_inactive")
			}
		}

		windows, err := tx.ListWorkingHours(
			ctx,
			barber.ID,
			domain.ISOWeekday(in.Start),
		)
		if err != nil {
			return err
		}
		if !domain.WithinAnyWindow(windows, in.Start, in.End) {
			return httperr.ErrBusiness("outside_working_hours")
		}

		conflict, err := tx.BarberHasOverlap(ctx, barber.ID, in.Start, in.End)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("barber_time_conflict")
		}

		conflict, err = tx.ClientHasOverlap(ctx, client.ID, in.Start, in.End)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("client_time_conflict")
		}

		ap := &models.Appointment{
			ClientID:  client.ID,
			BarberID:  barber.ID,
			ServiceID: in.ServiceID,
			StartTime: in.Start,
			EndTime:   in.End,
			Status:    string(domain.InitialStatus()),
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			uc.observe(code)
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_rejected",
				Entity: "appointment",
				Metadata: map[string]any{
					"reason":    code,
					"barber_id": in.BarberID,
					"client_id": in.ClientID,
					"start":     in.Start,
					"end":       in.End,
				},
			})
		} else {
			uc.observe("error")
		}
		return nil, err
	}

	uc.observe("scheduled")
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_scheduled",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}

func (uc *ScheduleAppointment) observe(outcome string) {
	uc.collect.BookingsTotal.WithLabelValues(outcome).Inc()
}
