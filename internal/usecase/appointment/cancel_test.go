package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/models"
)

func TestCancel_Success(t *testing.T) {
	stored := &models.Appointment{
		ID:        7,
		Status:    string(domain.StatusScheduled),
		StartTime: monday(9, 0),
		EndTime:   monday(10, 0),
	}

	var updated *models.Appointment
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			if id != stored.ID {
				return nil, domain.ErrNotFound
			}
			return stored, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			updated = ap
			return nil
		},
	}
	sink := &fakeAudit{}
	uc := NewCancelAppointment(repo, sink)

	if err := uc.Execute(context.Background(), 7, "no-show"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if updated == nil {
		t.Fatal("expected appointment to be persisted")
	}
	if updated.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", updated.Status)
	}
	if updated.CancelReason != "no-show" {
		t.Fatalf("reason = %q", updated.CancelReason)
	}
	if updated.CancelledAt == nil {
		t.Fatal("expected cancellation timestamp")
	}
	if repo.txCalls != 1 {
		t.Fatalf("txCalls = %d, want 1", repo.txCalls)
	}
	if len(sink.events) != 1 || sink.events[0].Action != "appointment_cancelled" {
		t.Fatalf("unexpected audit events: %+v", sink.events)
	}
}

func TestCancel_DefaultReason(t *testing.T) {
	stored := &models.Appointment{ID: 7, Status: string(domain.StatusScheduled)}
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error { return nil },
	}
	uc := NewCancelAppointment(repo, &fakeAudit{})

	if err := uc.Execute(context.Background(), 7, ""); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if stored.CancelReason != domain.DefaultCancelReason {
		t.Fatalf("reason = %q, want %q", stored.CancelReason, domain.DefaultCancelReason)
	}
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return nil, domain.ErrNotFound
		},
	}
	uc := NewCancelAppointment(repo, &fakeAudit{})

	err := uc.Execute(context.Background(), 99, "")
	requireBusiness(t, err, "appointment_not_found")
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	then := time.Now().Add(-time.Hour)
	stored := &models.Appointment{
		ID:          7,
		Status:      string(domain.StatusCancelled),
		CancelledAt: &then,
	}
	repo := &fakeRepo{
		getAppointmentFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return stored, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			t.Fatal("a rejected transition must not be persisted")
			return nil
		},
	}
	sink := &fakeAudit{}
	uc := NewCancelAppointment(repo, sink)

	err := uc.Execute(context.Background(), 7, "again")
	requireBusiness(t, err, "invalid_state")

	if len(sink.events) != 0 {
		t.Fatalf("no audit event expected, got %+v", sink.events)
	}
}
