package appointment

import (
	"context"
	"time"

	"github.com/clipperbook/booking-api/internal/models"
)

type Repository interface {
	// Transaction runs fn against a Repository bound to a single database
	// transaction. Booking validation reads and the insert must share one
	// so two concurrent bookings cannot both observe "no overlap".
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Entities --------
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Working hours --------
	ListWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.WorkingHours, error)

	// -------- Overlap predicates (half-open: start < end' AND end > start') --------
	BarberHasOverlap(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	ClientHasOverlap(
		ctx context.Context,
		clientID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
