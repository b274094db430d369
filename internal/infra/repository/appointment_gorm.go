package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/models"
)

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

type AppointmentGormRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx, inTx: true})
	})
}

// locked adds FOR UPDATE inside a transaction. The client, barber and
// appointment rows are the serialization anchors for booking: two
// concurrent bookings for the same barber queue on the barber row, so
// the second transaction runs its overlap checks after the first one
// committed its insert. Locking only the conflicting appointment rows
// cannot close that race, since a free slot has no rows to lock.
func (r *AppointmentGormRepository) locked(q *gorm.DB) *gorm.DB {
	if r.inTx {
		return q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// --------------------------------------------------
// Entities
// --------------------------------------------------

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.locked(r.db.WithContext(ctx)).First(&client, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.locked(r.db.WithContext(ctx)).First(&barber, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &svc, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) ([]models.WorkingHours, error) {

	var windows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

// --------------------------------------------------
// Overlap predicates
// --------------------------------------------------

// hasOverlap selects (not counts) the conflicting rows so the FOR UPDATE
// lock applies to them inside a transaction. This guards against an
// in-flight cancel of a conflicting appointment; booking-vs-booking races
// are serialized earlier by the locks on the client and barber rows.
func (r *AppointmentGormRepository) hasOverlap(
	ctx context.Context,
	column string,
	ownerID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	q := r.locked(r.db.WithContext(ctx)).
		Select("id").
		Where(
			column+" = ? AND status = ? AND start_time < ? AND end_time > ?",
			ownerID,
			string(domain.StatusScheduled),
			end,
			start,
		)

	var conflicts []models.Appointment
	if err := q.Find(&conflicts).Error; err != nil {
		return false, err
	}

	return len(conflicts) > 0, nil
}

func (r *AppointmentGormRepository) BarberHasOverlap(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) (bool, error) {
	return r.hasOverlap(ctx, "barber_id", barberID, start, end)
}

func (r *AppointmentGormRepository) ClientHasOverlap(
	ctx context.Context,
	clientID uint,
	start time.Time,
	end time.Time,
) (bool, error) {
	return r.hasOverlap(ctx, "client_id", clientID, start, end)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.locked(r.db.WithContext(ctx)).First(&ap, id).Error; err != nil {
		return nil, mapNotFound(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	// empty result must marshal as [], not null
	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barber_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			barberID, string(domain.StatusScheduled), start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
