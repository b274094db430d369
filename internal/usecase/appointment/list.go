package appointment

import (
	"context"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns every appointment with Client, Barber and Service
// resolved, ordered by start time.
func (uc *ListAppointments) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx)
}
