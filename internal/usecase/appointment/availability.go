package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/infra/cache"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// Execute returns the free slots of the service's duration for a barber on
// a date: working-hours windows stepped by the duration, minus scheduled
// appointments. Cached results may lag bookings by up to the cache TTL.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if slots, ok := uc.cache.Get(ctx, in); ok {
		return slots, nil
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}

	windows, err := uc.repo.ListWorkingHours(
		ctx,
		in.BarberID,
		domain.ISOWeekday(in.Date),
	)
	if err != nil {
		return nil, err
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	// a non-positive duration would keep the slot cursor from advancing
	slotDuration := time.Duration(svc.DurationMin) * time.Minute
	if slotDuration <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	slots := []domain.TimeSlot{}

	for _, w := range windows {
		if !w.Active {
			continue
		}

		windowStart, ok := parseHM(w.StartTime)
		if !ok {
			continue
		}
		windowEnd, ok := parseHM(w.EndTime)
		if !ok {
			continue
		}

		for cur := windowStart; !cur.Add(slotDuration).After(windowEnd); cur = cur.Add(slotDuration) {
			slotStart := cur
			slotEnd := cur.Add(slotDuration)

			conflict := false
			for _, ap := range booked {
				if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, domain.TimeSlot{
					Start: slotStart.Format("15:04"),
					End:   slotEnd.Format("15:04"),
				})
			}
		}
	}

	uc.cache.Set(ctx, in, slots)

	return slots, nil
}
