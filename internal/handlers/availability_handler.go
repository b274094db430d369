package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/clipperbook/booking-api/internal/domain/appointment"
	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/httpresp"
	ucAppointment "github.com/clipperbook/booking-api/internal/usecase/appointment"
)

type AvailabilityHandler struct {
	availabilityUC *ucAppointment.GetAvailability
}

func NewAvailabilityHandler(availabilityUC *ucAppointment.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber id.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "service_id is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		if httperr.FromError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Could not compute availability.")
		return
	}

	httpresp.List(c, slots)
}
