package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/httpresp"
	ucAppointment "github.com/clipperbook/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	scheduleUC *ucAppointment.ScheduleAppointment
	cancelUC   *ucAppointment.CancelAppointment
	listUC     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	scheduleUC *ucAppointment.ScheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		scheduleUC: scheduleUC,
		cancelUC:   cancelUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uint      `json:"client_id" binding:"required"`
	BarberID  uint      `json:"barber_id" binding:"required"`
	ServiceID *uint     `json:"service_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed appointment payload.")
		return
	}

	ap, err := h.scheduleUC.Execute(c.Request.Context(), ucAppointment.ScheduleInput{
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Start:     req.StartTime,
		End:       req.EndTime,
	})
	if err != nil {
		if httperr.FromError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Could not create appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment id.")
		return
	}

	reason := c.Query("reason")

	if err := h.cancelUC.Execute(c.Request.Context(), uint(id), reason); err != nil {
		if httperr.FromError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Could not cancel appointment.")
		return
	}

	c.Status(204)
}
