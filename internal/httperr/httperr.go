package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// businessStatus maps every business code to its client-facing status so
// callers can branch: 404 for missing entities, 422 for disabled ones,
// 409 for scheduling conflicts and bad state transitions, 400 otherwise.
var businessStatus = map[string]int{
	"invalid_range": http.StatusBadRequest,

	"client_not_found":      http.StatusNotFound,
	"barber_not_found":      http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,

	"barber_inactive":          http.StatusUnprocessableEntity,
	"service_inactive":         http.StatusUnprocessableEntity,
	"invalid_service_duration": http.StatusUnprocessableEntity,

	"outside_working_hours": http.StatusConflict,
	"barber_time_conflict":  http.StatusConflict,
	"client_time_conflict":  http.StatusConflict,
	"invalid_state":         http.StatusConflict,
}

var businessMessage = map[string]string{
	"invalid_range":            "Start time must be before end time.",
	"client_not_found":         "Client not found.",
	"barber_not_found":         "Barber not found.",
	"service_not_found":        "Service not found.",
	"appointment_not_found":    "Appointment not found.",
	"barber_inactive":          "Barber is not accepting appointments.",
	"service_inactive":         "Service is not currently available.",
	"invalid_service_duration": "Service duration must be a positive number of minutes.",
	"outside_working_hours":    "Barber does not work at that time.",
	"barber_time_conflict":     "Barber already has an appointment at that time.",
	"client_time_conflict":     "Client already has an appointment at that time.",
	"invalid_state":            "Only scheduled appointments can be cancelled.",
}

// FromError writes the mapped response for a business error and reports
// whether err was one. Infrastructure errors are left for the caller.
func FromError(c *gin.Context, err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg := businessMessage[code]
	if msg == "" {
		msg = code
	}

	Write(c, status, code, msg)
	return true
}
