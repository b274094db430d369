package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clipperbook/booking-api/internal/httperr"
	"github.com/clipperbook/booking-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingWindowConfig struct {
	Weekday   int    `json:"weekday" binding:"required,min=1,max=7"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WorkingHoursUpdateRequest struct {
	Windows []WorkingWindowConfig `json:"windows" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber id.")
		return
	}

	hours := []models.WorkingHours{}
	if err := h.db.
		Where("barber_id = ?", uint(barberID)).
		Order("weekday ASC, start_time ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the barber's whole weekly window configuration.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, uint(barberID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Could not load barber.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed working-hours payload.")
		return
	}

	toCreate := make([]models.WorkingHours, 0, len(req.Windows))
	for _, w := range req.Windows {
		start, err := time.Parse("15:04", w.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "start_time must be HH:MM.")
			return
		}
		end, err := time.Parse("15:04", w.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "end_time must be HH:MM.")
			return
		}
		if !start.Before(end) {
			httperr.BadRequest(c, "invalid_range", "Window start must be before end.")
			return
		}

		toCreate = append(toCreate, models.WorkingHours{
			BarberID:  barber.ID,
			Weekday:   w.Weekday,
			Active:    w.Active,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barber.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
