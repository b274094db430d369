package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/clipperbook/booking-api/internal/audit"
	"github.com/clipperbook/booking-api/internal/handlers"
	"github.com/clipperbook/booking-api/internal/infra/cache"
	infraRepo "github.com/clipperbook/booking-api/internal/infra/repository"
	"github.com/clipperbook/booking-api/internal/metrics"
	ucAppointment "github.com/clipperbook/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	log *zap.Logger,
	collect *metrics.Collector,
	availabilityCache *cache.AvailabilityCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log, collect)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	scheduleUC := ucAppointment.NewScheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		collect,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availabilityCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleUC,
		cancelUC,
		listUC,
	)

	clientHandler := handlers.NewClientHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.DELETE("/appointments/:id", appointmentHandler.Cancel)

		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients", clientHandler.List)

		// ------------------------------
		// BARBERS
		// ------------------------------
		api.POST("/barbers", barberHandler.Create)
		api.GET("/barbers", barberHandler.List)
		api.PATCH("/barbers/:id", barberHandler.Update)

		api.GET("/barbers/:id/working-hours", workingHoursHandler.Get)
		api.PUT("/barbers/:id/working-hours", workingHoursHandler.Update)

		api.GET("/barbers/:id/availability", availabilityHandler.Get)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)
		api.PATCH("/services/:id", serviceHandler.Update)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
