package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/arteldev/salon-scheduler/internal/audit"
	"github.com/arteldev/salon-scheduler/internal/config"
	"github.com/arteldev/salon-scheduler/internal/handlers"
	infraRepo "github.com/arteldev/salon-scheduler/internal/infra/repository"
	"github.com/arteldev/salon-scheduler/internal/middleware"
	ucBooking "github.com/arteldev/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING CORE
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	transitionUC := ucBooking.NewTransitionAppointment(bookingRepo, auditDispatcher)
	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(listAppointmentsUC, transitionUC)

	clientHandler := handlers.NewClientHandler(db)
	masterHandler := handlers.NewMasterHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	optionHandler := handlers.NewOptionHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	certificateHandler := handlers.NewCertificateHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// Availability
			secured.GET("/masters/available", bookingHandler.ListAvailableMasters)
			secured.GET("/masters/available-period", bookingHandler.ListAvailableMastersInPeriod)
			secured.GET("/masters/:id/availability", bookingHandler.CheckMaster)

			// Booking + own appointments
			secured.POST("/appointments", bookingHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListMine)

			// Read-only catalog
			secured.GET("/masters", masterHandler.List)
			secured.GET("/services", serviceHandler.List)
			secured.GET("/categories", serviceHandler.ListCategories)
			secured.GET("/options", optionHandler.List)

			// ------------------------------
			// ADMIN / OPERATOR
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", appointmentHandler.List)
				admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				admin.GET("/clients", clientHandler.List)
				admin.POST("/clients", clientHandler.Create)
				admin.PATCH("/clients/:id", clientHandler.Update)
				admin.GET("/clients/:id/profile", clientHandler.GetProfile)
				admin.PUT("/clients/:id/profile", clientHandler.PutProfile)
				admin.GET("/clients/:id/appointments", appointmentHandler.ListForClient)

				admin.POST("/masters", masterHandler.Create)
				admin.PATCH("/masters/:id", masterHandler.Update)
				admin.GET("/masters/:id/schedule", masterHandler.ListSchedule)
				admin.PUT("/masters/:id/schedule", masterHandler.PutSchedule)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.POST("/categories", serviceHandler.CreateCategory)
				admin.POST("/options", optionHandler.Create)

				admin.POST("/payments", paymentHandler.Record)
				admin.GET("/payments", paymentHandler.List)

				admin.POST("/certificates", certificateHandler.Issue)
				admin.GET("/certificates", certificateHandler.List)
			}
		}
	}
}
