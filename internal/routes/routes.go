package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lumina-beauty/booking-api/internal/audit"
	"github.com/lumina-beauty/booking-api/internal/cache"
	"github.com/lumina-beauty/booking-api/internal/config"
	domain "github.com/lumina-beauty/booking-api/internal/domain/booking"
	"github.com/lumina-beauty/booking-api/internal/handlers"
	infraRepo "github.com/lumina-beauty/booking-api/internal/infra/repository"
	"github.com/lumina-beauty/booking-api/internal/middleware"
	ucReservation "github.com/lumina-beauty/booking-api/internal/usecase/reservation"
	ucSlot "github.com/lumina-beauty/booking-api/internal/usecase/slot"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	availCache := cache.NewAvailabilityCache(cfg.RedisAddr)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	hours := domain.Hours{
		Open:  cfg.OpeningTime,
		Close: cfg.ClosingTime,
	}

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		bookingRepo,
		hours,
		availCache,
		auditDispatcher,
	)

	manualReservationUC := ucReservation.NewCreateManualReservation(
		bookingRepo,
		createReservationUC,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		bookingRepo,
		availCache,
		auditDispatcher,
	)

	confirmReservationUC := ucReservation.NewConfirmReservation(
		bookingRepo,
		auditDispatcher,
	)

	completeReservationUC := ucReservation.NewCompleteReservation(
		bookingRepo,
		auditDispatcher,
	)

	editReservationUC := ucReservation.NewEditReservation(
		bookingRepo,
		hours,
		availCache,
		auditDispatcher,
	)

	listReservationsUC := ucReservation.NewListReservations(bookingRepo)

	// ======================================================
	// USE CASES — SLOTS
	// ======================================================
	createSlotUC := ucSlot.NewCreateSlot(
		bookingRepo,
		hours,
		availCache,
		auditDispatcher,
	)

	updateSlotUC := ucSlot.NewUpdateSlot(
		bookingRepo,
		hours,
		availCache,
		auditDispatcher,
	)

	deleteSlotUC := ucSlot.NewDeleteSlot(
		bookingRepo,
		availCache,
		auditDispatcher,
	)

	listSlotsUC := ucSlot.NewListSlots(bookingRepo, availCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	slotHandler := handlers.NewSlotHandler(
		createSlotUC,
		updateSlotUC,
		deleteSlotUC,
		listSlotsUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		manualReservationUC,
		cancelReservationUC,
		confirmReservationUC,
		completeReservationUC,
		editReservationUC,
		listReservationsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.GET("/services/:id/availability", slotHandler.Available)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENT (authenticated)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListMine)
			secured.GET("/me/reservations/:id", reservationHandler.GetMine)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Deactivate)
			admin.GET("/services/:id/slots", slotHandler.ListForService)

			admin.POST("/slots", slotHandler.Create)
			admin.GET("/slots", slotHandler.ListRange)
			admin.PATCH("/slots/:id", slotHandler.Update)
			admin.DELETE("/slots/:id", slotHandler.Delete)

			admin.POST("/reservations", reservationHandler.CreateManual)
			admin.GET("/reservations", reservationHandler.ListAll)
			admin.GET("/reservations/today", reservationHandler.Today)
			admin.PATCH("/reservations/:id", reservationHandler.Edit)
			admin.PATCH("/reservations/:id/confirm", reservationHandler.Confirm)
			admin.PATCH("/reservations/:id/complete", reservationHandler.Complete)
			admin.PATCH("/reservations/:id/cancel", reservationHandler.AdminCancel)

			admin.GET("/users", userHandler.List)
			admin.GET("/users/:id", userHandler.Get)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
