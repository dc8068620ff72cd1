package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	ucStylist "github.com/BruksfildServices01/salon-scheduler/internal/usecase/stylist"
)

// Deps are the process-wide singletons the routes are built from.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Audit   audit.Sink
	Limiter middleware.Limiter
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(d.Config.AllowedOrigins()))

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	stylistRepo := infraRepo.NewStylistGormRepository(d.DB)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, d.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, d.Audit).
		WithClock(timezone.Clock(d.Config.Timezone))
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// USE CASES: STYLISTS
	// ======================================================
	createStylistUC := ucStylist.NewCreateStylist(stylistRepo, d.Audit)
	updateStylistUC := ucStylist.NewUpdateStylist(stylistRepo, d.Audit)
	deleteStylistUC := ucStylist.NewDeleteStylist(stylistRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config)
	meHandler := handlers.NewMeHandler(d.DB)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		getBookingUC,
		listBookingsByDateUC,
		availabilityUC,
	)
	stylistHandler := handlers.NewStylistHandler(
		d.DB,
		createStylistUC,
		updateStylistUC,
		deleteStylistUC,
	)
	serviceHandler := handlers.NewServiceHandler(d.DB, d.Audit)
	customerHandler := handlers.NewCustomerHandler(d.DB, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	bookingListHandler := handlers.NewBookingListHandler(d.DB)

	limited := middleware.RateLimit(d.Limiter, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/bookings", limited, bookingHandler.Create)
		api.PATCH("/bookings/:id/cancel", limited, bookingHandler.Cancel)
		api.GET("/bookings/:id", bookingHandler.Get)

		api.GET("/stylists", stylistHandler.List)
		api.GET("/stylists/:id/bookings", bookingHandler.ListByDate)
		api.GET("/stylists/:id/availability", bookingHandler.Availability)

		api.GET("/services", serviceHandler.List)
		api.POST("/customers", limited, customerHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", limited, authHandler.Register)
		api.POST("/auth/login", limited, authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/bookings", bookingListHandler.List)

			secured.POST("/stylists", stylistHandler.Create)
			secured.PUT("/stylists/:id", stylistHandler.Update)
			secured.DELETE("/stylists/:id", stylistHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/customers", customerHandler.List)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
