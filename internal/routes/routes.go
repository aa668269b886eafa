package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/yaalstudio/salon-agenda/internal/audit"
	"github.com/yaalstudio/salon-agenda/internal/config"
	"github.com/yaalstudio/salon-agenda/internal/handlers"
	"github.com/yaalstudio/salon-agenda/internal/httperr"
	"github.com/yaalstudio/salon-agenda/internal/middleware"
	"github.com/yaalstudio/salon-agenda/internal/repository"
	"github.com/yaalstudio/salon-agenda/internal/usecase/booking"
)

// RegisterRoutes monta toda a cadeia e devolve o dispatcher de audit
// para o shutdown poder drená-lo.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) *audit.Dispatcher {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clientRepo := repository.NewGormClientRepository(db)
	appointmentRepo := repository.NewGormAppointmentRepository(db)
	contactRepo := repository.NewGormContactRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := booking.NewCreateBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(db)
	clientHandler := handlers.NewClientHandler(clientRepo, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createBookingUC,
		auditDispatcher,
	)
	contactHandler := handlers.NewContactHandler(contactRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Verbo fora de {GET,POST,PUT,DELETE} num recurso da API → 405.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		httperr.MethodNotAllowed(c)
	})

	// Rate limit só nos POSTs públicos, e só com Redis configurado.
	publicPost := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if rdb == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.RateLimit(rdb, cfg.RateLimit), h}
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients", clientHandler.Update)
		api.DELETE("/clients", clientHandler.Delete)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", publicPost(appointmentHandler.Create)...)
		api.PUT("/appointments", appointmentHandler.Update)
		api.DELETE("/appointments", appointmentHandler.Delete)

		api.GET("/contacts", contactHandler.List)
		api.POST("/contacts", publicPost(contactHandler.Create)...)
		api.DELETE("/contacts", contactHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}

	// ======================================================
	// SITE PÚBLICO (fallback)
	// ======================================================
	r.NoRoute(staticHandler.Serve)

	return auditDispatcher
}
