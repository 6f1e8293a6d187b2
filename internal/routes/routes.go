package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pawsclinic/clinic-scheduler/internal/audit"
	"github.com/pawsclinic/clinic-scheduler/internal/config"
	"github.com/pawsclinic/clinic-scheduler/internal/handlers"
	infraRepo "github.com/pawsclinic/clinic-scheduler/internal/infra/repository"
	"github.com/pawsclinic/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/pawsclinic/clinic-scheduler/internal/usecase/appointment"
)

// Prefixes each resource is mounted under. Auth and tasks answer on both
// the bare and /api paths so older front-end builds keep working.
var mountPrefixes = map[string][]string{
	"appointments": {""},
	"owners":       {""},
	"pets":         {""},
	"auth":         {"", "/api"},
	"tasks":        {"", "/api"},
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	logger *zap.Logger,
	rdb *redis.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditSink := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditSink, logger)

	// Rate limiting guards the booking write path only. Without Redis it
	// degrades to a no-op rather than an in-process limiter, since a
	// single-instance window would lie behind a load balancer anyway.
	bookingLimit := func(c *gin.Context) { c.Next() }
	if rdb != nil {
		limiter := middleware.NewRedisRateLimiter(
			rdb,
			cfg.RateLimitPerMinute,
			time.Minute,
			logger,
		)
		bookingLimit = limiter.Middleware()
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, logger)
	updateUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher, logger)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, logger)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher, logger)
	deleteUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher, logger)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	getUC := ucAppointment.NewGetAppointment(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		cancelUC,
		completeUC,
		deleteUC,
		listUC,
		getUC,
	)

	ownerHandler := handlers.NewOwnerHandler(db)
	petHandler := handlers.NewPetHandler(db)
	taskHandler := handlers.NewTaskHandler(db)
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	for _, prefix := range mountPrefixes["appointments"] {
		g := r.Group(prefix + "/appointments")
		{
			g.GET("", appointmentHandler.List)
			g.GET("/:id", appointmentHandler.Get)
			g.POST("", bookingLimit, appointmentHandler.Create)
			g.PATCH("/:id", bookingLimit, appointmentHandler.Patch)
			g.PUT("/:id", bookingLimit, appointmentHandler.Put)
			g.PATCH("/:id/cancel", appointmentHandler.Cancel)
			g.PATCH("/:id/complete", appointmentHandler.Complete)
			g.DELETE("/:id", appointmentHandler.Delete)
		}
	}

	// ======================================================
	// OWNERS / PETS
	// ======================================================
	for _, prefix := range mountPrefixes["owners"] {
		g := r.Group(prefix + "/owners")
		{
			g.GET("", ownerHandler.List)
			g.GET("/:id", ownerHandler.Get)
			g.POST("", ownerHandler.Create)
			g.PUT("/:id", ownerHandler.Update)
			g.DELETE("/:id", ownerHandler.Delete)
		}
	}

	for _, prefix := range mountPrefixes["pets"] {
		g := r.Group(prefix + "/pets")
		{
			g.GET("", petHandler.List)
			g.GET("/:id", petHandler.Get)
			g.POST("", petHandler.Create)
			g.PUT("/:id", petHandler.Update)
			g.DELETE("/:id", petHandler.Delete)
		}
	}

	// ======================================================
	// AUTH / TASKS
	// ======================================================
	for _, prefix := range mountPrefixes["auth"] {
		g := r.Group(prefix + "/auth")
		{
			g.POST("/register", authHandler.Register)
			g.POST("/login", authHandler.Login)
			g.GET("/me", middleware.AuthMiddleware(cfg), meHandler.GetMe)
		}
	}

	for _, prefix := range mountPrefixes["tasks"] {
		g := r.Group(prefix + "/tasks")
		g.Use(middleware.AuthMiddleware(cfg))
		{
			g.GET("", taskHandler.List)
			g.POST("", taskHandler.Create)
			g.PATCH("/:id", taskHandler.Update)
			g.DELETE("/:id", taskHandler.Delete)
		}
	}
}
