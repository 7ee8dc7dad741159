package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/motorsync/garage-api/internal/config"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/internal/presentation/http/handler"
	"github.com/motorsync/garage-api/internal/presentation/http/middleware"
	"github.com/motorsync/garage-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	JobCard    *handler.JobCardHandler
	Inventory  *handler.InventoryHandler
	Invoice    *handler.InvoiceHandler
	Customer   *handler.CustomerHandler
	Vehicle    *handler.VehicleHandler
	Technician *handler.TechnicianHandler
	Settings   *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Billing writes replay a cached response when retried with the same
	// Idempotency-Key header.
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	rg.GET("/auth/profile", h.Auth.Profile)
	rg.POST("/auth/register", middleware.RequireAdmin(), h.Auth.Register)

	jobCards := rg.Group("/job-cards")
	{
		jobCards.POST("", h.JobCard.Create)
		jobCards.GET("", h.JobCard.List)
		jobCards.GET("/:id", h.JobCard.Get)
		jobCards.GET("/:id/watch", h.JobCard.Watch)
		jobCards.POST("/:id/services", h.JobCard.AddService)
		jobCards.DELETE("/:id/services/:serviceId", h.JobCard.RemoveService)
		jobCards.POST("/:id/parts", h.JobCard.AddPart)
		jobCards.DELETE("/:id/parts/:partId", h.JobCard.RemovePart)
		jobCards.PATCH("/:id/discount", h.JobCard.SetDiscount)
		jobCards.PATCH("/:id/status", h.JobCard.UpdateStatus)
	}

	inventory := rg.Group("/inventory")
	{
		inventory.POST("", h.Inventory.Create)
		inventory.GET("", h.Inventory.List)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
		inventory.POST("/:id/restock", h.Inventory.Restock)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", idempotency, h.Invoice.Create)
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/payments", idempotency, h.Invoice.RecordPayment)
		invoices.POST("/:id/cancel", h.Invoice.Cancel)
	}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.Customer.Create)
		customers.GET("", h.Customer.List)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.Vehicle.Create)
		vehicles.GET("", h.Vehicle.List)
		vehicles.GET("/:id", h.Vehicle.Get)
		vehicles.PUT("/:id", h.Vehicle.Update)
		vehicles.DELETE("/:id", h.Vehicle.Delete)
	}

	technicians := rg.Group("/technicians")
	{
		technicians.POST("", h.Technician.Create)
		technicians.GET("", h.Technician.List)
		technicians.GET("/:id", h.Technician.Get)
		technicians.PUT("/:id", h.Technician.Update)
		technicians.DELETE("/:id", h.Technician.Delete)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequireAdmin(), h.Settings.Update)
	}
}
