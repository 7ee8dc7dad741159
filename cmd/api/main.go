package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/config"
	"github.com/motorsync/garage-api/internal/infrastructure/database"
	"github.com/motorsync/garage-api/internal/infrastructure/repository"
	"github.com/motorsync/garage-api/internal/presentation/http/handler"
	"github.com/motorsync/garage-api/internal/presentation/http/routes"
	"github.com/motorsync/garage-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, &cfg.Garage); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	technicianRepo := repository.NewTechnicianRepository(db)
	jobCardRepo := repository.NewJobCardRepository(db)
	jobCardServiceRepo := repository.NewJobCardServiceRepository(db)
	jobCardPartRepo := repository.NewJobCardPartRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, customerRepo)
	technicianService := service.NewTechnicianService(technicianRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	jobCardService := service.NewJobCardService(
		uow,
		jobCardRepo,
		jobCardServiceRepo,
		jobCardPartRepo,
		inventoryRepo,
		vehicleRepo,
		technicianRepo,
		invoiceRepo,
		sequenceRepo,
		cfg.Watch.GracePeriod,
	)
	invoiceService := service.NewInvoiceService(
		uow,
		invoiceRepo,
		jobCardRepo,
		vehicleRepo,
		customerRepo,
		settingsRepo,
		sequenceRepo,
	)
	paymentService := service.NewPaymentService(uow, invoiceRepo, customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		JobCard:    handler.NewJobCardHandler(jobCardService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Invoice:    handler.NewInvoiceHandler(invoiceService, paymentService),
		Customer:   handler.NewCustomerHandler(customerService),
		Vehicle:    handler.NewVehicleHandler(vehicleService),
		Technician: handler.NewTechnicianHandler(technicianService),
		Settings:   handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s", cfg.App.Name, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
