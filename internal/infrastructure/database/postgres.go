package database

import (
	"fmt"
	"log"

	"github.com/motorsync/garage-api/internal/config"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Directory entities
		&entity.Customer{},
		&entity.Vehicle{},
		&entity.Technician{},

		// Workshop entities
		&entity.JobCard{},
		&entity.JobCardService{},
		&entity.JobCardPart{},
		&entity.InventoryItem{},

		// Billing entities
		&entity.Invoice{},
		&entity.NumberSequence{},

		// System entities
		&entity.User{},
		&entity.GarageSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the settings row and the bootstrap admin account
// when they do not exist yet.
func SeedDefaultData(db *gorm.DB, cfg *config.GarageConfig) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.GarageSettings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if settingsCount == 0 {
		settings := entity.GarageSettings{
			GarageName:     cfg.Name,
			Currency:       cfg.Currency,
			TaxRatePercent: decimal.NewFromFloat(cfg.TaxRate),
		}
		if err := db.Create(&settings).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
		log.Printf("Created garage settings: %s", cfg.Name)
	}

	var adminCount int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&adminCount).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := entity.User{
			Name:     "Administrator",
			Email:    cfg.AdminEmail,
			Password: string(hashed),
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Created admin user: %s", cfg.AdminEmail)
	}

	log.Println("Seeding completed")
	return nil
}
