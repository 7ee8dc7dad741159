package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	infraRepo "github.com/motorsync/garage-api/internal/infrastructure/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.Vehicle{},
		&entity.Technician{},
		&entity.JobCard{},
		&entity.JobCardService{},
		&entity.JobCardPart{},
		&entity.InventoryItem{},
		&entity.Invoice{},
		&entity.NumberSequence{},
		&entity.User{},
		&entity.GarageSettings{},
		&entity.IdempotencyKey{},
	))

	return db
}

type testEnv struct {
	db       *gorm.DB
	jobCards *JobCardService
	invoices *InvoiceService
	payments *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	uow := infraRepo.NewUnitOfWork(db)
	jobCardRepo := infraRepo.NewJobCardRepository(db)
	serviceRepo := infraRepo.NewJobCardServiceRepository(db)
	partRepo := infraRepo.NewJobCardPartRepository(db)
	inventoryRepo := infraRepo.NewInventoryRepository(db)
	vehicleRepo := infraRepo.NewVehicleRepository(db)
	technicianRepo := infraRepo.NewTechnicianRepository(db)
	invoiceRepo := infraRepo.NewInvoiceRepository(db)
	sequenceRepo := infraRepo.NewSequenceRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	return &testEnv{
		db: db,
		jobCards: NewJobCardService(
			uow, jobCardRepo, serviceRepo, partRepo, inventoryRepo,
			vehicleRepo, technicianRepo, invoiceRepo, sequenceRepo,
			100*time.Millisecond,
		),
		invoices: NewInvoiceService(
			uow, invoiceRepo, jobCardRepo, vehicleRepo, customerRepo,
			settingsRepo, sequenceRepo,
		),
		payments: NewPaymentService(uow, invoiceRepo, customerRepo),
	}
}

func seedCustomerAndVehicle(t *testing.T, db *gorm.DB) (*entity.Customer, *entity.Vehicle) {
	t.Helper()

	customer := &entity.Customer{Name: "Ravi Sharma", Phone: "9876543210"}
	require.NoError(t, db.Create(customer).Error)

	vehicle := &entity.Vehicle{
		CustomerID:         customer.ID,
		RegistrationNumber: "KA-01-" + uuid.NewString()[:8],
		Make:               "Maruti",
		Model:              "Swift",
		Year:               2019,
	}
	require.NoError(t, db.Create(vehicle).Error)

	return customer, vehicle
}

func seedInventoryItem(t *testing.T, db *gorm.DB, name string, stock int, sellingPrice string) *entity.InventoryItem {
	t.Helper()

	item := &entity.InventoryItem{
		PartNumber:   "PART-" + name,
		Name:         name,
		CurrentStock: stock,
		MinimumStock: 1,
		SellingPrice: decimal.RequireFromString(sellingPrice),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedSettings(t *testing.T, db *gorm.DB, taxRate string) {
	t.Helper()

	settings := &entity.GarageSettings{
		GarageName:     "Test Garage",
		Currency:       "INR",
		TaxRatePercent: decimal.RequireFromString(taxRate),
	}
	require.NoError(t, db.Create(settings).Error)
}

func currentStock(t *testing.T, db *gorm.DB, item *entity.InventoryItem) int {
	t.Helper()

	var got entity.InventoryItem
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	return got.CurrentStock
}

var testCtx = context.Background()
