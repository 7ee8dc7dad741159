package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/pkg/pagination"
	"gorm.io/gorm"
)

// InventoryRepository defines the interface for inventory item data
// operations. DecrementStock and IncrementStock are the only writers of
// current_stock in the system.
type InventoryRepository interface {
	WithTx(tx *gorm.DB) InventoryRepository
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	GetLowStock(ctx context.Context) ([]entity.InventoryItem, error)

	// DecrementStock conditionally subtracts quantity; it reports false with
	// no write when the current stock is insufficient.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error)
	// IncrementStock unconditionally adds quantity back.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	LowStock   bool
}
