package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// InventoryService handles inventory catalog management and restocking.
// Part consumption on job cards goes through JobCardService instead.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	PartNumber    string
	Name          string
	Category      string
	CurrentStock  int
	MinimumStock  int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
}

// CreateItem adds a new part to the catalog, generating a part number when
// none is supplied.
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	if input.CurrentStock < 0 || input.MinimumStock < 0 {
		return nil, apperror.NewValidationError("Stock levels cannot be negative")
	}

	partNumber := input.PartNumber
	if partNumber == "" {
		partNumber = utils.GeneratePartNumber()
	} else {
		existing, err := s.inventoryRepo.GetByPartNumber(ctx, partNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Part number already exists")
		}
	}

	item := &entity.InventoryItem{
		PartNumber:    partNumber,
		Name:          input.Name,
		Category:      input.Category,
		CurrentStock:  input.CurrentStock,
		MinimumStock:  input.MinimumStock,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
	}
	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// UpdateItemInput represents the update inventory item input. Stock is not
// updatable here; it only moves through restock and part consumption.
type UpdateItemInput struct {
	Name          *string
	Category      *string
	MinimumStock  *int
	PurchasePrice *decimal.Decimal
	SellingPrice  *decimal.Decimal
}

// UpdateItem updates catalog fields of an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.MinimumStock != nil {
		if *input.MinimumStock < 0 {
			return nil, apperror.NewValidationError("Minimum stock cannot be negative")
		}
		item.MinimumStock = *input.MinimumStock
	}
	if input.PurchasePrice != nil {
		item.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		item.SellingPrice = *input.SellingPrice
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an inventory item from the catalog
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListItems retrieves inventory items with filtering and pagination
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	return s.inventoryRepo.List(ctx, params)
}

// GetLowStockItems lists every item at or below its minimum stock level
func (s *InventoryService) GetLowStockItems(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.GetLowStock(ctx)
}

// Restock adds received quantity to an item's stock
func (s *InventoryService) Restock(ctx context.Context, id uuid.UUID, quantity int) (*entity.InventoryItem, error) {
	if quantity <= 0 {
		return nil, apperror.NewValidationError("Restock quantity must be positive")
	}

	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if err := s.inventoryRepo.IncrementStock(ctx, id, quantity); err != nil {
		return nil, err
	}
	item.CurrentStock += quantity
	return item, nil
}
