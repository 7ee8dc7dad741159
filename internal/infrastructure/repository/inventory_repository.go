package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetByPartNumber(ctx context.Context, partNumber string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "part_number = ?", partNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Search != "" {
		query = query.Where("name LIKE ? OR part_number LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.LowStock {
		query = query.Where("current_stock <= minimum_stock")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *inventoryRepository) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("current_stock <= minimum_stock").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// DecrementStock conditionally subtracts stock in a single statement:
// UPDATE inventory_items SET current_stock = current_stock - ?
// WHERE id = ? AND current_stock >= ?
// Zero rows affected means insufficient stock and nothing was written.
func (r *inventoryRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ? AND current_stock >= ?", id, quantity).
		Update("current_stock", gorm.Expr("current_stock - ?", quantity))

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IncrementStock adds previously consumed stock back.
func (r *inventoryRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", quantity)).Error
}
