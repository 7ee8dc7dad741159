package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) WithTx(tx *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: tx}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		Preload("Vehicles").
		First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if search != "" {
		query = query.Where("name LIKE ? OR phone LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

// AddSpend increments the cumulative ledger fields in place so concurrent
// payments never lose an update.
func (r *customerRepository) AddSpend(ctx context.Context, id uuid.UUID, amount decimal.Decimal, loyaltyPoints int) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_spent":    gorm.Expr("total_spent + ?", amount),
			"loyalty_points": gorm.Expr("loyalty_points + ?", loyaltyPoints),
		}).Error
}
