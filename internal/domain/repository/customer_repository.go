package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CustomerRepository defines the interface for customer data operations.
// AddSpend is the only writer of total_spent and loyalty_points.
type CustomerRepository interface {
	WithTx(tx *gorm.DB) CustomerRepository
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)

	// AddSpend atomically increments the customer's cumulative total-spent
	// figure and loyalty points.
	AddSpend(ctx context.Context, id uuid.UUID, amount decimal.Decimal, loyaltyPoints int) error
}
