package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/pkg/pagination"
	"gorm.io/gorm"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	WithTx(tx *gorm.DB) InvoiceRepository
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	CustomerID    *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

// SequenceRepository hands out the next value of a per-day document number
// counter. Next must run on the caller's transaction so the increment commits
// or rolls back with the record it numbers.
type SequenceRepository interface {
	WithTx(tx *gorm.DB) SequenceRepository
	Next(ctx context.Context, prefix string, day time.Time) (int, error)
}
