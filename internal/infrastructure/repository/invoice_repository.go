package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	domainRepo "github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/numbering"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) WithTx(tx *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: tx}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// GetWithDetails loads an invoice with its customer and the fully expanded
// job card, the shape handed to the document renderer.
func (r *invoiceRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("JobCard").
		Preload("JobCard.Vehicle").
		Preload("JobCard.Services").
		Preload("JobCard.Parts").Preload("JobCard.Parts.InventoryItem").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "job_card_id = ?", jobCardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		query = query.Where("invoice_number LIKE ?", "%"+params.Search+"%")
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new document number sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) WithTx(tx *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: tx}
}

// Next bumps the per-day counter row and returns the new value. The row-level
// lock taken by the UPDATE serializes concurrent allocators for the same
// prefix and day until the enclosing transaction commits.
func (r *sequenceRepository) Next(ctx context.Context, prefix string, day time.Time) (int, error) {
	key := numbering.DayKey(day)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.NumberSequence{Prefix: prefix, Day: key}).Error
	if err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&entity.NumberSequence{}).
		Where("prefix = ? AND day = ?", prefix, key).
		Update("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}

	var seq entity.NumberSequence
	err = r.db.WithContext(ctx).
		Where("prefix = ? AND day = ?", prefix, key).
		First(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}
