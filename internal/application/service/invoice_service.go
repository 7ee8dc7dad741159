package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/motorsync/garage-api/pkg/numbering"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService orchestrates invoice creation and retrieval
type InvoiceService struct {
	uow          repository.UnitOfWork
	invoiceRepo  repository.InvoiceRepository
	jobCardRepo  repository.JobCardRepository
	vehicleRepo  repository.VehicleRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	sequenceRepo repository.SequenceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	uow repository.UnitOfWork,
	invoiceRepo repository.InvoiceRepository,
	jobCardRepo repository.JobCardRepository,
	vehicleRepo repository.VehicleRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	sequenceRepo repository.SequenceRepository,
) *InvoiceService {
	return &InvoiceService{
		uow:          uow,
		invoiceRepo:  invoiceRepo,
		jobCardRepo:  jobCardRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		sequenceRepo: sequenceRepo,
	}
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	JobCardID          uuid.UUID
	Discount           decimal.Decimal
	DiscountPercentage decimal.Decimal
	Notes              string
}

// CreateInvoice bills a finished job card. Preconditions are checked in
// order: the job card must be completed or delivered, must not already have
// an invoice, and its customer must be resolvable through the vehicle. The
// duplicate check and the insert run inside one transaction, backed by the
// unique index on job_card_id, so two concurrent callers cannot both bill
// the same card.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.Discount.IsNegative() || input.DiscountPercentage.IsNegative() {
		return nil, apperror.NewValidationError("Discount cannot be negative")
	}

	jobCard, err := s.jobCardRepo.GetByID(ctx, input.JobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	if !jobCard.Status.IsInvoiceable() {
		return nil, apperror.NewInvalidStateError("job card not ready")
	}

	existing, err := s.invoiceRepo.GetByJobCardID(ctx, input.JobCardID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateInvoiceError(jobCard.JobNumber)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, jobCard.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	customer, err := s.customerRepo.GetByID(ctx, vehicle.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	taxRate, err := s.currentTaxRate(ctx)
	if err != nil {
		return nil, err
	}

	amounts := CalculateInvoice(jobCard.LaborCost, jobCard.PartsCost, input.Discount, input.DiscountPercentage, taxRate)

	invoice := &entity.Invoice{
		JobCardID:     jobCard.ID,
		CustomerID:    customer.ID,
		LaborCost:     amounts.LaborCost,
		PartsCost:     amounts.PartsCost,
		Subtotal:      amounts.Subtotal,
		Discount:      amounts.DiscountAmount,
		TaxableAmount: amounts.TaxableAmount,
		TaxRate:       amounts.TaxRate,
		TaxAmount:     amounts.TaxAmount,
		TotalAmount:   amounts.TotalAmount,
		PaymentStatus: enum.PaymentStatusUnpaid,
		PaidAmount:    decimal.Zero,
		PendingAmount: amounts.TotalAmount,
		Notes:         input.Notes,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		now := time.Now()
		seq, err := s.sequenceRepo.WithTx(tx).Next(ctx, numbering.InvoicePrefix, now)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = numbering.Format(numbering.InvoicePrefix, now, seq)
		return s.invoiceRepo.WithTx(tx).Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice with its customer and job card resolved
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices retrieves invoices with filtering and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}

func (s *InvoiceService) currentTaxRate(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if settings == nil {
		return decimal.NewFromInt(18), nil
	}
	return settings.TaxRatePercent, nil
}
