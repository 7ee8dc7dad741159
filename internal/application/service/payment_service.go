package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/entity"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// loyaltyDivisor converts fully paid currency into loyalty points, one point
// per 100 paid.
var loyaltyDivisor = decimal.NewFromInt(100)

// PaymentService drives the invoice payment state machine and the customer
// spend ledger
type PaymentService struct {
	uow          repository.UnitOfWork
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	uow repository.UnitOfWork,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
) *PaymentService {
	return &PaymentService{
		uow:          uow,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

// RecordPaymentInput represents a payment against an invoice
type RecordPaymentInput struct {
	InvoiceID     uuid.UUID
	PaidAmount    decimal.Decimal
	PaymentMode   string
	TransactionID string
}

// RecordPayment applies a single payment to an invoice. A payment covering
// the full total marks the invoice paid and credits the customer's spend
// ledger in the same transaction; a partial payment is stored but leaves the
// status unpaid.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Invoice, error) {
	if !input.PaidAmount.IsPositive() {
		return nil, apperror.NewValidationError("Payment amount must be positive")
	}

	var updated *entity.Invoice
	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.invoiceRepo.WithTx(tx)
		invoice, err := repo.GetByID(ctx, input.InvoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}
		if invoice.PaymentStatus.IsSettled() {
			return apperror.NewInvalidStateError("invoice is already " + invoice.PaymentStatus.String())
		}
		if input.PaidAmount.GreaterThan(invoice.TotalAmount) {
			return apperror.NewValidationError("Payment exceeds invoice total")
		}

		invoice.PaidAmount = input.PaidAmount
		invoice.PendingAmount = invoice.TotalAmount.Sub(input.PaidAmount)
		invoice.PaymentMode = input.PaymentMode
		invoice.TransactionID = input.TransactionID

		if input.PaidAmount.GreaterThanOrEqual(invoice.TotalAmount) {
			now := time.Now()
			invoice.PaymentStatus = enum.PaymentStatusPaid
			invoice.PendingAmount = decimal.Zero
			invoice.PaidAt = &now

			points := int(input.PaidAmount.Div(loyaltyDivisor).IntPart())
			if err := s.customerRepo.WithTx(tx).AddSpend(ctx, invoice.CustomerID, input.PaidAmount, points); err != nil {
				return err
			}
		}

		if err := repo.Update(ctx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelInvoice voids an unpaid invoice. Paid or already cancelled invoices
// cannot be cancelled; nothing touches the customer ledger.
func (s *PaymentService) CancelInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error) {
	var updated *entity.Invoice
	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.invoiceRepo.WithTx(tx)
		invoice, err := repo.GetByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}
		if invoice.PaymentStatus != enum.PaymentStatusUnpaid {
			return apperror.NewInvalidStateError("only unpaid invoices can be cancelled")
		}

		invoice.PaymentStatus = enum.PaymentStatusCancelled
		invoice.PaidAmount = decimal.Zero
		invoice.PendingAmount = invoice.TotalAmount

		if err := repo.Update(ctx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
