package request

import "github.com/shopspring/decimal"

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	JobCardID          string          `json:"job_card_id" binding:"required,uuid"`
	Discount           decimal.Decimal `json:"discount"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Notes              string          `json:"notes"`
}

// RecordPaymentRequest represents a payment against an invoice
type RecordPaymentRequest struct {
	PaidAmount    decimal.Decimal `json:"paid_amount" binding:"required"`
	PaymentMode   string          `json:"payment_mode" binding:"required,max=50"`
	TransactionID string          `json:"transaction_id" binding:"omitempty,max=100"`
}
