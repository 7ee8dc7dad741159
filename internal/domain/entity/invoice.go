package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents the bill generated for a completed job card. The amount
// fields are computed once at creation and frozen; the unique index on
// JobCardID enforces at most one invoice per job card.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	JobCardID     uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"job_card_id"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	LaborCost     decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"labor_cost"`
	PartsCost     decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"parts_cost"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Discount      decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"discount"`
	TaxableAmount decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"taxable_amount"`
	TaxRate       decimal.Decimal    `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	TaxAmount     decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0;index" json:"payment_status"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"paid_amount"`
	PendingAmount decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"pending_amount"`
	PaymentMode   string             `gorm:"size:50" json:"payment_mode"`
	TransactionID string             `gorm:"size:100" json:"transaction_id"`
	Notes         string             `gorm:"type:text" json:"notes"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	JobCard  JobCard  `gorm:"foreignKey:JobCardID" json:"job_card,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}
