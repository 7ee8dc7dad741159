package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a vehicle owner billed by the garage. TotalSpent is a
// cumulative ledger figure written only by the payment service when an
// invoice is fully paid.
type Customer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Phone         string          `gorm:"size:50;index" json:"phone"`
	Email         *string         `gorm:"size:255" json:"email,omitempty"`
	Address       *string         `gorm:"type:text" json:"address,omitempty"`
	TotalSpent    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_spent"`
	LoyaltyPoints int             `gorm:"default:0" json:"loyalty_points"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Vehicles []Vehicle `gorm:"foreignKey:CustomerID" json:"vehicles,omitempty"`
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
