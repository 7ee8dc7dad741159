package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem represents a stocked spare part. CurrentStock is only ever
// adjusted through the stock guard's conditional update, so a committed row
// never goes negative.
type InventoryItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PartNumber    string          `gorm:"size:100;uniqueIndex;not null" json:"part_number"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Category      string          `gorm:"size:100;index" json:"category"`
	CurrentStock  int             `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock  int             `gorm:"not null;default:0" json:"minimum_stock"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"purchase_price"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"selling_price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item has fallen to or below its minimum
func (i *InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}
