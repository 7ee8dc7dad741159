package request

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest represents a new catalog part
type CreateInventoryItemRequest struct {
	PartNumber    string          `json:"part_number" binding:"omitempty,max=100"`
	Name          string          `json:"name" binding:"required,max=255"`
	Category      string          `json:"category" binding:"omitempty,max=100"`
	CurrentStock  int             `json:"current_stock" binding:"omitempty,min=0"`
	MinimumStock  int             `json:"minimum_stock" binding:"omitempty,min=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

// UpdateInventoryItemRequest represents catalog field updates
type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=255"`
	Category      *string          `json:"category" binding:"omitempty,max=100"`
	MinimumStock  *int             `json:"minimum_stock" binding:"omitempty,min=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
}

// RestockRequest represents received stock
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
