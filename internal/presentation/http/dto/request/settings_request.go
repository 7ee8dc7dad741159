package request

import "github.com/shopspring/decimal"

// UpdateSettingsRequest represents garage profile updates
type UpdateSettingsRequest struct {
	GarageName     *string          `json:"garage_name" binding:"omitempty,max=255"`
	Address        *string          `json:"address"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Email          *string          `json:"email" binding:"omitempty,email"`
	GSTIN          *string          `json:"gstin" binding:"omitempty,max=50"`
	Currency       *string          `json:"currency" binding:"omitempty,max=10"`
	TaxRatePercent *decimal.Decimal `json:"tax_rate_percent"`
}
