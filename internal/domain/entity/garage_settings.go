package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GarageSettings is the single-row business profile. TaxRatePercent feeds
// invoice calculation; the remaining fields are consumed only by document
// rendering.
type GarageSettings struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GarageName     string          `gorm:"size:255;default:'My Garage'" json:"garage_name"`
	Address        string          `gorm:"type:text" json:"address"`
	Phone          string          `gorm:"size:50" json:"phone"`
	Email          string          `gorm:"size:255" json:"email"`
	GSTIN          string          `gorm:"size:50" json:"gstin"`
	Currency       string          `gorm:"size:10;default:'INR'" json:"currency"`
	TaxRatePercent decimal.Decimal `gorm:"type:decimal(5,2);default:18" json:"tax_rate_percent"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating settings
func (s *GarageSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GarageSettings model
func (GarageSettings) TableName() string {
	return "garage_settings"
}
