package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobCard represents a single repair order from intake to delivery.
// The cost fields are derived from the service and part line items and are
// only ever written by the ledger recompute; they are never edited directly.
type JobCard struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	JobNumber    string               `gorm:"size:50;uniqueIndex;not null" json:"job_number"`
	VehicleID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	TechnicianID *uuid.UUID           `gorm:"type:uuid;index" json:"technician_id,omitempty"`
	Status       enum.JobCardStatus   `gorm:"default:0;index" json:"status"`
	Priority     enum.JobCardPriority `gorm:"default:1" json:"priority"`
	Complaint    string               `gorm:"type:text" json:"complaint"`
	Odometer     int                  `gorm:"default:0" json:"odometer"`
	LaborCost    decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"labor_cost"`
	PartsCost    decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"parts_cost"`
	TotalCost    decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"total_cost"`
	Discount     decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"discount"`
	FinalAmount  decimal.Decimal      `gorm:"type:decimal(12,2);default:0" json:"final_amount"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Vehicle    Vehicle          `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Technician *Technician      `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
	Services   []JobCardService `gorm:"foreignKey:JobCardID" json:"services,omitempty"`
	Parts      []JobCardPart    `gorm:"foreignKey:JobCardID" json:"parts,omitempty"`
}

// BeforeCreate generates a UUID before creating a new job card
func (j *JobCard) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JobCard model
func (JobCard) TableName() string {
	return "job_cards"
}

// JobCardService represents a labor line item on a job card
type JobCardService struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	JobCardID uuid.UUID       `gorm:"type:uuid;not null;index" json:"job_card_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	UnitCost  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	TotalCost decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new service line
func (s *JobCardService) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JobCardService model
func (JobCardService) TableName() string {
	return "job_card_services"
}

// JobCardPart represents a consumed inventory part on a job card. Its
// insert/delete is always paired with the matching stock adjustment inside
// one transaction.
type JobCardPart struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	JobCardID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"job_card_id"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index" json:"inventory_item_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relationships
	InventoryItem InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new part line
func (p *JobCardPart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JobCardPart model
func (JobCardPart) TableName() string {
	return "job_card_parts"
}
