package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents a customer's vehicle tracked across repair visits
type Vehicle struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	RegistrationNumber string         `gorm:"size:50;uniqueIndex;not null" json:"registration_number"`
	Make               string         `gorm:"size:100" json:"make"`
	Model              string         `gorm:"size:100" json:"model"`
	Year               int            `json:"year"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	JobCards []JobCard `gorm:"foreignKey:VehicleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
