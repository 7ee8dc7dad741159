package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technician represents a garage staff member assignable to job cards
type Technician struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Specialty string         `gorm:"size:100" json:"specialty"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new technician
func (t *Technician) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Technician model
func (Technician) TableName() string {
	return "technicians"
}
