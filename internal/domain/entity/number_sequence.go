package entity

import "time"

// NumberSequence is the per-day counter row backing document number
// allocation. Incrementing it atomically inside the caller's transaction
// serializes allocation within a day window, so two concurrent creations
// cannot be handed the same sequence.
type NumberSequence struct {
	Prefix    string    `gorm:"size:10;primaryKey" json:"prefix"`
	Day       string    `gorm:"size:10;primaryKey" json:"day"`
	Value     int       `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the NumberSequence model
func (NumberSequence) TableName() string {
	return "number_sequences"
}
