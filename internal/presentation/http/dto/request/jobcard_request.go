package request

import "github.com/shopspring/decimal"

// CreateJobCardRequest represents a job card intake request
type CreateJobCardRequest struct {
	VehicleID    string `json:"vehicle_id" binding:"required,uuid"`
	TechnicianID string `json:"technician_id" binding:"omitempty,uuid"`
	Priority     string `json:"priority" binding:"omitempty,oneof=Low Normal High Urgent"`
	Complaint    string `json:"complaint" binding:"required"`
	Odometer     int    `json:"odometer" binding:"omitempty,min=0"`
}

// AddServiceRequest represents a labor line item request
type AddServiceRequest struct {
	Name     string          `json:"name" binding:"required,max=255"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	UnitCost decimal.Decimal `json:"unit_cost" binding:"required"`
}

// AddPartRequest represents a consumed part request
type AddPartRequest struct {
	InventoryItemID string `json:"inventory_item_id" binding:"required,uuid"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
}

// SetDiscountRequest represents a job card discount update
type SetDiscountRequest struct {
	Discount decimal.Decimal `json:"discount" binding:"required"`
}

// UpdateStatusRequest represents a job card status change
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending InProgress Completed Delivered Cancelled"`
}
