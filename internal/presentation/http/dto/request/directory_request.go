package request

// CreateCustomerRequest represents a new customer
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Phone   string  `json:"phone" binding:"required,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest represents customer contact updates
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// CreateVehicleRequest represents a new vehicle
type CreateVehicleRequest struct {
	CustomerID         string `json:"customer_id" binding:"required,uuid"`
	RegistrationNumber string `json:"registration_number" binding:"required,max=50"`
	Make               string `json:"make" binding:"required,max=100"`
	Model              string `json:"model" binding:"required,max=100"`
	Year               int    `json:"year" binding:"omitempty,min=1900,max=2100"`
}

// UpdateVehicleRequest represents vehicle detail updates
type UpdateVehicleRequest struct {
	Make  *string `json:"make" binding:"omitempty,max=100"`
	Model *string `json:"model" binding:"omitempty,max=100"`
	Year  *int    `json:"year" binding:"omitempty,min=1900,max=2100"`
}

// CreateTechnicianRequest represents a new technician
type CreateTechnicianRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	Specialty string `json:"specialty" binding:"omitempty,max=100"`
}

// UpdateTechnicianRequest represents technician detail updates
type UpdateTechnicianRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
	Active    *bool   `json:"active"`
}
