package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// VehicleHandler handles vehicle directory HTTP requests
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Create handles registering a vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &service.CreateVehicleInput{
		CustomerID:         customerID,
		RegistrationNumber: req.RegistrationNumber,
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle created", vehicle)
}

// List handles listing vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	params := parsePagination(c)
	search := c.Query("search")

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(vehicles,
		pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Vehicles retrieved successfully", result)
}

// Get handles retrieving a vehicle with its owner
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved", vehicle)
}

// Update handles vehicle detail updates
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req request.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, &service.UpdateVehicleInput{
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated", vehicle)
}

// Delete handles removing a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// TechnicianHandler handles technician directory HTTP requests
type TechnicianHandler struct {
	technicianService *service.TechnicianService
}

// NewTechnicianHandler creates a new technician handler
func NewTechnicianHandler(technicianService *service.TechnicianService) *TechnicianHandler {
	return &TechnicianHandler{technicianService: technicianService}
}

// Create handles registering a technician
func (h *TechnicianHandler) Create(c *gin.Context) {
	var req request.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	technician, err := h.technicianService.CreateTechnician(c.Request.Context(), &service.CreateTechnicianInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: req.Specialty,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Technician created", technician)
}

// List handles listing technicians
func (h *TechnicianHandler) List(c *gin.Context) {
	params := parsePagination(c)
	activeOnly := c.Query("active") == "true"

	technicians, total, err := h.technicianService.ListTechnicians(c.Request.Context(), params, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(technicians,
		pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Technicians retrieved successfully", result)
}

// Get handles retrieving a technician
func (h *TechnicianHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid technician ID")
		return
	}

	technician, err := h.technicianService.GetTechnician(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Technician retrieved", technician)
}

// Update handles technician detail updates
func (h *TechnicianHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid technician ID")
		return
	}

	var req request.UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	technician, err := h.technicianService.UpdateTechnician(c.Request.Context(), id, &service.UpdateTechnicianInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Active:    req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Technician updated", technician)
}

// Delete handles removing a technician
func (h *TechnicianHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid technician ID")
		return
	}

	if err := h.technicianService.DeleteTechnician(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
