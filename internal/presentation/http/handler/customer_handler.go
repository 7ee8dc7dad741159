package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// CustomerHandler handles customer directory HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles registering a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	params := parsePagination(c)
	search := c.Query("search")

	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(customers,
		pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles retrieving a customer with their vehicles
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// Update handles customer contact updates
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}

// Delete handles removing a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
