package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// JobCardHandler handles job card HTTP requests
type JobCardHandler struct {
	jobCardService *service.JobCardService
}

// NewJobCardHandler creates a new job card handler
func NewJobCardHandler(jobCardService *service.JobCardService) *JobCardHandler {
	return &JobCardHandler{jobCardService: jobCardService}
}

// Create handles opening a new job card
func (h *JobCardHandler) Create(c *gin.Context) {
	var req request.CreateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var technicianID *uuid.UUID
	if req.TechnicianID != "" {
		id, err := uuid.Parse(req.TechnicianID)
		if err != nil {
			response.BadRequest(c, "Invalid technician ID")
			return
		}
		technicianID = &id
	}

	priority := enum.PriorityNormal
	if req.Priority != "" {
		priority, _ = enum.ParseJobCardPriority(req.Priority)
	}

	jobCard, err := h.jobCardService.CreateJobCard(c.Request.Context(), &service.CreateJobCardInput{
		VehicleID:    vehicleID,
		TechnicianID: technicianID,
		Priority:     priority,
		Complaint:    req.Complaint,
		Odometer:     req.Odometer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Job card created", jobCard)
}

// List handles listing job cards with filters
func (h *JobCardHandler) List(c *gin.Context) {
	params := &repository.JobCardFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParseJobCardStatus(statusStr); ok {
			params.Status = &status
		}
	}
	if vehicleIDStr := c.Query("vehicle_id"); vehicleIDStr != "" {
		if id, err := uuid.Parse(vehicleIDStr); err == nil {
			params.VehicleID = &id
		}
	}
	if technicianIDStr := c.Query("technician_id"); technicianIDStr != "" {
		if id, err := uuid.Parse(technicianIDStr); err == nil {
			params.TechnicianID = &id
		}
	}

	jobCards, total, err := h.jobCardService.ListJobCards(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(jobCards,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Job cards retrieved successfully", result)
}

// Get handles retrieving a single job card with details
func (h *JobCardHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	jobCard, err := h.jobCardService.GetJobCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Job card retrieved", jobCard)
}

// Watch streams job card updates over server-sent events. Concurrent
// watchers of the same card share one underlying load per change.
func (h *JobCardHandler) Watch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	updates, cancel, err := h.jobCardService.WatchJobCard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case jobCard, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent("job_card", jobCard)
			return true
		case <-keepalive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// AddService handles adding a labor line item
func (h *JobCardHandler) AddService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	var req request.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	line, err := h.jobCardService.AddService(c.Request.Context(), id, &service.AddServiceInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		UnitCost: req.UnitCost,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service added", line)
}

// RemoveService handles removing a labor line item
func (h *JobCardHandler) RemoveService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	if err := h.jobCardService.RemoveService(c.Request.Context(), id, serviceID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddPart handles consuming a part from inventory
func (h *JobCardHandler) AddPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	var req request.AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.InventoryItemID)
	if err != nil {
		response.BadRequest(c, "Invalid inventory item ID")
		return
	}

	line, err := h.jobCardService.AddPart(c.Request.Context(), id, &service.AddPartInput{
		InventoryItemID: itemID,
		Quantity:        req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Part added", line)
}

// RemovePart handles returning a consumed part to stock
func (h *JobCardHandler) RemovePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}
	partID, ok := parseIDParam(c, "partId")
	if !ok {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	if err := h.jobCardService.RemovePart(c.Request.Context(), id, partID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetDiscount handles updating the job card discount
func (h *JobCardHandler) SetDiscount(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	jobCard, err := h.jobCardService.SetDiscount(c.Request.Context(), id, req.Discount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated", jobCard)
}

// UpdateStatus handles moving the job card through its lifecycle
func (h *JobCardHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, valid := enum.ParseJobCardStatus(req.Status)
	if !valid {
		response.BadRequest(c, "Invalid status")
		return
	}

	jobCard, err := h.jobCardService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", jobCard)
}
