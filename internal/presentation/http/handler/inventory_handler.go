package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// InventoryHandler handles inventory HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Create handles adding a part to the catalog
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		PartNumber:    req.PartNumber,
		Name:          req.Name,
		Category:      req.Category,
		CurrentStock:  req.CurrentStock,
		MinimumStock:  req.MinimumStock,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created", item)
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	params := &repository.InventoryFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		LowStock:   c.Query("low_stock") == "true",
	}

	items, total, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(items,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Inventory items retrieved successfully", result)
}

// Get handles retrieving a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved", item)
}

// Update handles catalog field updates
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, &service.UpdateItemInput{
		Name:          req.Name,
		Category:      req.Category,
		MinimumStock:  req.MinimumStock,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated", item)
}

// Delete handles removing an item from the catalog
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock lists items at or below their minimum stock level
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.GetLowStockItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved", items)
}

// Restock handles adding received stock to an item
func (h *InventoryHandler) Restock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.Restock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated", item)
}
