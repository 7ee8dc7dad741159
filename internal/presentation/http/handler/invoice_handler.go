package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/domain/enum"
	"github.com/motorsync/garage-api/internal/domain/repository"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
	"github.com/motorsync/garage-api/pkg/pagination"
)

// InvoiceHandler handles invoice and payment HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	paymentService *service.PaymentService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, paymentService *service.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		paymentService: paymentService,
	}
}

// Create handles billing a finished job card
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	jobCardID, err := uuid.Parse(req.JobCardID)
	if err != nil {
		response.BadRequest(c, "Invalid job card ID")
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		JobCardID:          jobCardID,
		Discount:           req.Discount,
		DiscountPercentage: req.DiscountPercentage,
		Notes:              req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created", invoice)
}

// List handles listing invoices with filters
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: parsePagination(c),
		Search:     c.Query("search"),
	}

	if statusStr := c.Query("payment_status"); statusStr != "" {
		if status, ok := enum.ParsePaymentStatus(statusStr); ok {
			params.PaymentStatus = &status
		}
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if id, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &id
		}
	}

	invoices, total, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles retrieving a single invoice with full details
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// RecordPayment handles applying a payment to an invoice
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID:     id,
		PaidAmount:    req.PaidAmount,
		PaymentMode:   req.PaymentMode,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded", invoice)
}

// Cancel handles voiding an unpaid invoice
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.paymentService.CancelInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice cancelled", invoice)
}
