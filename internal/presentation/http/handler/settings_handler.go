package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/motorsync/garage-api/internal/application/service"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/request"
	"github.com/motorsync/garage-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles garage settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the garage profile
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// Update handles updating the garage profile
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		GarageName:     req.GarageName,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		GSTIN:          req.GSTIN,
		Currency:       req.Currency,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}
