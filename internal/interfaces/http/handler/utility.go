package handler

import (
	"github.com/gin-gonic/gin"
	utilityapp "github.com/propman/backend/internal/application/utility"
	"github.com/propman/backend/internal/interfaces/http/middleware"
)

// UtilityHandler handles utility price sheet and consumption API endpoints
type UtilityHandler struct {
	BaseHandler
	utilityService *utilityapp.UtilityService
}

// NewUtilityHandler creates a new UtilityHandler
func NewUtilityHandler(utilityService *utilityapp.UtilityService) *UtilityHandler {
	return &UtilityHandler{utilityService: utilityService}
}

// GetPriceSheet retrieves the price sheet for one billing period
func (h *UtilityHandler) GetPriceSheet(c *gin.Context) {
	var query utilityapp.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sheet, err := h.utilityService.GetPriceSheet(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sheet)
}

// UpsertPriceSheet creates or replaces the price sheet for one billing period
func (h *UtilityHandler) UpsertPriceSheet(c *gin.Context) {
	var req utilityapp.UpsertPriceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sheet, err := h.utilityService.UpsertPriceSheet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sheet)
}

// ListConsumption retrieves per-apartment meter readings for one period
func (h *UtilityHandler) ListConsumption(c *gin.Context) {
	var query utilityapp.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	rows, err := h.utilityService.ListConsumption(c.Request.Context(), query.Month, query.Year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rows)
}

// UpsertConsumption creates or replaces one apartment's meter readings for a period
func (h *UtilityHandler) UpsertConsumption(c *gin.Context) {
	var req utilityapp.UpsertConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	row, err := h.utilityService.UpsertConsumption(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, row)
}
