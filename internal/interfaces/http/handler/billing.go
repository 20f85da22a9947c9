package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	billingapp "github.com/propman/backend/internal/application/billing"
	"github.com/propman/backend/internal/domain/billing"
	"github.com/propman/backend/internal/interfaces/http/middleware"
)

// BillingHandler handles billing run, record and summary API endpoints
type BillingHandler struct {
	BaseHandler
	billingService *billingapp.BillingService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(billingService *billingapp.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Run executes a billing run for the requested period. An empty body
// bills the current calendar month.
func (h *BillingHandler) Run(c *gin.Context) {
	var req billingapp.RunRequest
	if c.Request.ContentLength == 0 {
		period := billing.CurrentPeriod(time.Now())
		req.Month = period.Month
		req.Year = period.Year
	} else if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.billingService.Run(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ListRecords retrieves the billing records for one period
func (h *BillingHandler) ListRecords(c *gin.Context) {
	var query billingapp.RecordListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	records, err := h.billingService.ListRecords(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, records)
}

// RecordPayment applies a payment against one billing record
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid billing record ID format")
		return
	}

	var req billingapp.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := h.billingService.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// GetSummary returns dashboard aggregates across the portfolio
func (h *BillingHandler) GetSummary(c *gin.Context) {
	summary, err := h.billingService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
