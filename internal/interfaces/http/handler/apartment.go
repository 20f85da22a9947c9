package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/propman/backend/internal/application/property"
	"github.com/propman/backend/internal/interfaces/http/middleware"
)

// ApartmentHandler handles apartment API endpoints
type ApartmentHandler struct {
	BaseHandler
	apartmentService *propertyapp.ApartmentService
}

// NewApartmentHandler creates a new ApartmentHandler
func NewApartmentHandler(apartmentService *propertyapp.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

// Create creates a new apartment
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req propertyapp.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	apartment, err := h.apartmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, apartment)
}

// GetByID retrieves an apartment by its ID
func (h *ApartmentHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID format")
		return
	}

	apartment, err := h.apartmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// List retrieves apartments with pagination and search
func (h *ApartmentHandler) List(c *gin.Context) {
	var filter propertyapp.ApartmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	apartments, total, err := h.apartmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, apartments, total, page, pageSize)
}

// Update updates an apartment
func (h *ApartmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID format")
		return
	}

	var req propertyapp.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	apartment, err := h.apartmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, apartment)
}

// Delete deletes an apartment without tenants
func (h *ApartmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid apartment ID format")
		return
	}

	if err := h.apartmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
