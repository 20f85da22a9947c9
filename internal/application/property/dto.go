package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Apartment DTOs
// =============================================================================

// CreateApartmentRequest represents a request to create a new apartment
type CreateApartmentRequest struct {
	Number       string           `json:"number" binding:"required,min=1,max=20"`
	Floor        *int             `json:"floor"`
	SquareMeters *decimal.Decimal `json:"square_meters"`
	Notes        string           `json:"notes"`
}

// UpdateApartmentRequest represents a request to update an apartment
type UpdateApartmentRequest struct {
	Number       *string          `json:"number" binding:"omitempty,min=1,max=20"`
	Floor        *int             `json:"floor"`
	SquareMeters *decimal.Decimal `json:"square_meters"`
	Notes        *string          `json:"notes"`
}

// ApartmentResponse represents an apartment in API responses
type ApartmentResponse struct {
	ID           uuid.UUID        `json:"id"`
	Number       string           `json:"number"`
	Floor        *int             `json:"floor"`
	SquareMeters *decimal.Decimal `json:"square_meters"`
	Notes        string           `json:"notes"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Version      int              `json:"version"`
}

// ApartmentListFilter represents filter options for the apartment list
type ApartmentListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToApartmentResponse converts a domain Apartment to a response DTO
func ToApartmentResponse(a *property.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID:           a.GetID(),
		Number:       a.Number,
		Floor:        a.Floor,
		SquareMeters: a.SquareMeters,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
		Version:      a.Version,
	}
}

// ToApartmentResponses converts a slice of apartments to response DTOs
func ToApartmentResponses(apartments []property.Apartment) []ApartmentResponse {
	responses := make([]ApartmentResponse, len(apartments))
	for i := range apartments {
		responses[i] = ToApartmentResponse(&apartments[i])
	}
	return responses
}

// =============================================================================
// Tenant DTOs
// =============================================================================

// CreateTenantRequest represents a request to create a new tenant
type CreateTenantRequest struct {
	ApartmentID uuid.UUID       `json:"apartment_id" binding:"required"`
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Email       string          `json:"email" binding:"omitempty,email,max=200"`
	Phone       string          `json:"phone" binding:"max=50"`
	MoveInDate  time.Time       `json:"move_in_date" binding:"required" time_format:"2006-01-02"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" binding:"required"`
	Activate    bool            `json:"activate"`
}

// UpdateTenantRequest represents a request to update a tenant
type UpdateTenantRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Email       *string          `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent"`
	MoveOutDate *time.Time       `json:"move_out_date" time_format:"2006-01-02"`
}

// DeactivateTenantRequest carries the move-out date for a deactivation
type DeactivateTenantRequest struct {
	MoveOutDate time.Time `json:"move_out_date" binding:"required" time_format:"2006-01-02"`
}

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID          uuid.UUID       `json:"id"`
	ApartmentID uuid.UUID       `json:"apartment_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	MoveInDate  time.Time       `json:"move_in_date"`
	MoveOutDate *time.Time      `json:"move_out_date"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// TenantListFilter represents filter options for the tenant list
type TenantListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive pending"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToTenantResponse converts a domain Tenant to a response DTO
func ToTenantResponse(t *property.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.GetID(),
		ApartmentID: t.ApartmentID,
		Name:        t.Name,
		Email:       t.Email,
		Phone:       t.Phone,
		MoveInDate:  t.MoveInDate,
		MoveOutDate: t.MoveOutDate,
		MonthlyRent: t.MonthlyRent,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Version:     t.Version,
	}
}

// ToTenantResponses converts a slice of tenants to response DTOs
func ToTenantResponses(tenants []property.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses
}
