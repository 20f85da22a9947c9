package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// RunRequest triggers a billing run for one period. A zero month and
// year defaults to the current month at the HTTP edge, not here.
type RunRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
}

// RunResponse summarizes a completed billing run
type RunResponse struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	TenantsBilled int             `json:"tenants_billed"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
}

// RecordListQuery identifies the period for a record listing
type RecordListQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2200"`
}

// PaymentRequest records a payment against one billing record
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate *time.Time      `json:"payment_date" time_format:"2006-01-02"`
}

// RecordResponse represents one tenant's invoice in API responses.
// Amounts are rounded to two decimal places for presentation; the
// stored values keep full precision.
type RecordResponse struct {
	ID                    uuid.UUID       `json:"id"`
	TenantID              uuid.UUID       `json:"tenant_id"`
	TenantName            string          `json:"tenant_name"`
	ApartmentNumber       string          `json:"apartment_number"`
	Month                 int             `json:"month"`
	Year                  int             `json:"year"`
	RentAmount            decimal.Decimal `json:"rent_amount"`
	WaterIndividual       decimal.Decimal `json:"water_individual"`
	WaterShared           decimal.Decimal `json:"water_shared"`
	ElectricityIndividual decimal.Decimal `json:"electricity_individual"`
	ElectricityShared     decimal.Decimal `json:"electricity_shared"`
	GasAmount             decimal.Decimal `json:"gas_amount"`
	MaintenanceFee        decimal.Decimal `json:"maintenance_fee"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	PaidAmount            decimal.Decimal `json:"paid_amount"`
	Outstanding           decimal.Decimal `json:"outstanding"`
	PaymentDate           *time.Time      `json:"payment_date"`
	DaysOccupied          int             `json:"days_occupied"`
	TotalDaysInMonth      int             `json:"total_days_in_month"`
}

// ToRecordResponse converts a domain BillingRecord to a response DTO
func ToRecordResponse(r *billing.BillingRecord, tenantName, apartmentNumber string) RecordResponse {
	return RecordResponse{
		ID:                    r.GetID(),
		TenantID:              r.TenantID,
		TenantName:            tenantName,
		ApartmentNumber:       apartmentNumber,
		Month:                 r.Month,
		Year:                  r.Year,
		RentAmount:            r.RentAmount.Round(2),
		WaterIndividual:       r.WaterIndividual.Round(2),
		WaterShared:           r.WaterShared.Round(2),
		ElectricityIndividual: r.ElectricityIndividual.Round(2),
		ElectricityShared:     r.ElectricityShared.Round(2),
		GasAmount:             r.GasAmount.Round(2),
		MaintenanceFee:        r.MaintenanceFee.Round(2),
		TotalAmount:           r.TotalAmount.Round(2),
		PaidAmount:            r.PaidAmount.Round(2),
		Outstanding:           r.Outstanding().Round(2),
		PaymentDate:           r.PaymentDate,
		DaysOccupied:          r.DaysOccupied,
		TotalDaysInMonth:      r.TotalDaysInMonth,
	}
}

// SummaryResponse is the dashboard read model
type SummaryResponse struct {
	Apartments    int64           `json:"apartments"`
	ActiveTenants int64           `json:"active_tenants"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// ToSummaryResponse converts a domain Summary to a response DTO
func ToSummaryResponse(s *billing.Summary) SummaryResponse {
	return SummaryResponse{
		Apartments:    s.Apartments,
		ActiveTenants: s.ActiveTenants,
		TotalBilled:   s.TotalBilled.Round(2),
		TotalRevenue:  s.TotalRevenue.Round(2),
		Outstanding:   s.Outstanding.Round(2),
	}
}
