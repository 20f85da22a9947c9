package utility

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
)

// PeriodQuery identifies the billing month in query strings
type PeriodQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
	Year  int `form:"year" binding:"required,min=2000,max=2200"`
}

// UpsertPriceSheetRequest carries the rates for one period
type UpsertPriceSheetRequest struct {
	Month                    int             `json:"month" binding:"required,min=1,max=12"`
	Year                     int             `json:"year" binding:"required,min=2000,max=2200"`
	WaterPricePerUnit        decimal.Decimal `json:"water_price_per_unit"`
	ElectricityPricePerUnit  decimal.Decimal `json:"electricity_price_per_unit"`
	GasPrice                 decimal.Decimal `json:"gas_price"`
	MonthlyMaintenanceFee    decimal.Decimal `json:"monthly_maintenance_fee"`
	TotalBuildingWater       decimal.Decimal `json:"total_building_water"`
	TotalBuildingElectricity decimal.Decimal `json:"total_building_electricity"`
}

// PriceSheetResponse represents a price sheet in API responses
type PriceSheetResponse struct {
	ID                       uuid.UUID       `json:"id"`
	Month                    int             `json:"month"`
	Year                     int             `json:"year"`
	WaterPricePerUnit        decimal.Decimal `json:"water_price_per_unit"`
	ElectricityPricePerUnit  decimal.Decimal `json:"electricity_price_per_unit"`
	GasPrice                 decimal.Decimal `json:"gas_price"`
	MonthlyMaintenanceFee    decimal.Decimal `json:"monthly_maintenance_fee"`
	TotalBuildingWater       decimal.Decimal `json:"total_building_water"`
	TotalBuildingElectricity decimal.Decimal `json:"total_building_electricity"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// UpsertConsumptionRequest carries one apartment's metered readings
type UpsertConsumptionRequest struct {
	ApartmentID            uuid.UUID       `json:"apartment_id" binding:"required"`
	Month                  int             `json:"month" binding:"required,min=1,max=12"`
	Year                   int             `json:"year" binding:"required,min=2000,max=2200"`
	WaterConsumption       decimal.Decimal `json:"water_consumption"`
	ElectricityConsumption decimal.Decimal `json:"electricity_consumption"`
}

// ConsumptionResponse represents a consumption row in API responses
type ConsumptionResponse struct {
	ID                     uuid.UUID       `json:"id"`
	ApartmentID            uuid.UUID       `json:"apartment_id"`
	ApartmentNumber        string          `json:"apartment_number"`
	Month                  int             `json:"month"`
	Year                   int             `json:"year"`
	WaterConsumption       decimal.Decimal `json:"water_consumption"`
	ElectricityConsumption decimal.Decimal `json:"electricity_consumption"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// ToPriceSheetResponse converts a domain PriceSheet to a response DTO
func ToPriceSheetResponse(s *utility.PriceSheet) PriceSheetResponse {
	return PriceSheetResponse{
		ID:                       s.GetID(),
		Month:                    s.Month,
		Year:                     s.Year,
		WaterPricePerUnit:        s.WaterPricePerUnit,
		ElectricityPricePerUnit:  s.ElectricityPricePerUnit,
		GasPrice:                 s.GasPrice,
		MonthlyMaintenanceFee:    s.MonthlyMaintenanceFee,
		TotalBuildingWater:       s.TotalBuildingWater,
		TotalBuildingElectricity: s.TotalBuildingElectricity,
		UpdatedAt:                s.UpdatedAt,
	}
}

// ToConsumptionResponse converts a domain Consumption to a response DTO
func ToConsumptionResponse(c *utility.Consumption, apartmentNumber string) ConsumptionResponse {
	return ConsumptionResponse{
		ID:                     c.GetID(),
		ApartmentID:            c.ApartmentID,
		ApartmentNumber:        apartmentNumber,
		Month:                  c.Month,
		Year:                   c.Year,
		WaterConsumption:       c.WaterConsumption,
		ElectricityConsumption: c.ElectricityConsumption,
		UpdatedAt:              c.UpdatedAt,
	}
}
