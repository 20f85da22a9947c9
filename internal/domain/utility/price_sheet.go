package utility

import (
	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PriceSheet holds the building-wide utility rates and totals for one
// billing period. There is at most one sheet per (month, year).
type PriceSheet struct {
	shared.BaseAggregateRoot
	Month                    int             `gorm:"not null;uniqueIndex:idx_price_sheet_period,priority:1"`
	Year                     int             `gorm:"not null;uniqueIndex:idx_price_sheet_period,priority:2"`
	WaterPricePerUnit        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ElectricityPricePerUnit  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GasPrice                 decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MonthlyMaintenanceFee    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalBuildingWater       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalBuildingElectricity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (PriceSheet) TableName() string {
	return "utility_prices"
}

// PriceSheetRates bundles the rate fields for construction and updates
type PriceSheetRates struct {
	WaterPricePerUnit        decimal.Decimal
	ElectricityPricePerUnit  decimal.Decimal
	GasPrice                 decimal.Decimal
	MonthlyMaintenanceFee    decimal.Decimal
	TotalBuildingWater       decimal.Decimal
	TotalBuildingElectricity decimal.Decimal
}

// NewPriceSheet creates a price sheet for the given period
func NewPriceSheet(month, year int, rates PriceSheetRates) (*PriceSheet, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if err := rates.validate(); err != nil {
		return nil, err
	}
	return &PriceSheet{
		BaseAggregateRoot:        shared.NewBaseAggregateRoot(),
		Month:                    month,
		Year:                     year,
		WaterPricePerUnit:        rates.WaterPricePerUnit,
		ElectricityPricePerUnit:  rates.ElectricityPricePerUnit,
		GasPrice:                 rates.GasPrice,
		MonthlyMaintenanceFee:    rates.MonthlyMaintenanceFee,
		TotalBuildingWater:       rates.TotalBuildingWater,
		TotalBuildingElectricity: rates.TotalBuildingElectricity,
	}, nil
}

// UpdateRates replaces the sheet's rates
func (p *PriceSheet) UpdateRates(rates PriceSheetRates) error {
	if err := rates.validate(); err != nil {
		return err
	}
	p.WaterPricePerUnit = rates.WaterPricePerUnit
	p.ElectricityPricePerUnit = rates.ElectricityPricePerUnit
	p.GasPrice = rates.GasPrice
	p.MonthlyMaintenanceFee = rates.MonthlyMaintenanceFee
	p.TotalBuildingWater = rates.TotalBuildingWater
	p.TotalBuildingElectricity = rates.TotalBuildingElectricity
	return nil
}

func (r PriceSheetRates) validate() error {
	for _, v := range []decimal.Decimal{
		r.WaterPricePerUnit,
		r.ElectricityPricePerUnit,
		r.GasPrice,
		r.MonthlyMaintenanceFee,
		r.TotalBuildingWater,
		r.TotalBuildingElectricity,
	} {
		if v.IsNegative() {
			return shared.NewDomainError("INVALID_RATE", "Utility rates cannot be negative")
		}
	}
	return nil
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if year < 2000 || year > 2200 {
		return shared.NewDomainError("INVALID_PERIOD", "Year out of range")
	}
	return nil
}
