package models

import (
	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
)

// PriceSheetModel is the persistence model for the PriceSheet aggregate.
type PriceSheetModel struct {
	AggregateModel
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
func (PriceSheetModel) TableName() string {
	return "utility_prices"
}

// ToDomain converts the persistence model to a domain PriceSheet
func (m *PriceSheetModel) ToDomain() *utility.PriceSheet {
	return &utility.PriceSheet{
		BaseAggregateRoot:        m.ToDomainAggregateRoot(),
		Month:                    m.Month,
		Year:                     m.Year,
		WaterPricePerUnit:        m.WaterPricePerUnit,
		ElectricityPricePerUnit:  m.ElectricityPricePerUnit,
		GasPrice:                 m.GasPrice,
		MonthlyMaintenanceFee:    m.MonthlyMaintenanceFee,
		TotalBuildingWater:       m.TotalBuildingWater,
		TotalBuildingElectricity: m.TotalBuildingElectricity,
	}
}

// FromDomain populates the persistence model from a domain PriceSheet
func (m *PriceSheetModel) FromDomain(p *utility.PriceSheet) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Month = p.Month
	m.Year = p.Year
	m.WaterPricePerUnit = p.WaterPricePerUnit
	m.ElectricityPricePerUnit = p.ElectricityPricePerUnit
	m.GasPrice = p.GasPrice
	m.MonthlyMaintenanceFee = p.MonthlyMaintenanceFee
	m.TotalBuildingWater = p.TotalBuildingWater
	m.TotalBuildingElectricity = p.TotalBuildingElectricity
}

// PriceSheetModelFromDomain creates a new persistence model from a domain PriceSheet
func PriceSheetModelFromDomain(p *utility.PriceSheet) *PriceSheetModel {
	m := &PriceSheetModel{}
	m.FromDomain(p)
	return m
}

// ConsumptionModel is the persistence model for the Consumption aggregate.
type ConsumptionModel struct {
	AggregateModel
	ApartmentID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_consumption_period,priority:1"`
	Month                  int             `gorm:"not null;uniqueIndex:idx_consumption_period,priority:2"`
	Year                   int             `gorm:"not null;uniqueIndex:idx_consumption_period,priority:3"`
	WaterConsumption       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ElectricityConsumption decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ConsumptionModel) TableName() string {
	return "utility_consumption"
}

// ToDomain converts the persistence model to a domain Consumption
func (m *ConsumptionModel) ToDomain() *utility.Consumption {
	return &utility.Consumption{
		BaseAggregateRoot:      m.ToDomainAggregateRoot(),
		ApartmentID:            m.ApartmentID,
		Month:                  m.Month,
		Year:                   m.Year,
		WaterConsumption:       m.WaterConsumption,
		ElectricityConsumption: m.ElectricityConsumption,
	}
}

// FromDomain populates the persistence model from a domain Consumption
func (m *ConsumptionModel) FromDomain(c *utility.Consumption) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.ApartmentID = c.ApartmentID
	m.Month = c.Month
	m.Year = c.Year
	m.WaterConsumption = c.WaterConsumption
	m.ElectricityConsumption = c.ElectricityConsumption
}

// ConsumptionModelFromDomain creates a new persistence model from a domain Consumption
func ConsumptionModelFromDomain(c *utility.Consumption) *ConsumptionModel {
	m := &ConsumptionModel{}
	m.FromDomain(c)
	return m
}
