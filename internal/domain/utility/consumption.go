package utility

import (
	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Consumption records the metered usage of one apartment for one
// billing period. Unique per (apartment, month, year); a missing row
// means zero usage for that apartment.
type Consumption struct {
	shared.BaseAggregateRoot
	ApartmentID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_consumption_period,priority:1"`
	Month                  int             `gorm:"not null;uniqueIndex:idx_consumption_period,priority:2"`
	Year                   int             `gorm:"not null;uniqueIndex:idx_consumption_period,priority:3"`
	WaterConsumption       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ElectricityConsumption decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Consumption) TableName() string {
	return "utility_consumption"
}

// NewConsumption creates a consumption record for an apartment and period
func NewConsumption(apartmentID uuid.UUID, month, year int, water, electricity decimal.Decimal) (*Consumption, error) {
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Apartment ID is required")
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if water.IsNegative() || electricity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CONSUMPTION", "Consumption cannot be negative")
	}
	return &Consumption{
		BaseAggregateRoot:      shared.NewBaseAggregateRoot(),
		ApartmentID:            apartmentID,
		Month:                  month,
		Year:                   year,
		WaterConsumption:       water,
		ElectricityConsumption: electricity,
	}, nil
}

// UpdateReadings replaces the metered values
func (c *Consumption) UpdateReadings(water, electricity decimal.Decimal) error {
	if water.IsNegative() || electricity.IsNegative() {
		return shared.NewDomainError("INVALID_CONSUMPTION", "Consumption cannot be negative")
	}
	c.WaterConsumption = water
	c.ElectricityConsumption = electricity
	return nil
}
