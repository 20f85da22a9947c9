package utility

import (
	"context"

	"github.com/google/uuid"
)

// PriceSheetRepository defines the interface for price sheet persistence
type PriceSheetRepository interface {
	// FindByPeriod finds the price sheet for a period
	FindByPeriod(ctx context.Context, month, year int) (*PriceSheet, error)

	// Upsert creates or replaces the sheet for its (month, year)
	Upsert(ctx context.Context, sheet *PriceSheet) error
}

// ConsumptionRepository defines the interface for consumption persistence
type ConsumptionRepository interface {
	// FindByPeriod finds all consumption rows for a period
	FindByPeriod(ctx context.Context, month, year int) ([]Consumption, error)

	// FindByApartmentAndPeriod finds one apartment's row for a period
	FindByApartmentAndPeriod(ctx context.Context, apartmentID uuid.UUID, month, year int) (*Consumption, error)

	// Upsert creates or replaces the row for its (apartment, month, year)
	Upsert(ctx context.Context, consumption *Consumption) error
}
