package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2026 has 30 days.
var june = Period{Month: 6, Year: 2026}

func juneSheet(t *testing.T) *utility.PriceSheet {
	t.Helper()
	sheet, err := utility.NewPriceSheet(june.Month, june.Year, utility.PriceSheetRates{
		WaterPricePerUnit:        decimal.NewFromFloat(2.00),
		ElectricityPricePerUnit:  decimal.NewFromFloat(0.50),
		GasPrice:                 decimal.NewFromInt(20),
		MonthlyMaintenanceFee:    decimal.NewFromInt(15),
		TotalBuildingWater:       decimal.NewFromInt(300),
		TotalBuildingElectricity: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	return sheet
}

func newTestTenant(t *testing.T, rent int64, moveIn time.Time) property.Tenant {
	t.Helper()
	tenant, err := property.NewTenant(uuid.New(), "Tenant", moveIn, decimal.NewFromInt(rent))
	require.NoError(t, err)
	require.NoError(t, tenant.Activate())
	return *tenant
}

func usage(apartmentID uuid.UUID, water, electricity int64) utility.Consumption {
	return utility.Consumption{
		ApartmentID:            apartmentID,
		Month:                  june.Month,
		Year:                   june.Year,
		WaterConsumption:       decimal.NewFromInt(water),
		ElectricityConsumption: decimal.NewFromInt(electricity),
	}
}

func TestCalculateFullMonthExample(t *testing.T) {
	// Three active tenants for the whole of a 30-day month. The tenant
	// under test consumed 10 water units and 40 electricity units.
	moveIn := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tenants := []property.Tenant{
		newTestTenant(t, 1000, moveIn),
		newTestTenant(t, 900, moveIn),
		newTestTenant(t, 800, moveIn),
	}

	calc := NewCalculator()
	records, err := calc.Calculate(CalculatorInput{
		Period:      june,
		Tenants:     tenants,
		PriceSheet:  juneSheet(t),
		Consumption: []utility.Consumption{usage(tenants[0].ApartmentID, 10, 40)},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	r := records[0]
	assert.Equal(t, tenants[0].GetID(), r.TenantID)
	assert.Equal(t, 30, r.DaysOccupied)
	assert.Equal(t, 30, r.TotalDaysInMonth)
	assert.Equal(t, "1000.00", r.RentAmount.StringFixed(2))
	assert.Equal(t, "20.00", r.WaterIndividual.StringFixed(2))
	assert.Equal(t, "100.00", r.WaterShared.StringFixed(2))
	assert.Equal(t, "20.00", r.ElectricityIndividual.StringFixed(2))
	assert.Equal(t, "50.00", r.ElectricityShared.StringFixed(2))
	assert.Equal(t, "20.00", r.GasAmount.StringFixed(2))
	assert.Equal(t, "15.00", r.MaintenanceFee.StringFixed(2))
	assert.Equal(t, "1225.00", r.TotalAmount.StringFixed(2))
	assert.True(t, r.PaidAmount.IsZero())
	assert.Nil(t, r.PaymentDate)
}

func TestCalculateTotalIsSumOfComponents(t *testing.T) {
	tenants := []property.Tenant{
		newTestTenant(t, 1234, time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)),
		newTestTenant(t, 777, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	records, err := NewCalculator().Calculate(CalculatorInput{
		Period:      june,
		Tenants:     tenants,
		PriceSheet:  juneSheet(t),
		Consumption: []utility.Consumption{usage(tenants[0].ApartmentID, 3, 17)},
	})
	require.NoError(t, err)

	for _, r := range records {
		sum := r.RentAmount.
			Add(r.WaterIndividual).
			Add(r.WaterShared).
			Add(r.ElectricityIndividual).
			Add(r.ElectricityShared).
			Add(r.GasAmount).
			Add(r.MaintenanceFee)
		assert.True(t, sum.Equal(r.TotalAmount))
	}
}

func TestDaysOccupied(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
	}
	before := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		moveIn   time.Time
		moveOut  *time.Time
		expected int
	}{
		{"whole month", before, nil, 30},
		{"move in on the 1st", day(1), nil, 30},
		{"move in on the 10th", day(10), nil, 21},
		{"move in on the last day", day(30), nil, 1},
		{"move out on the 15th", before, ptr(day(15)), 15},
		{"move out on the 1st", before, ptr(day(1)), 1},
		{"move out on the last day", before, ptr(day(30)), 30},
		{"move out after the month", before, ptr(time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)), 30},
		{"move in and out in the month", day(10), ptr(day(20)), 20},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant := newTestTenant(t, 300, tt.moveIn)
			tenant.MoveOutDate = tt.moveOut

			records, err := calc.Calculate(CalculatorInput{
				Period:     june,
				Tenants:    []property.Tenant{tenant},
				PriceSheet: juneSheet(t),
			})
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, tt.expected, records[0].DaysOccupied)
		})
	}
}

func TestCalculateProration(t *testing.T) {
	// 21 of 30 days occupied: monthly amounts scale by 21/30 while the
	// individually metered utilities stay at full price.
	tenant := newTestTenant(t, 1000, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC))

	records, err := NewCalculator().Calculate(CalculatorInput{
		Period:      june,
		Tenants:     []property.Tenant{tenant},
		PriceSheet:  juneSheet(t),
		Consumption: []utility.Consumption{usage(tenant.ApartmentID, 10, 40)},
	})
	require.NoError(t, err)
	r := records[0]

	assert.Equal(t, 21, r.DaysOccupied)
	assert.Equal(t, "700.00", r.RentAmount.StringFixed(2))
	assert.Equal(t, "14.00", r.GasAmount.StringFixed(2))
	assert.Equal(t, "10.50", r.MaintenanceFee.StringFixed(2))
	assert.Equal(t, "20.00", r.WaterIndividual.StringFixed(2))
	assert.Equal(t, "20.00", r.ElectricityIndividual.StringFixed(2))
	assert.Equal(t, "210.00", r.WaterShared.StringFixed(2))
	assert.Equal(t, "105.00", r.ElectricityShared.StringFixed(2))
}

func TestCalculateMissingConsumption(t *testing.T) {
	tenant := newTestTenant(t, 500, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	records, err := NewCalculator().Calculate(CalculatorInput{
		Period:     june,
		Tenants:    []property.Tenant{tenant},
		PriceSheet: juneSheet(t),
	})
	require.NoError(t, err)
	r := records[0]

	assert.True(t, r.WaterIndividual.IsZero())
	assert.True(t, r.ElectricityIndividual.IsZero())
	assert.False(t, r.WaterShared.IsZero())
}

func TestCalculateErrors(t *testing.T) {
	tenant := newTestTenant(t, 500, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("missing price sheet", func(t *testing.T) {
		_, err := NewCalculator().Calculate(CalculatorInput{
			Period:  june,
			Tenants: []property.Tenant{tenant},
		})
		assert.ErrorIs(t, err, ErrMissingPriceSheet)
	})

	t.Run("no active tenants", func(t *testing.T) {
		_, err := NewCalculator().Calculate(CalculatorInput{
			Period:     june,
			PriceSheet: juneSheet(t),
		})
		assert.ErrorIs(t, err, ErrNoActiveTenants)
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := NewCalculator().Calculate(CalculatorInput{
			Period:     Period{Month: 13, Year: 2026},
			Tenants:    []property.Tenant{tenant},
			PriceSheet: juneSheet(t),
		})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_PERIOD", de.Code)
	})
}

func TestCalculateIdempotence(t *testing.T) {
	tenants := []property.Tenant{
		newTestTenant(t, 1000, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)),
		newTestTenant(t, 850, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	input := CalculatorInput{
		Period:      june,
		Tenants:     tenants,
		PriceSheet:  juneSheet(t),
		Consumption: []utility.Consumption{usage(tenants[0].ApartmentID, 7, 21)},
	}

	calc := NewCalculator()
	first, err := calc.Calculate(input)
	require.NoError(t, err)
	second, err := calc.Calculate(input)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].TotalAmount.Equal(second[i].TotalAmount))
		assert.Equal(t, first[i].TotalAmount.String(), second[i].TotalAmount.String())
		assert.Equal(t, first[i].DaysOccupied, second[i].DaysOccupied)
	}
}

func TestCalculatePreservesPayments(t *testing.T) {
	tenant := newTestTenant(t, 1000, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	paidAt := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	previous := BillingRecord{
		TenantID:    tenant.GetID(),
		Month:       june.Month,
		Year:        june.Year,
		PaidAmount:  decimal.NewFromInt(400),
		PaymentDate: &paidAt,
	}

	records, err := NewCalculator().Calculate(CalculatorInput{
		Period:     june,
		Tenants:    []property.Tenant{tenant},
		PriceSheet: juneSheet(t),
		Previous:   []BillingRecord{previous},
	})
	require.NoError(t, err)
	r := records[0]

	assert.Equal(t, "400.00", r.PaidAmount.StringFixed(2))
	require.NotNil(t, r.PaymentDate)
	assert.Equal(t, paidAt, *r.PaymentDate)
}

func ptr(t time.Time) *time.Time { return &t }
