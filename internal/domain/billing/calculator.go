package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
)

// CalculatorInput carries everything one billing run needs. The
// calculator itself performs no I/O.
type CalculatorInput struct {
	Period      Period
	Tenants     []property.Tenant
	PriceSheet  *utility.PriceSheet
	Consumption []utility.Consumption
	// Previous holds the period's existing records so payment fields
	// survive a recompute.
	Previous []BillingRecord
}

// Calculator derives one BillingRecord per active tenant for a period.
type Calculator struct{}

// NewCalculator creates a billing calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes the period's invoices. All arithmetic is exact
// decimal with no intermediate rounding, so identical inputs always
// produce identical records.
//
// Shared building costs are split by the number of active tenants, not
// by apartment. A tenant that both moves in and moves out inside the
// same month is billed by the move-out day alone; the move-out rule is
// applied after the move-in rule and overwrites it.
func (c *Calculator) Calculate(input CalculatorInput) ([]BillingRecord, error) {
	if input.PriceSheet == nil {
		return nil, ErrMissingPriceSheet
	}
	if len(input.Tenants) == 0 {
		return nil, ErrNoActiveTenants
	}

	period := input.Period
	if err := period.Validate(); err != nil {
		return nil, err
	}

	totalDays := period.Days()
	totalDaysDec := decimal.NewFromInt(int64(totalDays))
	tenantCount := decimal.NewFromInt(int64(len(input.Tenants)))

	sheet := input.PriceSheet
	waterSharePerTenant := sheet.TotalBuildingWater.Div(tenantCount)
	electricitySharePerTenant := sheet.TotalBuildingElectricity.Div(tenantCount)

	usageByApartment := make(map[uuid.UUID]utility.Consumption, len(input.Consumption))
	for _, u := range input.Consumption {
		usageByApartment[u.ApartmentID] = u
	}
	previousByTenant := make(map[uuid.UUID]BillingRecord, len(input.Previous))
	for _, p := range input.Previous {
		previousByTenant[p.TenantID] = p
	}

	records := make([]BillingRecord, 0, len(input.Tenants))
	for i := range input.Tenants {
		tenant := &input.Tenants[i]

		daysOccupied := c.daysOccupied(period, tenant, totalDays)
		ratio := decimal.NewFromInt(int64(daysOccupied)).Div(totalDaysDec)

		var waterUnits, electricityUnits decimal.Decimal
		if usage, ok := usageByApartment[tenant.ApartmentID]; ok {
			waterUnits = usage.WaterConsumption
			electricityUnits = usage.ElectricityConsumption
		}

		record := BillingRecord{
			TenantID:              tenant.GetID(),
			Month:                 period.Month,
			Year:                  period.Year,
			RentAmount:            tenant.MonthlyRent.Mul(ratio),
			WaterIndividual:       waterUnits.Mul(sheet.WaterPricePerUnit),
			WaterShared:           waterSharePerTenant.Mul(ratio),
			ElectricityIndividual: electricityUnits.Mul(sheet.ElectricityPricePerUnit),
			ElectricityShared:     electricitySharePerTenant.Mul(ratio),
			GasAmount:             sheet.GasPrice.Mul(ratio),
			MaintenanceFee:        sheet.MonthlyMaintenanceFee.Mul(ratio),
			PaidAmount:            decimal.Zero,
			DaysOccupied:          daysOccupied,
			TotalDaysInMonth:      totalDays,
		}
		record.TotalAmount = record.RentAmount.
			Add(record.WaterIndividual).
			Add(record.WaterShared).
			Add(record.ElectricityIndividual).
			Add(record.ElectricityShared).
			Add(record.GasAmount).
			Add(record.MaintenanceFee)

		if prev, ok := previousByTenant[tenant.GetID()]; ok {
			record.PaidAmount = prev.PaidAmount
			record.PaymentDate = prev.PaymentDate
		}

		records = append(records, record)
	}

	return records, nil
}

// daysOccupied derives the tenant's billable days inside the period.
// Default is the whole month. A move-in after the 1st bills from the
// move-in day to month end; a move-out before the last day bills from
// the 1st through the move-out day, overriding the move-in result.
func (c *Calculator) daysOccupied(period Period, tenant *property.Tenant, totalDays int) int {
	firstDay := period.FirstDay()
	lastDay := period.LastDay()

	days := totalDays

	moveIn := dateOnly(tenant.MoveInDate)
	if moveIn.After(firstDay) && !moveIn.After(lastDay) {
		days = totalDays - moveIn.Day() + 1
	}

	if tenant.MoveOutDate != nil {
		moveOut := dateOnly(*tenant.MoveOutDate)
		if !moveOut.Before(firstDay) && moveOut.Before(lastDay) {
			days = moveOut.Day()
		}
	}

	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
