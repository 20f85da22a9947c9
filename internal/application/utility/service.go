package utility

import (
	"context"
	"errors"

	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/utility"
)

// UtilityService handles price sheet and consumption entry
type UtilityService struct {
	priceSheetRepo  utility.PriceSheetRepository
	consumptionRepo utility.ConsumptionRepository
	apartmentRepo   property.ApartmentRepository
}

// NewUtilityService creates a new UtilityService
func NewUtilityService(
	priceSheetRepo utility.PriceSheetRepository,
	consumptionRepo utility.ConsumptionRepository,
	apartmentRepo property.ApartmentRepository,
) *UtilityService {
	return &UtilityService{
		priceSheetRepo:  priceSheetRepo,
		consumptionRepo: consumptionRepo,
		apartmentRepo:   apartmentRepo,
	}
}

// GetPriceSheet retrieves the price sheet for a period
func (s *UtilityService) GetPriceSheet(ctx context.Context, month, year int) (*PriceSheetResponse, error) {
	sheet, err := s.priceSheetRepo.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	response := ToPriceSheetResponse(sheet)
	return &response, nil
}

// UpsertPriceSheet creates or replaces the rates for a period
func (s *UtilityService) UpsertPriceSheet(ctx context.Context, req UpsertPriceSheetRequest) (*PriceSheetResponse, error) {
	rates := utility.PriceSheetRates{
		WaterPricePerUnit:        req.WaterPricePerUnit,
		ElectricityPricePerUnit:  req.ElectricityPricePerUnit,
		GasPrice:                 req.GasPrice,
		MonthlyMaintenanceFee:    req.MonthlyMaintenanceFee,
		TotalBuildingWater:       req.TotalBuildingWater,
		TotalBuildingElectricity: req.TotalBuildingElectricity,
	}

	sheet, err := s.priceSheetRepo.FindByPeriod(ctx, req.Month, req.Year)
	switch {
	case err == nil:
		if err := sheet.UpdateRates(rates); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		sheet, err = utility.NewPriceSheet(req.Month, req.Year, rates)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.priceSheetRepo.Upsert(ctx, sheet); err != nil {
		return nil, err
	}

	response := ToPriceSheetResponse(sheet)
	return &response, nil
}

// ListConsumption lists every apartment's readings for a period. The
// result carries the apartment numbers so the entry screen can render
// without a second request.
func (s *UtilityService) ListConsumption(ctx context.Context, month, year int) ([]ConsumptionResponse, error) {
	rows, err := s.consumptionRepo.FindByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	apartments, err := s.apartmentRepo.FindAll(ctx, shared.Filter{OrderBy: "number", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}
	numberByID := make(map[string]string, len(apartments))
	for i := range apartments {
		numberByID[apartments[i].GetID().String()] = apartments[i].Number
	}

	responses := make([]ConsumptionResponse, len(rows))
	for i := range rows {
		responses[i] = ToConsumptionResponse(&rows[i], numberByID[rows[i].ApartmentID.String()])
	}
	return responses, nil
}

// UpsertConsumption creates or replaces one apartment's readings for a
// period
func (s *UtilityService) UpsertConsumption(ctx context.Context, req UpsertConsumptionRequest) (*ConsumptionResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, req.ApartmentID)
	if err != nil {
		return nil, err
	}

	row, err := s.consumptionRepo.FindByApartmentAndPeriod(ctx, req.ApartmentID, req.Month, req.Year)
	switch {
	case err == nil:
		if err := row.UpdateReadings(req.WaterConsumption, req.ElectricityConsumption); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		row, err = utility.NewConsumption(req.ApartmentID, req.Month, req.Year, req.WaterConsumption, req.ElectricityConsumption)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.consumptionRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}

	response := ToConsumptionResponse(row, apartment.Number)
	return &response, nil
}
