package utility

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPriceSheetRepository is a mock implementation of PriceSheetRepository
type MockPriceSheetRepository struct {
	mock.Mock
}

func (m *MockPriceSheetRepository) FindByPeriod(ctx context.Context, month, year int) (*utility.PriceSheet, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utility.PriceSheet), args.Error(1)
}

func (m *MockPriceSheetRepository) Upsert(ctx context.Context, sheet *utility.PriceSheet) error {
	args := m.Called(ctx, sheet)
	return args.Error(0)
}

// MockConsumptionRepository is a mock implementation of ConsumptionRepository
type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) FindByPeriod(ctx context.Context, month, year int) ([]utility.Consumption, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).([]utility.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) FindByApartmentAndPeriod(ctx context.Context, apartmentID uuid.UUID, month, year int) (*utility.Consumption, error) {
	args := m.Called(ctx, apartmentID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utility.Consumption), args.Error(1)
}

func (m *MockConsumptionRepository) Upsert(ctx context.Context, consumption *utility.Consumption) error {
	args := m.Called(ctx, consumption)
	return args.Error(0)
}

// MockApartmentRepository is a mock implementation of ApartmentRepository
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Apartment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindByNumber(ctx context.Context, number string) (*property.Apartment, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Apartment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApartmentRepository) Save(ctx context.Context, apartment *property.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testRates() utility.PriceSheetRates {
	return utility.PriceSheetRates{
		WaterPricePerUnit:        decimal.NewFromFloat(2.5),
		ElectricityPricePerUnit:  decimal.NewFromFloat(0.4),
		GasPrice:                 decimal.NewFromInt(20),
		MonthlyMaintenanceFee:    decimal.NewFromInt(15),
		TotalBuildingWater:       decimal.NewFromInt(300),
		TotalBuildingElectricity: decimal.NewFromInt(150),
	}
}

func TestUtilityService_UpsertPriceSheet(t *testing.T) {
	t.Run("creates when no sheet exists", func(t *testing.T) {
		priceRepo := new(MockPriceSheetRepository)
		consumptionRepo := new(MockConsumptionRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

		priceRepo.On("FindByPeriod", mock.Anything, 6, 2026).Return(nil, shared.ErrNotFound)
		priceRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*utility.PriceSheet")).Return(nil)

		resp, err := service.UpsertPriceSheet(context.Background(), UpsertPriceSheetRequest{
			Month: 6, Year: 2026, GasPrice: decimal.NewFromInt(20),
		})
		require.NoError(t, err)
		assert.Equal(t, 6, resp.Month)
		assert.True(t, resp.GasPrice.Equal(decimal.NewFromInt(20)))
		priceRepo.AssertExpectations(t)
	})

	t.Run("updates existing sheet in place", func(t *testing.T) {
		priceRepo := new(MockPriceSheetRepository)
		consumptionRepo := new(MockConsumptionRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

		existing, err := utility.NewPriceSheet(6, 2026, testRates())
		require.NoError(t, err)
		originalID := existing.GetID()

		priceRepo.On("FindByPeriod", mock.Anything, 6, 2026).Return(existing, nil)
		priceRepo.On("Upsert", mock.Anything, existing).Return(nil)

		resp, err := service.UpsertPriceSheet(context.Background(), UpsertPriceSheetRequest{
			Month: 6, Year: 2026, GasPrice: decimal.NewFromInt(25),
		})
		require.NoError(t, err)
		assert.Equal(t, originalID, resp.ID)
		assert.True(t, resp.GasPrice.Equal(decimal.NewFromInt(25)))
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		priceRepo := new(MockPriceSheetRepository)
		consumptionRepo := new(MockConsumptionRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

		priceRepo.On("FindByPeriod", mock.Anything, 6, 2026).Return(nil, shared.ErrNotFound)

		_, err := service.UpsertPriceSheet(context.Background(), UpsertPriceSheetRequest{
			Month: 6, Year: 2026, GasPrice: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		priceRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUtilityService_UpsertConsumption(t *testing.T) {
	t.Run("creates a fresh reading row", func(t *testing.T) {
		priceRepo := new(MockPriceSheetRepository)
		consumptionRepo := new(MockConsumptionRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

		apartment, _ := property.NewApartment("3A")
		apartmentRepo.On("FindByID", mock.Anything, apartment.GetID()).Return(apartment, nil)
		consumptionRepo.On("FindByApartmentAndPeriod", mock.Anything, apartment.GetID(), 6, 2026).
			Return(nil, shared.ErrNotFound)
		consumptionRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*utility.Consumption")).Return(nil)

		resp, err := service.UpsertConsumption(context.Background(), UpsertConsumptionRequest{
			ApartmentID:            apartment.GetID(),
			Month:                  6,
			Year:                   2026,
			WaterConsumption:       decimal.NewFromInt(10),
			ElectricityConsumption: decimal.NewFromInt(45),
		})
		require.NoError(t, err)
		assert.Equal(t, "3A", resp.ApartmentNumber)
		assert.True(t, resp.WaterConsumption.Equal(decimal.NewFromInt(10)))
	})

	t.Run("unknown apartment fails before any write", func(t *testing.T) {
		priceRepo := new(MockPriceSheetRepository)
		consumptionRepo := new(MockConsumptionRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

		id := uuid.New()
		apartmentRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.UpsertConsumption(context.Background(), UpsertConsumptionRequest{
			ApartmentID: id, Month: 6, Year: 2026,
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		consumptionRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUtilityService_ListConsumption(t *testing.T) {
	priceRepo := new(MockPriceSheetRepository)
	consumptionRepo := new(MockConsumptionRepository)
	apartmentRepo := new(MockApartmentRepository)
	service := NewUtilityService(priceRepo, consumptionRepo, apartmentRepo)

	apartment, _ := property.NewApartment("3A")
	row, err := utility.NewConsumption(apartment.GetID(), 6, 2026, decimal.NewFromInt(8), decimal.NewFromInt(30))
	require.NoError(t, err)

	consumptionRepo.On("FindByPeriod", mock.Anything, 6, 2026).Return([]utility.Consumption{*row}, nil)
	apartmentRepo.On("FindAll", mock.Anything, mock.Anything).Return([]property.Apartment{*apartment}, nil)

	responses, err := service.ListConsumption(context.Background(), 6, 2026)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "3A", responses[0].ApartmentNumber)
}
