package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/propman/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUtilityTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PriceSheetModel{}, &models.ConsumptionModel{}))
	return db
}

func TestPriceSheetRepository_Upsert(t *testing.T) {
	db := setupUtilityTestDB(t)
	repo := NewGormPriceSheetRepository(db)
	ctx := context.Background()

	rates := utility.PriceSheetRates{
		WaterPricePerUnit:        decimal.NewFromFloat(2.00),
		ElectricityPricePerUnit:  decimal.NewFromFloat(0.50),
		GasPrice:                 decimal.NewFromInt(20),
		MonthlyMaintenanceFee:    decimal.NewFromInt(15),
		TotalBuildingWater:       decimal.NewFromInt(300),
		TotalBuildingElectricity: decimal.NewFromInt(150),
	}

	t.Run("not found before upsert", func(t *testing.T) {
		_, err := repo.FindByPeriod(ctx, 6, 2026)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("insert then read back", func(t *testing.T) {
		sheet, err := utility.NewPriceSheet(6, 2026, rates)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, sheet))

		found, err := repo.FindByPeriod(ctx, 6, 2026)
		require.NoError(t, err)
		assert.True(t, found.WaterPricePerUnit.Equal(rates.WaterPricePerUnit))
	})

	t.Run("second upsert replaces rates, single row", func(t *testing.T) {
		updated := rates
		updated.GasPrice = decimal.NewFromInt(25)
		sheet, err := utility.NewPriceSheet(6, 2026, updated)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, sheet))

		found, err := repo.FindByPeriod(ctx, 6, 2026)
		require.NoError(t, err)
		assert.True(t, found.GasPrice.Equal(decimal.NewFromInt(25)))

		var count int64
		require.NoError(t, db.Model(&models.PriceSheetModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestConsumptionRepository_Upsert(t *testing.T) {
	db := setupUtilityTestDB(t)
	repo := NewGormConsumptionRepository(db)
	ctx := context.Background()
	aptID := uuid.New()

	t.Run("insert and find by period", func(t *testing.T) {
		c, err := utility.NewConsumption(aptID, 6, 2026, decimal.NewFromInt(10), decimal.NewFromInt(40))
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, c))

		rows, err := repo.FindByPeriod(ctx, 6, 2026)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, aptID, rows[0].ApartmentID)
	})

	t.Run("upsert replaces readings for same key", func(t *testing.T) {
		c, err := utility.NewConsumption(aptID, 6, 2026, decimal.NewFromInt(12), decimal.NewFromInt(35))
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, c))

		found, err := repo.FindByApartmentAndPeriod(ctx, aptID, 6, 2026)
		require.NoError(t, err)
		assert.True(t, found.WaterConsumption.Equal(decimal.NewFromInt(12)))

		var count int64
		require.NoError(t, db.Model(&models.ConsumptionModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		_, err := repo.FindByApartmentAndPeriod(ctx, uuid.New(), 6, 2026)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("other periods are isolated", func(t *testing.T) {
		rows, err := repo.FindByPeriod(ctx, 7, 2026)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
