package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/propman/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPriceSheetRepository implements PriceSheetRepository using GORM
type GormPriceSheetRepository struct {
	db *gorm.DB
}

// NewGormPriceSheetRepository creates a new GormPriceSheetRepository
func NewGormPriceSheetRepository(db *gorm.DB) *GormPriceSheetRepository {
	return &GormPriceSheetRepository{db: db}
}

// FindByPeriod finds the price sheet for a period
func (r *GormPriceSheetRepository) FindByPeriod(ctx context.Context, month, year int) (*utility.PriceSheet, error) {
	var model models.PriceSheetModel
	if err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert creates or replaces the sheet for its (month, year)
func (r *GormPriceSheetRepository) Upsert(ctx context.Context, sheet *utility.PriceSheet) error {
	model := models.PriceSheetModelFromDomain(sheet)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"water_price_per_unit",
			"electricity_price_per_unit",
			"gas_price",
			"monthly_maintenance_fee",
			"total_building_water",
			"total_building_electricity",
			"updated_at",
		}),
	}).Create(model).Error
}

// GormConsumptionRepository implements ConsumptionRepository using GORM
type GormConsumptionRepository struct {
	db *gorm.DB
}

// NewGormConsumptionRepository creates a new GormConsumptionRepository
func NewGormConsumptionRepository(db *gorm.DB) *GormConsumptionRepository {
	return &GormConsumptionRepository{db: db}
}

// FindByPeriod finds all consumption rows for a period
func (r *GormConsumptionRepository) FindByPeriod(ctx context.Context, month, year int) ([]utility.Consumption, error) {
	var consumptionModels []models.ConsumptionModel
	if err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("created_at ASC").
		Find(&consumptionModels).Error; err != nil {
		return nil, err
	}

	rows := make([]utility.Consumption, len(consumptionModels))
	for i, model := range consumptionModels {
		rows[i] = *model.ToDomain()
	}
	return rows, nil
}

// FindByApartmentAndPeriod finds one apartment's row for a period
func (r *GormConsumptionRepository) FindByApartmentAndPeriod(ctx context.Context, apartmentID uuid.UUID, month, year int) (*utility.Consumption, error) {
	var model models.ConsumptionModel
	if err := r.db.WithContext(ctx).
		Where("apartment_id = ? AND month = ? AND year = ?", apartmentID, month, year).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert creates or replaces the row for its (apartment, month, year)
func (r *GormConsumptionRepository) Upsert(ctx context.Context, consumption *utility.Consumption) error {
	model := models.ConsumptionModelFromDomain(consumption)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "apartment_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"water_consumption",
			"electricity_consumption",
			"updated_at",
		}),
	}).Create(model).Error
}
