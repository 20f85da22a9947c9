package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/billing"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// billingDerivedColumns are the columns a recompute may replace. The
// payment columns are deliberately absent so a re-run never clobbers
// recorded payments.
var billingDerivedColumns = []string{
	"rent_amount",
	"water_individual",
	"water_shared",
	"electricity_individual",
	"electricity_shared",
	"gas_amount",
	"maintenance_fee",
	"total_amount",
	"days_occupied",
	"total_days_in_month",
	"updated_at",
}

// GormBillingRecordRepository implements BillingRecordRepository using GORM
type GormBillingRecordRepository struct {
	db *gorm.DB
}

// NewGormBillingRecordRepository creates a new GormBillingRecordRepository
func NewGormBillingRecordRepository(db *gorm.DB) *GormBillingRecordRepository {
	return &GormBillingRecordRepository{db: db}
}

// FindByID finds a billing record by its ID
func (r *GormBillingRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.BillingRecord, error) {
	var model models.BillingRecordModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPeriod finds all records for a period
func (r *GormBillingRecordRepository) FindByPeriod(ctx context.Context, period billing.Period) ([]billing.BillingRecord, error) {
	var recordModels []models.BillingRecordModel
	if err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", period.Month, period.Year).
		Order("created_at ASC").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]billing.BillingRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// UpsertBatch writes a billing run's records in one transaction.
// Conflicts on (tenant_id, month, year) replace the derived columns only.
func (r *GormBillingRecordRepository) UpsertBatch(ctx context.Context, records []billing.BillingRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*models.BillingRecordModel, len(records))
	for i := range records {
		recordModels[i] = models.BillingRecordModelFromDomain(&records[i])
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns(billingDerivedColumns),
		}).Create(&recordModels).Error
	})
}

// Save updates a single record
func (r *GormBillingRecordRepository) Save(ctx context.Context, record *billing.BillingRecord) error {
	model := models.BillingRecordModelFromDomain(record)
	return r.db.WithContext(ctx).Save(model).Error
}

// SumTotals aggregates billed and paid amounts across all records
func (r *GormBillingRecordRepository) SumTotals(ctx context.Context) (billing.Totals, error) {
	var row struct {
		Billed  decimal.Decimal
		Paid    decimal.Decimal
		Records int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.BillingRecordModel{}).
		Select("COALESCE(SUM(total_amount), 0) AS billed, COALESCE(SUM(paid_amount), 0) AS paid, COUNT(*) AS records").
		Scan(&row).Error; err != nil {
		return billing.Totals{}, err
	}

	return billing.Totals{
		Billed:      row.Billed,
		Paid:        row.Paid,
		Outstanding: row.Billed.Sub(row.Paid),
		Records:     row.Records,
	}, nil
}
