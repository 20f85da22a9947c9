package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals aggregates payment state across billing records
type Totals struct {
	Billed      decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
	Records     int64
}

// BillingRecordRepository defines the interface for billing record persistence
type BillingRecordRepository interface {
	// FindByID finds a billing record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*BillingRecord, error)

	// FindByPeriod finds all records for a period
	FindByPeriod(ctx context.Context, period Period) ([]BillingRecord, error)

	// UpsertBatch writes a billing run's records in one transaction.
	// Conflicts on (tenant_id, month, year) replace the derived amounts
	// and leave paid_amount and payment_date untouched.
	UpsertBatch(ctx context.Context, records []BillingRecord) error

	// Save updates a single record (payment changes)
	Save(ctx context.Context, record *BillingRecord) error

	// SumTotals aggregates billed and paid amounts across all records
	SumTotals(ctx context.Context) (Totals, error)
}
