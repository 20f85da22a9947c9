package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BillingRecord is one tenant's invoice for one period. Unique per
// (tenant, month, year); recomputing a period replaces the derived
// amounts and preserves the payment fields.
type BillingRecord struct {
	shared.BaseAggregateRoot
	TenantID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_billing_period,priority:1"`
	Month                 int             `gorm:"not null;uniqueIndex:idx_billing_period,priority:2"`
	Year                  int             `gorm:"not null;uniqueIndex:idx_billing_period,priority:3"`
	RentAmount            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	WaterIndividual       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	WaterShared           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ElectricityIndividual decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ElectricityShared     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GasAmount             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MaintenanceFee        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentDate           *time.Time      `gorm:"type:date"`
	DaysOccupied          int             `gorm:"not null"`
	TotalDaysInMonth      int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillingRecord) TableName() string {
	return "billing_records"
}

// Outstanding returns the unpaid balance on the record
func (r *BillingRecord) Outstanding() decimal.Decimal {
	return r.TotalAmount.Sub(r.PaidAmount)
}

// IsPaid returns true when the paid amount covers the total
func (r *BillingRecord) IsPaid() bool {
	return r.PaidAmount.GreaterThanOrEqual(r.TotalAmount)
}

// RecordPayment adds a payment to the record
func (r *BillingRecord) RecordPayment(amount decimal.Decimal, paidAt time.Time) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be positive")
	}
	r.PaidAmount = r.PaidAmount.Add(amount)
	r.PaymentDate = &paidAt
	return nil
}
