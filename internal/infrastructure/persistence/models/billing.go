package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// BillingRecordModel is the persistence model for the BillingRecord aggregate.
type BillingRecordModel struct {
	AggregateModel
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
func (BillingRecordModel) TableName() string {
	return "billing_records"
}

// ToDomain converts the persistence model to a domain BillingRecord
func (m *BillingRecordModel) ToDomain() *billing.BillingRecord {
	return &billing.BillingRecord{
		BaseAggregateRoot:     m.ToDomainAggregateRoot(),
		TenantID:              m.TenantID,
		Month:                 m.Month,
		Year:                  m.Year,
		RentAmount:            m.RentAmount,
		WaterIndividual:       m.WaterIndividual,
		WaterShared:           m.WaterShared,
		ElectricityIndividual: m.ElectricityIndividual,
		ElectricityShared:     m.ElectricityShared,
		GasAmount:             m.GasAmount,
		MaintenanceFee:        m.MaintenanceFee,
		TotalAmount:           m.TotalAmount,
		PaidAmount:            m.PaidAmount,
		PaymentDate:           m.PaymentDate,
		DaysOccupied:          m.DaysOccupied,
		TotalDaysInMonth:      m.TotalDaysInMonth,
	}
}

// FromDomain populates the persistence model from a domain BillingRecord
func (m *BillingRecordModel) FromDomain(r *billing.BillingRecord) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.TenantID = r.TenantID
	m.Month = r.Month
	m.Year = r.Year
	m.RentAmount = r.RentAmount
	m.WaterIndividual = r.WaterIndividual
	m.WaterShared = r.WaterShared
	m.ElectricityIndividual = r.ElectricityIndividual
	m.ElectricityShared = r.ElectricityShared
	m.GasAmount = r.GasAmount
	m.MaintenanceFee = r.MaintenanceFee
	m.TotalAmount = r.TotalAmount
	m.PaidAmount = r.PaidAmount
	m.PaymentDate = r.PaymentDate
	m.DaysOccupied = r.DaysOccupied
	m.TotalDaysInMonth = r.TotalDaysInMonth
}

// BillingRecordModelFromDomain creates a new persistence model from a domain BillingRecord
func BillingRecordModelFromDomain(r *billing.BillingRecord) *BillingRecordModel {
	m := &BillingRecordModel{}
	m.FromDomain(r)
	return m
}
