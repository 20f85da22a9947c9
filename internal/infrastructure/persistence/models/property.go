package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/shopspring/decimal"
)

// ApartmentModel is the persistence model for the Apartment aggregate.
type ApartmentModel struct {
	AggregateModel
	Number       string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	Floor        *int             `gorm:""`
	SquareMeters *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes        string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ApartmentModel) TableName() string {
	return "apartments"
}

// ToDomain converts the persistence model to a domain Apartment
func (m *ApartmentModel) ToDomain() *property.Apartment {
	return &property.Apartment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		Floor:             m.Floor,
		SquareMeters:      m.SquareMeters,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Apartment
func (m *ApartmentModel) FromDomain(a *property.Apartment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Number = a.Number
	m.Floor = a.Floor
	m.SquareMeters = a.SquareMeters
	m.Notes = a.Notes
}

// ApartmentModelFromDomain creates a new persistence model from a domain Apartment
func ApartmentModelFromDomain(a *property.Apartment) *ApartmentModel {
	m := &ApartmentModel{}
	m.FromDomain(a)
	return m
}

// TenantModel is the persistence model for the Tenant aggregate.
type TenantModel struct {
	AggregateModel
	ApartmentID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Email       string                `gorm:"type:varchar(200);index"`
	Phone       string                `gorm:"type:varchar(50)"`
	MoveInDate  time.Time             `gorm:"type:date;not null"`
	MoveOutDate *time.Time            `gorm:"type:date"`
	MonthlyRent decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Status      property.TenantStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return "tenants"
}

// ToDomain converts the persistence model to a domain Tenant
func (m *TenantModel) ToDomain() *property.Tenant {
	return &property.Tenant{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ApartmentID:       m.ApartmentID,
		Name:              m.Name,
		Email:             m.Email,
		Phone:             m.Phone,
		MoveInDate:        m.MoveInDate,
		MoveOutDate:       m.MoveOutDate,
		MonthlyRent:       m.MonthlyRent,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Tenant
func (m *TenantModel) FromDomain(t *property.Tenant) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.ApartmentID = t.ApartmentID
	m.Name = t.Name
	m.Email = t.Email
	m.Phone = t.Phone
	m.MoveInDate = t.MoveInDate
	m.MoveOutDate = t.MoveOutDate
	m.MonthlyRent = t.MonthlyRent
	m.Status = t.Status
}

// TenantModelFromDomain creates a new persistence model from a domain Tenant
func TenantModelFromDomain(t *property.Tenant) *TenantModel {
	m := &TenantModel{}
	m.FromDomain(t)
	return m
}
