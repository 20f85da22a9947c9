package models

import (
	"time"

	"github.com/propman/backend/internal/domain/identity"
)

// OperatorModel is the persistence model for the Operator aggregate.
type OperatorModel struct {
	AggregateModel
	Username     string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string                  `gorm:"type:varchar(100);not null"`
	DisplayName  string                  `gorm:"type:varchar(100)"`
	Status       identity.OperatorStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (OperatorModel) TableName() string {
	return "operators"
}

// ToDomain converts the persistence model to a domain Operator
func (m *OperatorModel) ToDomain() *identity.Operator {
	return &identity.Operator{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		DisplayName:       m.DisplayName,
		Status:            m.Status,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain Operator
func (m *OperatorModel) FromDomain(o *identity.Operator) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.Username = o.Username
	m.PasswordHash = o.PasswordHash
	m.DisplayName = o.DisplayName
	m.Status = o.Status
	m.LastLoginAt = o.LastLoginAt
}

// OperatorModelFromDomain creates a new persistence model from a domain Operator
func OperatorModelFromDomain(o *identity.Operator) *OperatorModel {
	m := &OperatorModel{}
	m.FromDomain(o)
	return m
}
