package property

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TenantStatus represents the occupancy status of a tenant
type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
	TenantStatusPending  TenantStatus = "pending" // Lease signed, not yet moved in
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Tenant represents a person renting an apartment.
// It is the aggregate root for tenant-related operations.
type Tenant struct {
	shared.BaseAggregateRoot
	ApartmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Email       string          `gorm:"type:varchar(200);index"`
	Phone       string          `gorm:"type:varchar(50)"`
	MoveInDate  time.Time       `gorm:"type:date;not null"`
	MoveOutDate *time.Time      `gorm:"type:date"`
	MonthlyRent decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status      TenantStatus    `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (Tenant) TableName() string {
	return "tenants"
}

// NewTenant creates a new tenant with required fields
func NewTenant(apartmentID uuid.UUID, name string, moveInDate time.Time, monthlyRent decimal.Decimal) (*Tenant, error) {
	if apartmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_APARTMENT", "Apartment ID is required")
	}
	if err := validateTenantName(name); err != nil {
		return nil, err
	}
	if err := validateMonthlyRent(monthlyRent); err != nil {
		return nil, err
	}
	return &Tenant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ApartmentID:       apartmentID,
		Name:              strings.TrimSpace(name),
		MoveInDate:        moveInDate,
		MonthlyRent:       monthlyRent,
		Status:            TenantStatusPending,
	}, nil
}

// Update updates the tenant's basic information
func (t *Tenant) Update(name, email, phone string, monthlyRent decimal.Decimal) error {
	if err := validateTenantName(name); err != nil {
		return err
	}
	if err := validateMonthlyRent(monthlyRent); err != nil {
		return err
	}
	if email != "" && !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	t.Name = strings.TrimSpace(name)
	t.Email = email
	t.Phone = phone
	t.MonthlyRent = monthlyRent
	return nil
}

// Activate marks the tenant as actively occupying the apartment
func (t *Tenant) Activate() error {
	if t.Status == TenantStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Tenant is already active")
	}
	t.Status = TenantStatusActive
	return nil
}

// Deactivate marks the tenant as moved out as of the given date
func (t *Tenant) Deactivate(moveOutDate time.Time) error {
	if t.Status == TenantStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Tenant is already inactive")
	}
	if moveOutDate.Before(t.MoveInDate) {
		return shared.NewDomainError("INVALID_MOVE_OUT", "Move-out date cannot be before move-in date")
	}
	t.Status = TenantStatusInactive
	t.MoveOutDate = &moveOutDate
	return nil
}

// ScheduleMoveOut sets the move-out date without changing the status.
// The tenant keeps billing as active until the month of the move-out date.
func (t *Tenant) ScheduleMoveOut(moveOutDate time.Time) error {
	if moveOutDate.Before(t.MoveInDate) {
		return shared.NewDomainError("INVALID_MOVE_OUT", "Move-out date cannot be before move-in date")
	}
	t.MoveOutDate = &moveOutDate
	return nil
}

// ClearMoveOut removes a previously scheduled move-out date
func (t *Tenant) ClearMoveOut() {
	t.MoveOutDate = nil
}

// IsActive returns true if the tenant currently occupies an apartment
func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}

func validateTenantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Tenant name cannot exceed 200 characters")
	}
	return nil
}

func validateMonthlyRent(rent decimal.Decimal) error {
	if rent.IsNegative() {
		return shared.NewDomainError("INVALID_RENT", "Monthly rent cannot be negative")
	}
	return nil
}

// ValidTenantStatus reports whether s is a recognized tenant status
func ValidTenantStatus(s TenantStatus) bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusPending:
		return true
	}
	return false
}
