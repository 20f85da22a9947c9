package property

import (
	"strings"

	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Apartment represents a rentable unit in the building.
// It is the aggregate root for apartment-related operations.
type Apartment struct {
	shared.BaseAggregateRoot
	Number       string           `gorm:"type:varchar(20);not null;uniqueIndex"`
	Floor        *int             `gorm:""`
	SquareMeters *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Notes        string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Apartment) TableName() string {
	return "apartments"
}

// NewApartment creates a new apartment with required fields
func NewApartment(number string) (*Apartment, error) {
	number = strings.TrimSpace(number)
	if err := validateApartmentNumber(number); err != nil {
		return nil, err
	}
	return &Apartment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
	}, nil
}

// Update updates the apartment's attributes
func (a *Apartment) Update(number string, floor *int, squareMeters *decimal.Decimal, notes string) error {
	number = strings.TrimSpace(number)
	if err := validateApartmentNumber(number); err != nil {
		return err
	}
	if squareMeters != nil && squareMeters.IsNegative() {
		return shared.NewDomainError("INVALID_SQUARE_METERS", "Square meters cannot be negative")
	}
	a.Number = number
	a.Floor = floor
	a.SquareMeters = squareMeters
	a.Notes = notes
	return nil
}

func validateApartmentNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_APARTMENT_NUMBER", "Apartment number cannot be empty")
	}
	if len(number) > 20 {
		return shared.NewDomainError("INVALID_APARTMENT_NUMBER", "Apartment number cannot exceed 20 characters")
	}
	return nil
}
