package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
)

// ApartmentRepository defines the interface for apartment persistence
type ApartmentRepository interface {
	// FindByID finds an apartment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Apartment, error)

	// FindByNumber finds an apartment by its unit number
	FindByNumber(ctx context.Context, number string) (*Apartment, error)

	// FindAll finds all apartments matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Apartment, error)

	// Count returns the number of apartments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates an apartment
	Save(ctx context.Context, apartment *Apartment) error

	// Delete removes an apartment by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
