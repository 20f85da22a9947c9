package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/shared"
)

// TenantRepository defines the interface for tenant persistence
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// FindByStatus finds tenants with the given status
	FindByStatus(ctx context.Context, status TenantStatus, filter shared.Filter) ([]Tenant, error)

	// FindActive finds all active tenants
	FindActive(ctx context.Context) ([]Tenant, error)

	// FindByApartment finds tenants assigned to an apartment
	FindByApartment(ctx context.Context, apartmentID uuid.UUID) ([]Tenant, error)

	// Count returns the number of tenants matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus returns the number of tenants with the given status
	CountByStatus(ctx context.Context, status TenantStatus) (int64, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// Delete removes a tenant by ID
	Delete(ctx context.Context, id uuid.UUID) error
}
