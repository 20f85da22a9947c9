package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
)

// TenantService handles tenant-related business operations
type TenantService struct {
	tenantRepo    property.TenantRepository
	apartmentRepo property.ApartmentRepository
}

// NewTenantService creates a new TenantService
func NewTenantService(tenantRepo property.TenantRepository, apartmentRepo property.ApartmentRepository) *TenantService {
	return &TenantService{
		tenantRepo:    tenantRepo,
		apartmentRepo: apartmentRepo,
	}
}

// Create creates a new tenant assigned to an existing apartment
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	// The apartment must exist
	if _, err := s.apartmentRepo.FindByID(ctx, req.ApartmentID); err != nil {
		return nil, err
	}

	tenant, err := property.NewTenant(req.ApartmentID, req.Name, req.MoveInDate, req.MonthlyRent)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" {
		if err := tenant.Update(req.Name, req.Email, req.Phone, req.MonthlyRent); err != nil {
			return nil, err
		}
	}

	if req.Activate {
		if err := tenant.Activate(); err != nil {
			return nil, err
		}
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// List retrieves tenants with filtering and pagination
func (s *TenantService) List(ctx context.Context, filter TenantListFilter) ([]TenantResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	var (
		tenants []property.Tenant
		err     error
	)
	if filter.Status != "" {
		tenants, err = s.tenantRepo.FindByStatus(ctx, property.TenantStatus(filter.Status), domainFilter)
	} else {
		tenants, err = s.tenantRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tenantRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToTenantResponses(tenants), total, nil
}

// Update updates a tenant's details
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := tenant.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := tenant.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := tenant.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	rent := tenant.MonthlyRent
	if req.MonthlyRent != nil {
		rent = *req.MonthlyRent
	}

	if err := tenant.Update(name, email, phone, rent); err != nil {
		return nil, err
	}

	if req.MoveOutDate != nil {
		if err := tenant.ScheduleMoveOut(*req.MoveOutDate); err != nil {
			return nil, err
		}
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// Activate marks a tenant as occupying their apartment
func (s *TenantService) Activate(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Activate(); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// Deactivate marks a tenant as moved out as of the given date
func (s *TenantService) Deactivate(ctx context.Context, id uuid.UUID, req DeactivateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tenant.Deactivate(req.MoveOutDate); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	response := ToTenantResponse(tenant)
	return &response, nil
}

// Delete removes a tenant
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tenantRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tenantRepo.Delete(ctx, id)
}
