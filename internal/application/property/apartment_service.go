package property

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
)

// ApartmentService handles apartment-related business operations
type ApartmentService struct {
	apartmentRepo property.ApartmentRepository
	tenantRepo    property.TenantRepository
}

// NewApartmentService creates a new ApartmentService
func NewApartmentService(apartmentRepo property.ApartmentRepository, tenantRepo property.TenantRepository) *ApartmentService {
	return &ApartmentService{
		apartmentRepo: apartmentRepo,
		tenantRepo:    tenantRepo,
	}
}

// Create creates a new apartment
func (s *ApartmentService) Create(ctx context.Context, req CreateApartmentRequest) (*ApartmentResponse, error) {
	// Check if the unit number is already taken
	_, err := s.apartmentRepo.FindByNumber(ctx, req.Number)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Apartment with this number already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	apartment, err := property.NewApartment(req.Number)
	if err != nil {
		return nil, err
	}

	if req.Floor != nil || req.SquareMeters != nil || req.Notes != "" {
		if err := apartment.Update(req.Number, req.Floor, req.SquareMeters, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// GetByID retrieves an apartment by ID
func (s *ApartmentService) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// List retrieves apartments with filtering and pagination
func (s *ApartmentService) List(ctx context.Context, filter ApartmentListFilter) ([]ApartmentResponse, int64, error) {
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

	apartments, err := s.apartmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.apartmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToApartmentResponses(apartments), total, nil
}

// Update updates an apartment
func (s *ApartmentService) Update(ctx context.Context, id uuid.UUID, req UpdateApartmentRequest) (*ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	number := apartment.Number
	if req.Number != nil && *req.Number != apartment.Number {
		// The new unit number must still be unique
		_, err := s.apartmentRepo.FindByNumber(ctx, *req.Number)
		if err == nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Apartment with this number already exists")
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		number = *req.Number
	}

	floor := apartment.Floor
	if req.Floor != nil {
		floor = req.Floor
	}
	squareMeters := apartment.SquareMeters
	if req.SquareMeters != nil {
		squareMeters = req.SquareMeters
	}
	notes := apartment.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := apartment.Update(number, floor, squareMeters, notes); err != nil {
		return nil, err
	}

	if err := s.apartmentRepo.Save(ctx, apartment); err != nil {
		return nil, err
	}

	response := ToApartmentResponse(apartment)
	return &response, nil
}

// Delete removes an apartment. Apartments with tenants on record
// cannot be deleted.
func (s *ApartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	tenants, err := s.tenantRepo.FindByApartment(ctx, id)
	if err != nil {
		return err
	}
	if len(tenants) > 0 {
		return shared.NewDomainError("INVALID_STATE", "Apartment has tenants and cannot be deleted")
	}

	return s.apartmentRepo.Delete(ctx, id)
}
