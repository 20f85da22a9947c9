package property

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApartmentService_Create(t *testing.T) {
	t.Run("creates apartment with free number", func(t *testing.T) {
		apartmentRepo := new(MockApartmentRepository)
		tenantRepo := new(MockTenantRepository)
		service := NewApartmentService(apartmentRepo, tenantRepo)

		apartmentRepo.On("FindByNumber", mock.Anything, "3A").Return(nil, shared.ErrNotFound)
		apartmentRepo.On("Save", mock.Anything, mock.AnythingOfType("*property.Apartment")).Return(nil)

		resp, err := service.Create(context.Background(), CreateApartmentRequest{Number: "3A"})
		require.NoError(t, err)
		assert.Equal(t, "3A", resp.Number)
		apartmentRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate number", func(t *testing.T) {
		apartmentRepo := new(MockApartmentRepository)
		tenantRepo := new(MockTenantRepository)
		service := NewApartmentService(apartmentRepo, tenantRepo)

		existing, _ := property.NewApartment("3A")
		apartmentRepo.On("FindByNumber", mock.Anything, "3A").Return(existing, nil)

		_, err := service.Create(context.Background(), CreateApartmentRequest{Number: "3A"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		apartmentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestApartmentService_Delete(t *testing.T) {
	t.Run("refuses apartment with tenants", func(t *testing.T) {
		apartmentRepo := new(MockApartmentRepository)
		tenantRepo := new(MockTenantRepository)
		service := NewApartmentService(apartmentRepo, tenantRepo)

		id := uuid.New()
		tenant, _ := property.NewTenant(id, "Jane", testDate(2026, 1, 1), testRent())
		tenantRepo.On("FindByApartment", mock.Anything, id).Return([]property.Tenant{*tenant}, nil)

		err := service.Delete(context.Background(), id)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		apartmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes empty apartment", func(t *testing.T) {
		apartmentRepo := new(MockApartmentRepository)
		tenantRepo := new(MockTenantRepository)
		service := NewApartmentService(apartmentRepo, tenantRepo)

		id := uuid.New()
		tenantRepo.On("FindByApartment", mock.Anything, id).Return([]property.Tenant{}, nil)
		apartmentRepo.On("Delete", mock.Anything, id).Return(nil)

		assert.NoError(t, service.Delete(context.Background(), id))
		apartmentRepo.AssertExpectations(t)
	})
}

func TestApartmentService_List(t *testing.T) {
	apartmentRepo := new(MockApartmentRepository)
	tenantRepo := new(MockTenantRepository)
	service := NewApartmentService(apartmentRepo, tenantRepo)

	a, _ := property.NewApartment("1A")
	b, _ := property.NewApartment("1B")

	apartmentRepo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 10 && f.Search == "1"
	})).Return([]property.Apartment{*a, *b}, nil)
	apartmentRepo.On("Count", mock.Anything, mock.Anything).Return(int64(12), nil)

	responses, total, err := service.List(context.Background(), ApartmentListFilter{
		Search: "1", Page: 2, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, int64(12), total)
}
