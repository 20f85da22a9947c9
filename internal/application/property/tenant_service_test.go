package property

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func testRent() decimal.Decimal {
	return decimal.NewFromInt(1000)
}

func TestTenantService_Create(t *testing.T) {
	t.Run("creates tenant in existing apartment", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewTenantService(tenantRepo, apartmentRepo)

		apartment, _ := property.NewApartment("3A")
		apartmentRepo.On("FindByID", mock.Anything, apartment.GetID()).Return(apartment, nil)
		tenantRepo.On("Save", mock.Anything, mock.AnythingOfType("*property.Tenant")).Return(nil)

		resp, err := service.Create(context.Background(), CreateTenantRequest{
			ApartmentID: apartment.GetID(),
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			MoveInDate:  testDate(2026, 3, 1),
			MonthlyRent: testRent(),
			Activate:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.Name)
		assert.Equal(t, string(property.TenantStatusActive), resp.Status)
		tenantRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown apartment", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewTenantService(tenantRepo, apartmentRepo)

		id := uuid.New()
		apartmentRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), CreateTenantRequest{
			ApartmentID: id,
			Name:        "Jane Doe",
			MoveInDate:  testDate(2026, 3, 1),
			MonthlyRent: testRent(),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		tenantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTenantService_List(t *testing.T) {
	t.Run("filters by status when given", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		apartmentRepo := new(MockApartmentRepository)
		service := NewTenantService(tenantRepo, apartmentRepo)

		tenant, _ := property.NewTenant(uuid.New(), "Jane", testDate(2026, 1, 1), testRent())
		tenantRepo.On("FindByStatus", mock.Anything, property.TenantStatusActive, mock.Anything).
			Return([]property.Tenant{*tenant}, nil)
		tenantRepo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

		responses, total, err := service.List(context.Background(), TenantListFilter{Status: "active"})
		require.NoError(t, err)
		assert.Len(t, responses, 1)
		assert.Equal(t, int64(1), total)
		tenantRepo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})
}

func TestTenantService_Deactivate(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	apartmentRepo := new(MockApartmentRepository)
	service := NewTenantService(tenantRepo, apartmentRepo)

	tenant, _ := property.NewTenant(uuid.New(), "Jane", testDate(2026, 1, 1), testRent())
	require.NoError(t, tenant.Activate())

	tenantRepo.On("FindByID", mock.Anything, tenant.GetID()).Return(tenant, nil)
	tenantRepo.On("Save", mock.Anything, tenant).Return(nil)

	moveOut := testDate(2026, 6, 15)
	resp, err := service.Deactivate(context.Background(), tenant.GetID(), DeactivateTenantRequest{MoveOutDate: moveOut})
	require.NoError(t, err)
	assert.Equal(t, string(property.TenantStatusInactive), resp.Status)
	require.NotNil(t, resp.MoveOutDate)
	assert.True(t, resp.MoveOutDate.Equal(moveOut))
}

func TestTenantService_Update(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	apartmentRepo := new(MockApartmentRepository)
	service := NewTenantService(tenantRepo, apartmentRepo)

	tenant, _ := property.NewTenant(uuid.New(), "Jane", testDate(2026, 1, 1), testRent())
	tenantRepo.On("FindByID", mock.Anything, tenant.GetID()).Return(tenant, nil)
	tenantRepo.On("Save", mock.Anything, tenant).Return(nil)

	newRent := decimal.NewFromInt(1200)
	moveOut := testDate(2026, 9, 30)
	resp, err := service.Update(context.Background(), tenant.GetID(), UpdateTenantRequest{
		MonthlyRent: &newRent,
		MoveOutDate: &moveOut,
	})
	require.NoError(t, err)
	assert.True(t, resp.MonthlyRent.Equal(newRent))
	require.NotNil(t, resp.MoveOutDate)
}
