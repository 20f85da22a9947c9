package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/propman/backend/internal/domain/billing"
	"github.com/propman/backend/internal/domain/property"
	"github.com/propman/backend/internal/domain/shared"
	"github.com/propman/backend/internal/domain/shared/valueobject"
	"github.com/propman/backend/internal/domain/utility"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BillingService orchestrates billing runs, record listing, payment
// entry and the dashboard summary
type BillingService struct {
	billingRepo     billing.BillingRecordRepository
	tenantRepo      property.TenantRepository
	apartmentRepo   property.ApartmentRepository
	priceSheetRepo  utility.PriceSheetRepository
	consumptionRepo utility.ConsumptionRepository
	calculator      *billing.Calculator
	summaryCache    billing.SummaryCache
	logger          *zap.Logger
}

// NewBillingService creates a new BillingService
func NewBillingService(
	billingRepo billing.BillingRecordRepository,
	tenantRepo property.TenantRepository,
	apartmentRepo property.ApartmentRepository,
	priceSheetRepo utility.PriceSheetRepository,
	consumptionRepo utility.ConsumptionRepository,
	summaryCache billing.SummaryCache,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		billingRepo:     billingRepo,
		tenantRepo:      tenantRepo,
		apartmentRepo:   apartmentRepo,
		priceSheetRepo:  priceSheetRepo,
		consumptionRepo: consumptionRepo,
		calculator:      billing.NewCalculator(),
		summaryCache:    summaryCache,
		logger:          logger,
	}
}

// Run computes and persists one billing period. The run reads the
// price sheet, active tenants, consumption and the period's existing
// records, derives one invoice per tenant and writes them in a single
// batch upsert. Nothing is written when the price sheet is missing or
// no tenants are active. Re-running a period with unchanged inputs
// produces identical records; payments survive recomputes.
func (s *BillingService) Run(ctx context.Context, req RunRequest) (*RunResponse, error) {
	period, err := billing.NewPeriod(req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Billing run started", zap.String("period", period.String()))

	sheet, err := s.priceSheetRepo.FindByPeriod(ctx, period.Month, period.Year)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Billing run aborted, no price sheet", zap.String("period", period.String()))
			return nil, billing.ErrMissingPriceSheet
		}
		return nil, err
	}

	tenants, err := s.tenantRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		s.logger.Warn("Billing run aborted, no active tenants", zap.String("period", period.String()))
		return nil, billing.ErrNoActiveTenants
	}

	consumption, err := s.consumptionRepo.FindByPeriod(ctx, period.Month, period.Year)
	if err != nil {
		return nil, err
	}

	previous, err := s.billingRepo.FindByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	records, err := s.calculator.Calculate(billing.CalculatorInput{
		Period:      period,
		Tenants:     tenants,
		PriceSheet:  sheet,
		Consumption: consumption,
		Previous:    previous,
	})
	if err != nil {
		return nil, err
	}

	if err := s.billingRepo.UpsertBatch(ctx, records); err != nil {
		s.logger.Error("Billing run write failed",
			zap.String("period", period.String()),
			zap.Error(err))
		return nil, billing.ErrPersistenceFailed
	}

	if err := s.summaryCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate summary cache", zap.Error(err))
	}

	total := decimal.Zero
	for i := range records {
		total = total.Add(records[i].TotalAmount)
	}

	s.logger.Info("Billing run completed",
		zap.String("period", period.String()),
		zap.Int("tenants_billed", len(records)),
		zap.String("total_billed", total.StringFixed(2)))

	return &RunResponse{
		Month:         period.Month,
		Year:          period.Year,
		TenantsBilled: len(records),
		TotalBilled:   total.Round(2),
	}, nil
}

// ListRecords lists one period's invoices with tenant and apartment
// labels attached
func (s *BillingService) ListRecords(ctx context.Context, query RecordListQuery) ([]RecordResponse, error) {
	period, err := billing.NewPeriod(query.Month, query.Year)
	if err != nil {
		return nil, err
	}

	records, err := s.billingRepo.FindByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []RecordResponse{}, nil
	}

	tenants, err := s.tenantRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	apartments, err := s.apartmentRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	numberByApartment := make(map[uuid.UUID]string, len(apartments))
	for i := range apartments {
		numberByApartment[apartments[i].GetID()] = apartments[i].Number
	}
	tenantByID := make(map[uuid.UUID]*property.Tenant, len(tenants))
	for i := range tenants {
		tenantByID[tenants[i].GetID()] = &tenants[i]
	}

	responses := make([]RecordResponse, len(records))
	for i := range records {
		var name, number string
		if tenant, ok := tenantByID[records[i].TenantID]; ok {
			name = tenant.Name
			number = numberByApartment[tenant.ApartmentID]
		}
		responses[i] = ToRecordResponse(&records[i], name, number)
	}
	return responses, nil
}

// RecordPayment adds a payment to one billing record. The payment date
// defaults to today when the request omits it.
func (s *BillingService) RecordPayment(ctx context.Context, recordID uuid.UUID, req PaymentRequest) (*RecordResponse, error) {
	amount, err := valueobject.NewMoney(req.Amount, valueobject.USD)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be positive")
	}

	record, err := s.billingRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	paidAt := time.Now().UTC().Truncate(24 * time.Hour)
	if req.PaymentDate != nil {
		paidAt = *req.PaymentDate
	}

	if err := record.RecordPayment(amount.Amount(), paidAt); err != nil {
		return nil, err
	}

	if err := s.billingRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	if err := s.summaryCache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate summary cache", zap.Error(err))
	}

	s.logger.Info("Payment recorded",
		zap.String("record_id", recordID.String()),
		zap.String("amount", amount.StringFixed(2)))

	var name, number string
	if tenant, err := s.tenantRepo.FindByID(ctx, record.TenantID); err == nil {
		name = tenant.Name
		if apartment, err := s.apartmentRepo.FindByID(ctx, tenant.ApartmentID); err == nil {
			number = apartment.Number
		}
	}

	response := ToRecordResponse(record, name, number)
	return &response, nil
}

// GetSummary returns the dashboard totals, served from cache when one
// is warm
func (s *BillingService) GetSummary(ctx context.Context) (*SummaryResponse, error) {
	if cached, err := s.summaryCache.Get(ctx); err != nil {
		s.logger.Warn("Summary cache read failed", zap.Error(err))
	} else if cached != nil {
		response := ToSummaryResponse(cached)
		return &response, nil
	}

	apartments, err := s.apartmentRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	activeTenants, err := s.tenantRepo.CountByStatus(ctx, property.TenantStatusActive)
	if err != nil {
		return nil, err
	}
	totals, err := s.billingRepo.SumTotals(ctx)
	if err != nil {
		return nil, err
	}

	summary := &billing.Summary{
		Apartments:    apartments,
		ActiveTenants: activeTenants,
		TotalBilled:   totals.Billed,
		TotalRevenue:  totals.Paid,
		Outstanding:   totals.Outstanding,
	}

	if err := s.summaryCache.Set(ctx, summary); err != nil {
		s.logger.Warn("Summary cache write failed", zap.Error(err))
	}

	response := ToSummaryResponse(summary)
	return &response, nil
}
