package billing

import (
	"context"

	"github.com/shopspring/decimal"
)

// Summary is the dashboard read model aggregated over the whole ledger
type Summary struct {
	Apartments    int64           `json:"apartments"`
	ActiveTenants int64           `json:"active_tenants"`
	TotalBilled   decimal.Decimal `json:"total_billed"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// SummaryCache caches the dashboard summary between billing mutations
type SummaryCache interface {
	// Get returns the cached summary, or (nil, nil) on a miss
	Get(ctx context.Context) (*Summary, error)

	// Set stores the summary
	Set(ctx context.Context, summary *Summary) error

	// Invalidate drops the cached summary
	Invalidate(ctx context.Context) error
}
