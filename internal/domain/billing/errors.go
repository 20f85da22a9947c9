package billing

import "github.com/propman/backend/internal/domain/shared"

// Billing run errors. Both abort the run before anything is written.
var (
	ErrMissingPriceSheet = shared.NewDomainError("MISSING_PRICE_SHEET", "No utility price sheet exists for the requested period")
	ErrNoActiveTenants   = shared.NewDomainError("NO_ACTIVE_TENANTS", "No active tenants exist to bill")
	ErrPersistenceFailed = shared.NewDomainError("PERSISTENCE_FAILURE", "Failed to persist billing records")
)
