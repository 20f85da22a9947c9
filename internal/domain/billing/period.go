package billing

import (
	"fmt"
	"time"

	"github.com/propman/backend/internal/domain/shared"
)

// Period identifies one billing month. It is always passed explicitly;
// nothing in this package reads the wall clock.
type Period struct {
	Month int
	Year  int
}

// NewPeriod creates a validated billing period
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// CurrentPeriod returns the period containing the given time
func CurrentPeriod(now time.Time) Period {
	return Period{Month: int(now.Month()), Year: now.Year()}
}

// Validate checks the period bounds
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return shared.NewDomainError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	if p.Year < 2000 || p.Year > 2200 {
		return shared.NewDomainError("INVALID_PERIOD", "Year out of range")
	}
	return nil
}

// Days returns the number of calendar days in the period's month
func (p Period) Days() int {
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDay returns midnight UTC on the first day of the month
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month
func (p Period) LastDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.Days(), 0, 0, 0, 0, time.UTC)
}

// String returns the period as YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
