package domain

import (
	"github.com/shopspring/decimal"
)

// Projection horizon covered by every result.
const (
	MinDurationYears = 1
	MaxDurationYears = 5
)

// ProjectionKind identifies which side of the annuity equation a result solves for
type ProjectionKind string

const (
	KindMaturity        ProjectionKind = "maturity"
	KindRequiredDeposit ProjectionKind = "required_deposit"
)

// RoundingMode records how a row value was rounded to whole currency units
type RoundingMode string

const (
	RoundNearest RoundingMode = "nearest"
	RoundUp      RoundingMode = "up"
)

// ProjectionRow is a single duration's outcome.
type ProjectionRow struct {
	DurationYears     int             `json:"duration_years"`
	Value             decimal.Decimal `json:"value"`
	Rounding          RoundingMode    `json:"rounding"`
	AnnualRatePercent float64         `json:"annual_rate_percent"`
	Factor            float64         `json:"factor"`

	// Totals over the whole horizon; zero when the factor is degenerate
	TotalDeposited decimal.Decimal `json:"total_deposited"`
	InterestEarned decimal.Decimal `json:"interest_earned"`
}

// ProjectionResult holds one row per duration in increasing order, or no rows
// when the input amount was rejected.
type ProjectionResult struct {
	Kind        ProjectionKind  `json:"kind"`
	Plan        string          `json:"plan"`
	Compounding string          `json:"compounding"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Minimum     decimal.Decimal `json:"minimum_amount"`
	Rows        []ProjectionRow `json:"rows"`
}

// IsEmpty reports whether the result carries no rows.
func (r ProjectionResult) IsEmpty() bool {
	return len(r.Rows) == 0
}

// Row returns the row for the given duration.
func (r ProjectionResult) Row(years int) (ProjectionRow, bool) {
	for _, row := range r.Rows {
		if row.DurationYears == years {
			return row, true
		}
	}
	return ProjectionRow{}, false
}
