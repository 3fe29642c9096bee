package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// ErrInvalidTiers is returned when rate tiers do not cover the projection horizon exactly once.
var ErrInvalidTiers = errors.New("invalid rate tiers")

// MaxAnnualRatePercent bounds configured rates so the annuity factor stays finite.
const MaxAnnualRatePercent = 100.0

// checkRate rejects negative, non-numeric and out-of-range annual rates.
func checkRate(rate float64) error {
	if !(rate >= 0 && rate <= MaxAnnualRatePercent) {
		return fmt.Errorf("annual rate %v%% outside 0..%v%%", rate, MaxAnnualRatePercent)
	}
	return nil
}

// RatePolicy maps a duration in years to a nominal annual rate in percent.
type RatePolicy interface {
	RateForDuration(years int) float64
}

// RateFunc adapter to allow ordinary functions to act as a RatePolicy.
type RateFunc func(years int) float64

func (f RateFunc) RateForDuration(years int) float64 { return f(years) }

// FixedRate applies the same annual rate to every duration.
type FixedRate float64

func (f FixedRate) RateForDuration(int) float64 { return float64(f) }

// TieredRate selects the annual rate from the tier containing the duration.
type TieredRate struct {
	tiers []domain.RateTier
}

// NewTieredRate validates that every duration in the projection horizon falls
// into exactly one tier.
func NewTieredRate(tiers []domain.RateTier) (*TieredRate, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers provided", ErrInvalidTiers)
	}
	for i, t := range tiers {
		if err := checkRate(t.AnnualRatePercent); err != nil {
			return nil, fmt.Errorf("%w: tier %d: %v", ErrInvalidTiers, i, err)
		}
		if t.MaxYears < t.MinYears {
			return nil, fmt.Errorf("%w: tier %d ends (%d) before it starts (%d)", ErrInvalidTiers, i, t.MaxYears, t.MinYears)
		}
	}
	for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
		matches := 0
		for _, t := range tiers {
			if t.Contains(years) {
				matches++
			}
		}
		switch {
		case matches == 0:
			return nil, fmt.Errorf("%w: no tier covers %d year(s)", ErrInvalidTiers, years)
		case matches > 1:
			return nil, fmt.Errorf("%w: %d tiers overlap at %d year(s)", ErrInvalidTiers, matches, years)
		}
	}
	return &TieredRate{tiers: append([]domain.RateTier(nil), tiers...)}, nil
}

// NewTwoTierRate applies below to durations shorter than boundaryYears and
// atOrAbove to the rest of the horizon.
func NewTwoTierRate(boundaryYears int, below, atOrAbove float64) (*TieredRate, error) {
	return NewTieredRate([]domain.RateTier{
		{MinYears: domain.MinDurationYears, MaxYears: boundaryYears, AnnualRatePercent: below},
		{MinYears: boundaryYears, MaxYears: domain.MaxDurationYears, MaxInclusive: true, AnnualRatePercent: atOrAbove},
	})
}

// RateForDuration returns the rate of the tier containing years, or 0 outside the horizon.
func (tr *TieredRate) RateForDuration(years int) float64 {
	for _, t := range tr.tiers {
		if t.Contains(years) {
			return t.AnnualRatePercent
		}
	}
	return 0
}

// Tiers returns a copy of the configured tiers.
func (tr *TieredRate) Tiers() []domain.RateTier {
	return append([]domain.RateTier(nil), tr.tiers...)
}
