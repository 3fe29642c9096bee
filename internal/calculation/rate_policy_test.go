package calculation

import (
	"testing"

	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRate(t *testing.T) {
	r := FixedRate(12.12)
	for years := 1; years <= 5; years++ {
		assert.Equal(t, 12.12, r.RateForDuration(years))
	}
}

func TestRateFuncAdapter(t *testing.T) {
	var p RatePolicy = RateFunc(func(years int) float64 { return float64(years) })
	assert.Equal(t, 4.0, p.RateForDuration(4))
}

// The deployed tiered calculator declares a higher long-term tier but both
// tiers carry 10%; this pins that behaviour until the rates are corrected.
func TestTwoTierRateObservedValues(t *testing.T) {
	r, err := NewTwoTierRate(TierBoundaryYears, ShortTermRate, LongTermRate)
	require.NoError(t, err)

	assert.Equal(t, 10.0, r.RateForDuration(1))
	assert.Equal(t, 10.0, r.RateForDuration(2))
	assert.Equal(t, 10.0, r.RateForDuration(3))
	assert.Equal(t, 10.0, r.RateForDuration(5))
}

func TestTwoTierRateBoundary(t *testing.T) {
	r, err := NewTwoTierRate(3, 10, 12)
	require.NoError(t, err)

	assert.Equal(t, 10.0, r.RateForDuration(2))
	assert.Equal(t, 12.0, r.RateForDuration(3))
	assert.Equal(t, 12.0, r.RateForDuration(5))
	assert.Equal(t, 0.0, r.RateForDuration(6), "outside the horizon")
}

func TestNewTieredRateValidation(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []domain.RateTier
		wantErr string
	}{
		{
			name:    "no tiers",
			tiers:   nil,
			wantErr: "no tiers provided",
		},
		{
			name: "gap at year 3",
			tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 3, AnnualRatePercent: 10},
				{MinYears: 4, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 11},
			},
			wantErr: "no tier covers 3 year(s)",
		},
		{
			name: "overlap at year 3",
			tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 3, MaxInclusive: true, AnnualRatePercent: 10},
				{MinYears: 3, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 11},
			},
			wantErr: "2 tiers overlap at 3 year(s)",
		},
		{
			name: "exclusive upper bound leaves year 5 uncovered",
			tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 5, AnnualRatePercent: 10},
			},
			wantErr: "no tier covers 5 year(s)",
		},
		{
			name: "negative rate",
			tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: -1},
			},
			wantErr: "tier 0: annual rate -1% outside 0..100%",
		},
		{
			name: "rate above bound",
			tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 3, AnnualRatePercent: 10},
				{MinYears: 3, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 1e7},
			},
			wantErr: "tier 1: annual rate",
		},
		{
			name: "inverted tier",
			tiers: []domain.RateTier{
				{MinYears: 5, MaxYears: 1, AnnualRatePercent: 10},
			},
			wantErr: "ends (1) before it starts (5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewTieredRate(tt.tiers)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTiers)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTieredRateTiersIsACopy(t *testing.T) {
	tiers := []domain.RateTier{{MinYears: 1, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 9}}
	r, err := NewTieredRate(tiers)
	require.NoError(t, err)

	tiers[0].AnnualRatePercent = 99
	got := r.Tiers()
	got[0].AnnualRatePercent = 42
	assert.Equal(t, 9.0, r.RateForDuration(2))
}
