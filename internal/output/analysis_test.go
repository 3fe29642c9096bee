package output

import (
	"testing"

	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectAll(kind domain.ProjectionKind, amount float64) []*domain.ProjectionResult {
	var results []*domain.ProjectionResult
	for _, p := range calculation.Presets() {
		var r domain.ProjectionResult
		if kind == domain.KindMaturity {
			r = calculation.ProjectMaturity(amount, p)
		} else {
			r = calculation.ProjectRequiredDeposit(amount, p)
		}
		results = append(results, &r)
	}
	return results
}

func TestAnalyzePlans_MaturityPrefersHighestAmount(t *testing.T) {
	recs := AnalyzePlans(projectAll(domain.KindMaturity, 1000))
	require.Len(t, recs, 5)

	assert.Equal(t, 1, recs[0].DurationYears)
	assert.Equal(t, calculation.PresetMonthlyFixed, recs[0].Plan)
	assert.True(t, decimal.NewFromInt(12818).Equal(recs[0].Value))
	// runner-up is quarterly-fixed at 12809
	assert.True(t, decimal.NewFromInt(9).Equal(recs[0].Margin), recs[0].Margin.String())

	assert.Equal(t, calculation.PresetMonthlyFixed, recs[4].Plan)
	assert.True(t, decimal.NewFromInt(82760).Equal(recs[4].Value))
}

func TestAnalyzePlans_DepositPrefersLowestAmount(t *testing.T) {
	recs := AnalyzePlans(projectAll(domain.KindRequiredDeposit, 100000))
	require.Len(t, recs, 5)

	assert.Equal(t, calculation.PresetMonthlyFixed, recs[0].Plan)
	assert.True(t, decimal.NewFromInt(7802).Equal(recs[0].Value))
	assert.True(t, decimal.NewFromInt(5).Equal(recs[0].Margin))
	assert.True(t, decimal.NewFromInt(1209).Equal(recs[4].Value))
}

func TestAnalyzePlans_SkipsEmptyAndZeroRows(t *testing.T) {
	zero := calculation.ProjectRequiredDeposit(100000, &calculation.Plan{
		Name:        "no-interest",
		Compounding: domain.MonthlyCompounding,
		Rates:       calculation.FixedRate(0),
	})
	empty := calculation.ProjectRequiredDeposit(10, calculation.MonthlyFixedPlan())
	tiered := calculation.ProjectRequiredDeposit(100000, calculation.MonthlyTieredPlan())

	recs := AnalyzePlans([]*domain.ProjectionResult{&zero, &empty, nil, &tiered})
	require.Len(t, recs, 5)
	for _, rec := range recs {
		assert.Equal(t, calculation.PresetMonthlyTiered, rec.Plan)
		assert.True(t, rec.Margin.IsZero())
	}

	assert.Empty(t, AnalyzePlans(nil))
	assert.Empty(t, AnalyzePlans([]*domain.ProjectionResult{&empty}))
}
