package integration

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/config"
	"github.com/rpgo/rd-calculator/internal/domain"
)

func values(r domain.ProjectionResult) []int64 {
	out := make([]int64, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, row.Value.IntPart())
	}
	return out
}

func TestEndToEndCalculation(t *testing.T) {
	for _, file := range []string{"../testdata/example_config.yaml", "../testdata/example_config.hcl"} {
		t.Run(file, func(t *testing.T) {
			cfg, err := config.NewInputParser().LoadFromFile(file)
			require.NoError(t, err)

			tiered, err := config.ResolvePlan(cfg, "monthly-tiered")
			require.NoError(t, err)
			quarterly, err := config.ResolvePlan(cfg, "quarterly-fixed")
			require.NoError(t, err)

			assert.Equal(t, []int64{12670, 26667, 42130, 59212, 78082}, values(calculation.ProjectMaturity(1000, tiered)))
			assert.Equal(t, []int64{12809, 27243, 43507, 61834, 82485}, values(calculation.ProjectMaturity(1000, quarterly)))
			assert.Equal(t, []int64{7893, 3750, 2374, 1689, 1281}, values(calculation.ProjectRequiredDeposit(100000, tiered)))
			assert.Equal(t, []int64{7807, 3671, 2299, 1618, 1213}, values(calculation.ProjectRequiredDeposit(100000, quarterly)))
		})
	}
}

func TestConfiguredPlansMatchPresets(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	plans, err := config.Plans(cfg)
	require.NoError(t, err)

	for _, p := range plans {
		preset, err := calculation.PresetByName(p.Name)
		require.NoError(t, err)
		for _, amount := range []float64{1000, 2500, 12345.67} {
			assert.Equal(t, values(calculation.ProjectMaturity(amount, preset)), values(calculation.ProjectMaturity(amount, p)), p.Name)
			assert.Equal(t, values(calculation.ProjectRequiredDeposit(amount*40, preset)), values(calculation.ProjectRequiredDeposit(amount*40, p)), p.Name)
		}
	}
}

func TestRoundTripWithinOneUnit(t *testing.T) {
	for _, p := range calculation.Presets() {
		for _, target := range []float64{1000, 100000, 500000, 2500000} {
			deposits := calculation.ProjectRequiredDeposit(target, p)
			require.Len(t, deposits.Rows, 5)
			for _, row := range deposits.Rows {
				deposit := row.Value.InexactFloat64()
				if deposit < p.Minimum() {
					continue
				}
				maturity := calculation.ProjectMaturity(deposit, p)
				got, ok := maturity.Row(row.DurationYears)
				require.True(t, ok)
				assert.True(t, got.Value.GreaterThanOrEqual(decimal.NewFromFloat(math.Round(target)-1)),
					"%s %dy: deposit %v matures to %v, target %v", p.Name, row.DurationYears, deposit, got.Value, target)
			}
		}
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	require.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Plans[1].Tiers = []domain.RateTier{{MinYears: 1, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 7}}
	err = parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}
