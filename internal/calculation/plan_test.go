package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetByNameResolvesAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", PresetMonthlyTiered},
		{"default", PresetMonthlyTiered},
		{"Tiered", PresetMonthlyTiered},
		{" monthly ", PresetMonthlyFixed},
		{"fixed", PresetMonthlyFixed},
		{"QUARTERLY", PresetQuarterlyFixed},
		{"quarterly-fixed", PresetQuarterlyFixed},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := PresetByName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Name)
		})
	}
}

func TestPresetByNameUnknown(t *testing.T) {
	p, err := PresetByName("weekly")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Contains(t, err.Error(), "monthly-fixed")
}

func TestPresetsAreSortedAndIndependent(t *testing.T) {
	plans := Presets()
	require.Len(t, plans, 3)
	assert.Equal(t, []string{PresetMonthlyFixed, PresetMonthlyTiered, PresetQuarterlyFixed}, PresetNames())
	for i, p := range plans {
		assert.Equal(t, PresetNames()[i], p.Name)
		assert.Equal(t, domain.DefaultMinimumAmount, p.MinimumAmount)
	}

	a, _ := PresetByName(PresetMonthlyFixed)
	a.MinimumAmount = 5
	b, _ := PresetByName(PresetMonthlyFixed)
	assert.Equal(t, domain.DefaultMinimumAmount, b.MinimumAmount)
}

func TestPresetCompounding(t *testing.T) {
	assert.Equal(t, domain.MonthlyCompounding, MonthlyTieredPlan().Compounding)
	assert.Equal(t, domain.MonthlyCompounding, MonthlyFixedPlan().Compounding)
	assert.Equal(t, domain.QuarterlyCompounding, QuarterlyFixedPlan().Compounding)
	assert.Equal(t, 12.12, QuarterlyFixedPlan().Rates.RateForDuration(4))
}

func TestNewPlanFromConfig(t *testing.T) {
	fixed := 9.5
	huge := 1e7
	negative := -0.5
	notANumber := math.NaN()
	tests := []struct {
		name    string
		cfg     domain.PlanConfig
		wantErr string
		check   func(t *testing.T, p *Plan)
	}{
		{
			name: "fixed rate quarterly",
			cfg:  domain.PlanConfig{Name: "q", Compounding: "Quarterly", FixedRate: &fixed},
			check: func(t *testing.T, p *Plan) {
				assert.Equal(t, domain.QuarterlyCompounding, p.Compounding)
				assert.Equal(t, 9.5, p.Rates.RateForDuration(1))
				assert.Equal(t, domain.DefaultMinimumAmount, p.MinimumAmount)
			},
		},
		{
			name: "tiered with custom minimum",
			cfg: domain.PlanConfig{
				Name:          "t",
				Compounding:   "monthly",
				MinimumAmount: 500,
				Tiers: []domain.RateTier{
					{MinYears: 1, MaxYears: 3, AnnualRatePercent: 10},
					{MinYears: 3, MaxYears: 5, MaxInclusive: true, AnnualRatePercent: 12},
				},
			},
			check: func(t *testing.T, p *Plan) {
				assert.Equal(t, 500.0, p.MinimumAmount)
				assert.Equal(t, 10.0, p.Rates.RateForDuration(2))
				assert.Equal(t, 12.0, p.Rates.RateForDuration(3))
			},
		},
		{
			name: "padded compounding",
			cfg:  domain.PlanConfig{Name: "p", Compounding: " Monthly ", FixedRate: &fixed},
			check: func(t *testing.T, p *Plan) {
				assert.Equal(t, domain.MonthlyCompounding, p.Compounding)
			},
		},
		{
			name:    "fixed rate too large",
			cfg:     domain.PlanConfig{Name: "x", FixedRate: &huge},
			wantErr: "fixed rate: annual rate 1e+07% outside 0..100%",
		},
		{
			name:    "negative fixed rate",
			cfg:     domain.PlanConfig{Name: "x", FixedRate: &negative},
			wantErr: "outside 0..100%",
		},
		{
			name:    "fixed rate not a number",
			cfg:     domain.PlanConfig{Name: "x", FixedRate: &notANumber},
			wantErr: "outside 0..100%",
		},
		{
			name:    "missing name",
			cfg:     domain.PlanConfig{FixedRate: &fixed},
			wantErr: "plan name is required",
		},
		{
			name:    "unknown compounding",
			cfg:     domain.PlanConfig{Name: "x", Compounding: "daily", FixedRate: &fixed},
			wantErr: "unsupported compounding",
		},
		{
			name:    "no rates",
			cfg:     domain.PlanConfig{Name: "x", Compounding: "monthly"},
			wantErr: "either fixed_rate_percent or tiers is required",
		},
		{
			name: "bad tiers",
			cfg: domain.PlanConfig{Name: "x", Tiers: []domain.RateTier{
				{MinYears: 1, MaxYears: 2, AnnualRatePercent: 10},
			}},
			wantErr: "no tier covers 2 year(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlanFromConfig(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestPlanConfigForRoundTrip(t *testing.T) {
	for _, preset := range Presets() {
		pc := PlanConfigFor(preset)
		rebuilt, err := NewPlanFromConfig(pc)
		require.NoError(t, err, preset.Name)
		for years := 1; years <= 5; years++ {
			assert.Equal(t, preset.Rates.RateForDuration(years), rebuilt.Rates.RateForDuration(years))
		}
		assert.Equal(t, preset.Compounding, rebuilt.Compounding)
	}

	custom := &Plan{Name: "f", Compounding: domain.MonthlyCompounding, Rates: RateFunc(func(y int) float64 { return float64(y) })}
	pc := PlanConfigFor(custom)
	require.Len(t, pc.Tiers, 5)
	rebuilt, err := NewPlanFromConfig(pc)
	require.NoError(t, err)
	assert.Equal(t, 4.0, rebuilt.Rates.RateForDuration(4))
}
