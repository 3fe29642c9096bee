package calculation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// ErrUnknownPreset is returned when a plan name does not match any preset.
var ErrUnknownPreset = errors.New("unknown plan preset")

// Preset names.
const (
	PresetMonthlyTiered  = "monthly-tiered"
	PresetMonthlyFixed   = "monthly-fixed"
	PresetQuarterlyFixed = "quarterly-fixed"
)

// Rates observed in the deployed calculators. The tiered plan declares a
// higher long-term tier but both tiers carry 10%.
const (
	TierBoundaryYears = 3
	ShortTermRate     = 10.0
	LongTermRate      = 10.00
	StandardFixedRate = 12.12
)

const (
	monthlyTieredDesc  = "Monthly compounding, 10% below 3 years and 10.00% from 3 years"
	monthlyFixedDesc   = "Monthly compounding, fixed 12.12%"
	quarterlyFixedDesc = "Quarterly compounding, fixed 12.12%"
)

// Plan selects the compounding preset and rate policy used by a projection.
type Plan struct {
	Name          string
	Description   string
	Compounding   domain.CompoundingSpec
	Rates         RatePolicy
	MinimumAmount float64
}

// Minimum returns the amount floor, defaulting to DefaultMinimumAmount.
func (p *Plan) Minimum() float64 {
	if p.MinimumAmount <= 0 {
		return domain.DefaultMinimumAmount
	}
	return p.MinimumAmount
}

// MonthlyTieredPlan is the monthly-deposit, monthly-compounding plan with the two-tier rate.
func MonthlyTieredPlan() *Plan {
	rates, err := NewTwoTierRate(TierBoundaryYears, ShortTermRate, LongTermRate)
	if err != nil {
		panic(err)
	}
	return &Plan{
		Name:          PresetMonthlyTiered,
		Description:   monthlyTieredDesc,
		Compounding:   domain.MonthlyCompounding,
		Rates:         rates,
		MinimumAmount: domain.DefaultMinimumAmount,
	}
}

// MonthlyFixedPlan is the monthly-compounding plan at the standard fixed rate.
func MonthlyFixedPlan() *Plan {
	return &Plan{
		Name:          PresetMonthlyFixed,
		Description:   monthlyFixedDesc,
		Compounding:   domain.MonthlyCompounding,
		Rates:         FixedRate(StandardFixedRate),
		MinimumAmount: domain.DefaultMinimumAmount,
	}
}

// QuarterlyFixedPlan is the quarterly-compounding plan at the standard fixed rate.
func QuarterlyFixedPlan() *Plan {
	return &Plan{
		Name:          PresetQuarterlyFixed,
		Description:   quarterlyFixedDesc,
		Compounding:   domain.QuarterlyCompounding,
		Rates:         FixedRate(StandardFixedRate),
		MinimumAmount: domain.DefaultMinimumAmount,
	}
}

var presetConstructors = map[string]func() *Plan{
	PresetMonthlyTiered:  MonthlyTieredPlan,
	PresetMonthlyFixed:   MonthlyFixedPlan,
	PresetQuarterlyFixed: QuarterlyFixedPlan,
}

// presetAliases provides user-friendly synonyms for preset names.
var presetAliases = map[string]string{
	"default":   PresetMonthlyTiered,
	"tiered":    PresetMonthlyTiered,
	"monthly":   PresetMonthlyFixed,
	"fixed":     PresetMonthlyFixed,
	"quarterly": PresetQuarterlyFixed,
}

// NormalizePresetName lowers and resolves aliases.
func NormalizePresetName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return PresetMonthlyTiered
	}
	if mapped, ok := presetAliases[n]; ok {
		return mapped
	}
	return n
}

// PresetByName returns a fresh copy of the named preset.
func PresetByName(name string) (*Plan, error) {
	ctor, ok := presetConstructors[NormalizePresetName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q. Try one of: %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return ctor(), nil
}

// Presets returns every preset ordered by name.
func Presets() []*Plan {
	names := PresetNames()
	plans := make([]*Plan, 0, len(names))
	for _, n := range names {
		plans = append(plans, presetConstructors[n]())
	}
	return plans
}

// PresetNames returns the canonical preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presetConstructors))
	for n := range presetConstructors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PresetAliases returns the supported alias keys.
func PresetAliases() []string {
	keys := make([]string, 0, len(presetAliases))
	for k := range presetAliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewPlanFromConfig builds a plan from its serialized form. A fixed rate wins
// over tiers when both are present.
func NewPlanFromConfig(pc domain.PlanConfig) (*Plan, error) {
	if strings.TrimSpace(pc.Name) == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	compounding, ok := domain.CompoundingByName(pc.Compounding)
	if !ok {
		return nil, fmt.Errorf("plan %s: unsupported compounding %q (use monthly or quarterly)", pc.Name, pc.Compounding)
	}
	if pc.MinimumAmount < 0 {
		return nil, fmt.Errorf("plan %s: minimum amount cannot be negative", pc.Name)
	}

	var rates RatePolicy
	switch {
	case pc.FixedRate != nil:
		if err := checkRate(*pc.FixedRate); err != nil {
			return nil, fmt.Errorf("plan %s: fixed rate: %w", pc.Name, err)
		}
		rates = FixedRate(*pc.FixedRate)
	case len(pc.Tiers) > 0:
		tiered, err := NewTieredRate(pc.Tiers)
		if err != nil {
			return nil, fmt.Errorf("plan %s: %w", pc.Name, err)
		}
		rates = tiered
	default:
		return nil, fmt.Errorf("plan %s: either fixed_rate_percent or tiers is required", pc.Name)
	}

	minimum := pc.MinimumAmount
	if minimum == 0 {
		minimum = domain.DefaultMinimumAmount
	}
	return &Plan{
		Name:          pc.Name,
		Description:   pc.Description,
		Compounding:   compounding,
		Rates:         rates,
		MinimumAmount: minimum,
	}, nil
}

// PlanConfigFor converts a plan back into its serialized form. Rate policies
// other than FixedRate and TieredRate are sampled per duration.
func PlanConfigFor(p *Plan) domain.PlanConfig {
	pc := domain.PlanConfig{
		Name:          p.Name,
		Description:   p.Description,
		Compounding:   p.Compounding.Name,
		MinimumAmount: p.MinimumAmount,
	}
	switch r := p.Rates.(type) {
	case FixedRate:
		v := float64(r)
		pc.FixedRate = &v
	case *TieredRate:
		pc.Tiers = r.Tiers()
	default:
		for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
			pc.Tiers = append(pc.Tiers, domain.RateTier{
				MinYears:          years,
				MaxYears:          years,
				MaxInclusive:      true,
				AnnualRatePercent: p.Rates.RateForDuration(years),
			})
		}
	}
	return pc
}
