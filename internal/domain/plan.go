package domain

import (
	"fmt"
	"strings"
)

// DepositsPerYear is the number of installments a recurring deposit makes each year.
const DepositsPerYear = 12

// DefaultMinimumAmount is the smallest deposit or target a projection accepts.
const DefaultMinimumAmount = 1000.0

// CompoundingSpec determines the unit of compounding used inside the annuity factor.
type CompoundingSpec struct {
	Name            string `json:"name" yaml:"name"`
	PeriodsPerYear  int    `json:"periods_per_year" yaml:"periods_per_year"`
	DepositsPerYear int    `json:"deposits_per_year" yaml:"deposits_per_year"`
}

// MonthlyCompounding credits interest every month, once per deposit.
var MonthlyCompounding = CompoundingSpec{Name: "monthly", PeriodsPerYear: 12, DepositsPerYear: DepositsPerYear}

// QuarterlyCompounding credits interest every quarter, once per three deposits.
var QuarterlyCompounding = CompoundingSpec{Name: "quarterly", PeriodsPerYear: 4, DepositsPerYear: DepositsPerYear}

// RatePerPeriod converts an annual percentage into the rate per compounding period.
func (c CompoundingSpec) RatePerPeriod(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / float64(c.PeriodsPerYear)
}

// Periods returns the number of compounding periods in the given duration.
func (c CompoundingSpec) Periods(years int) float64 {
	return float64(years*c.depositsPerYear()) / c.DepositsPerPeriod()
}

// DepositsPerPeriod returns how many deposits fall into one compounding period.
func (c CompoundingSpec) DepositsPerPeriod() float64 {
	return float64(c.depositsPerYear()) / float64(c.PeriodsPerYear)
}

func (c CompoundingSpec) depositsPerYear() int {
	if c.DepositsPerYear <= 0 {
		return DepositsPerYear
	}
	return c.DepositsPerYear
}

// Validate checks that deposits divide evenly into compounding periods.
func (c CompoundingSpec) Validate() error {
	if c.PeriodsPerYear <= 0 {
		return fmt.Errorf("periods per year must be positive, got %d", c.PeriodsPerYear)
	}
	if c.depositsPerYear()%c.PeriodsPerYear != 0 {
		return fmt.Errorf("periods per year (%d) must divide deposits per year (%d)", c.PeriodsPerYear, c.depositsPerYear())
	}
	return nil
}

// CompoundingByName resolves the named compounding presets, ignoring case and
// surrounding space. An empty name selects monthly.
func CompoundingByName(name string) (CompoundingSpec, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monthly", "":
		return MonthlyCompounding, true
	case "quarterly":
		return QuarterlyCompounding, true
	}
	return CompoundingSpec{}, false
}

// RateTier is a duration band with its annual rate. The band covers
// [MinYears, MaxYears) or [MinYears, MaxYears] when MaxInclusive is set.
type RateTier struct {
	MinYears          int     `json:"min_years" yaml:"min_years" hcl:"min_years"`
	MaxYears          int     `json:"max_years" yaml:"max_years" hcl:"max_years"`
	MaxInclusive      bool    `json:"max_inclusive,omitempty" yaml:"max_inclusive,omitempty" hcl:"max_inclusive,optional"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent" hcl:"annual_rate_percent"`
}

// Contains reports whether the tier applies to the given duration.
func (t RateTier) Contains(years int) bool {
	if years < t.MinYears {
		return false
	}
	if t.MaxInclusive {
		return years <= t.MaxYears
	}
	return years < t.MaxYears
}

// PlanConfig is the serialized form of a projection plan.
type PlanConfig struct {
	Name          string     `json:"name" yaml:"name" hcl:"name,label"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
	Compounding   string     `json:"compounding" yaml:"compounding" hcl:"compounding,optional"`
	MinimumAmount float64    `json:"minimum_amount,omitempty" yaml:"minimum_amount,omitempty" hcl:"minimum_amount,optional"`
	FixedRate     *float64   `json:"fixed_rate_percent,omitempty" yaml:"fixed_rate_percent,omitempty" hcl:"fixed_rate_percent,optional"`
	Tiers         []RateTier `json:"tiers,omitempty" yaml:"tiers,omitempty" hcl:"tier,block"`
}

// LoggingConfig mirrors the logger settings accepted in configuration files.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level" hcl:"level,optional"`
	Format string `json:"format" yaml:"format" hcl:"format,optional"`
	Output string `json:"output" yaml:"output" hcl:"output,optional"`
}

// Configuration is the top-level configuration file.
type Configuration struct {
	Currency    string         `json:"currency" yaml:"currency" hcl:"currency,optional"`
	DefaultPlan string         `json:"default_plan" yaml:"default_plan" hcl:"default_plan,optional"`
	Plans       []PlanConfig   `json:"plans" yaml:"plans" hcl:"plan,block"`
	Logging     *LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty" hcl:"logging,block"`
}
