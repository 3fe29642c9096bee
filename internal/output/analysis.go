package output

import (
	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation names the plan that does best for a single duration.
type Recommendation struct {
	DurationYears int
	Plan          string
	Value         decimal.Decimal
	// Difference to the runner-up; zero when only one plan had a row.
	Margin decimal.Decimal
}

// AnalyzePlans picks the best plan per duration across results of the same kind.
// Maturity favours the highest amount, required deposit the lowest positive one.
// Durations for which no result carries a usable row are skipped.
func AnalyzePlans(results []*domain.ProjectionResult) []Recommendation {
	var recs []Recommendation
	for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
		var best, second *candidate
		for _, r := range results {
			if r == nil {
				continue
			}
			row, ok := r.Row(years)
			if !ok {
				continue
			}
			if r.Kind == domain.KindRequiredDeposit && !row.Value.IsPositive() {
				continue
			}
			c := &candidate{plan: r.Plan, value: row.Value, kind: r.Kind}
			switch {
			case best == nil || c.beats(best):
				second, best = best, c
			case second == nil || c.beats(second):
				second = c
			}
		}
		if best == nil {
			continue
		}
		rec := Recommendation{DurationYears: years, Plan: best.plan, Value: best.value, Margin: decimal.Zero}
		if second != nil {
			rec.Margin = best.value.Sub(second.value).Abs()
		}
		recs = append(recs, rec)
	}
	return recs
}

type candidate struct {
	plan  string
	value decimal.Decimal
	kind  domain.ProjectionKind
}

func (c *candidate) beats(other *candidate) bool {
	if c.kind == domain.KindRequiredDeposit {
		return c.value.LessThan(other.value)
	}
	return c.value.GreaterThan(other.value)
}
