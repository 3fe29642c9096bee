package calculation

import (
	"math"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// AnnuityFactor returns the dimensionless growth factor F such that
// maturity = deposit × F for a recurring deposit held for the given years.
//
//	r      = annualRatePercent / 100 / periodsPerYear
//	n      = years × periodsPerYear
//	k      = deposits per compounding period
//	factor = ((1+r)^n − 1) / (1 − (1+r)^(−1/k))
//
// The non-reduced form is evaluated as written. A zero denominator yields 0.
func AnnuityFactor(years int, annualRatePercent float64, c domain.CompoundingSpec) float64 {
	r := c.RatePerPeriod(annualRatePercent)
	n := c.Periods(years)
	k := c.DepositsPerPeriod()

	numerator := math.Pow(1+r, n) - 1
	denominator := 1 - math.Pow(1+r, -1/k)
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
