package main

import (
	"flag"
	"fmt"

	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/domain"
)

// print_factors lists the unrounded annuity factor of every preset and duration.
func main() {
	amount := flag.Float64("amount", 1000, "monthly deposit used for the unrounded maturity column")
	flag.Parse()

	for _, p := range calculation.Presets() {
		fmt.Printf("%s (%s compounding)\n", p.Name, p.Compounding.Name)
		for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
			rate := p.Rates.RateForDuration(years)
			factor := calculation.AnnuityFactor(years, rate, p.Compounding)
			fmt.Printf("  %dy  rate=%6.2f%%  factor=%.15f  maturity(%.0f)=%.6f\n", years, rate, factor, *amount, *amount*factor)
		}
	}
}
