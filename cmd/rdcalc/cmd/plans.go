package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/rd-calculator/internal/calculation"
	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/rpgo/rd-calculator/internal/output"
)

func newPlansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List the available plans and their rate per duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.allPlans()
			if err != nil {
				return err
			}
			w := out(cmd)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Plan\tCompounding\t1Y\t2Y\t3Y\t4Y\t5Y\tMinimum")
			for _, p := range plans {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Name, p.Compounding.Name, rateColumns(p),
					output.FormatCurrency(decimal.NewFromFloat(p.Minimum()), a.displayCurrency()))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if a.config == nil {
				fmt.Fprintf(w, "\nAliases: %s\n", strings.Join(calculation.PresetAliases(), ", "))
			}
			return nil
		},
	}
}

func rateColumns(p *calculation.Plan) string {
	cols := make([]string, 0, domain.MaxDurationYears)
	for years := domain.MinDurationYears; years <= domain.MaxDurationYears; years++ {
		cols = append(cols, output.FormatPercentage(p.Rates.RateForDuration(years)))
	}
	return strings.Join(cols, "\t")
}
