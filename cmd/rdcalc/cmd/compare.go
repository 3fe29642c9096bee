package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/rpgo/rd-calculator/internal/output"
)

func newCompareCmd(a *app) *cobra.Command {
	var goal bool
	cmd := &cobra.Command{
		Use:   "compare <amount>",
		Short: "Project every plan and pick the best one per duration",
		Long: `Run the same amount through every configured plan (or every preset
when no configuration is loaded). By default the amount is a monthly deposit
and the highest maturity wins; with --goal it is a target and the lowest
monthly deposit wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.KindMaturity
			if goal {
				kind = domain.KindRequiredDeposit
			}
			return a.runCompare(cmd, kind, args[0])
		},
	}
	cmd.Flags().BoolVar(&goal, "goal", false, "treat the amount as a savings target")
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, kind domain.ProjectionKind, input string) error {
	plans, err := a.allPlans()
	if err != nil {
		return err
	}
	amount := a.parseAmount(input)
	currency := a.displayCurrency()

	results := make([]*domain.ProjectionResult, 0, len(plans))
	for _, p := range plans {
		var r domain.ProjectionResult
		if kind == domain.KindMaturity {
			r = a.engine.ProjectMaturity(amount, p)
		} else {
			r = a.engine.ProjectRequiredDeposit(amount, p)
		}
		r.Currency = currency
		results = append(results, &r)
	}

	w := out(cmd)
	recs := output.AnalyzePlans(results)
	if len(recs) == 0 {
		placeholder := &domain.ProjectionResult{Kind: kind, Currency: currency}
		if len(results) > 0 {
			placeholder = results[0]
		}
		fmt.Fprintln(w, output.Placeholder(placeholder))
		return nil
	}

	header := "Highest maturity per duration"
	if kind == domain.KindRequiredDeposit {
		header = "Lowest monthly deposit per duration"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("=", len(header)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period (Years)\tPlan\t%s\tAhead By\n", output.ValueColumn(kind))
	for _, rec := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			output.PeriodLabel(rec.DurationYears),
			rec.Plan,
			output.FormatCurrency(rec.Value, currency),
			output.FormatCurrency(rec.Margin, currency),
		)
	}
	return tw.Flush()
}
