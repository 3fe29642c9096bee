package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/rpgo/rd-calculator/internal/output"
	rdmoney "github.com/rpgo/rd-calculator/pkg/decimal"
)

func newMaturityCmd(a *app) *cobra.Command {
	var saveDir string
	cmd := &cobra.Command{
		Use:   "maturity <monthly-deposit>",
		Short: "Maturity amount of a monthly deposit for 1 to 5 years",
		Long: `Project the maturity amount of a fixed monthly deposit for each
duration from 1 to 5 years. Amounts may use thousands separators or a
currency prefix ("₹ 1,000", "Rs 2500"). Deposits below the plan minimum
print a placeholder instead of a table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProjection(cmd, domain.KindMaturity, args[0], saveDir)
		},
	}
	cmd.Flags().StringVar(&saveDir, "save", "", "also write the report to a timestamped file in this directory")
	return cmd
}

func newDepositCmd(a *app) *cobra.Command {
	var saveDir string
	cmd := &cobra.Command{
		Use:     "deposit <target-amount>",
		Aliases: []string{"goal"},
		Short:   "Monthly deposit needed to reach a target in 1 to 5 years",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProjection(cmd, domain.KindRequiredDeposit, args[0], saveDir)
		},
	}
	cmd.Flags().StringVar(&saveDir, "save", "", "also write the report to a timestamped file in this directory")
	return cmd
}

func (a *app) runProjection(cmd *cobra.Command, kind domain.ProjectionKind, input, saveDir string) error {
	plan, err := a.resolvePlan()
	if err != nil {
		return err
	}
	amount := a.parseAmount(input)
	var result domain.ProjectionResult
	if kind == domain.KindMaturity {
		result = a.engine.ProjectMaturity(amount, plan)
	} else {
		result = a.engine.ProjectRequiredDeposit(amount, plan)
	}
	result.Currency = a.displayCurrency()

	a.logger.Debug("projection complete",
		zap.String("kind", string(kind)),
		zap.String("plan", plan.Name),
		zap.String("input", input),
		zap.Int("rows", len(result.Rows)),
	)

	if err := output.GenerateReport(out(cmd), &result, a.format); err != nil {
		return err
	}
	if saveDir != "" {
		path, err := output.SaveReport(&result, a.format, saveDir)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		a.logger.Info("report saved", zap.String("path", path))
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", path)
	}
	return nil
}

// parseAmount reads a user-entered amount. Unreadable input becomes NaN, which
// the engine answers with an empty result.
func (a *app) parseAmount(input string) float64 {
	m, err := rdmoney.ParseAmount(input)
	if err != nil {
		a.logger.Debug("amount not numeric", zap.String("input", input), zap.Error(err))
		return math.NaN()
	}
	a.logger.Debug("amount parsed", zap.Stringer("amount", m))
	return m.Float()
}
