package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// ConsoleFormatter renders a plain text table for terminals and logs.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	heading := Heading(result)
	fmt.Fprintln(&buf, heading)
	fmt.Fprintln(&buf, strings.Repeat("=", utf8.RuneCountInString(heading)))

	if result.IsEmpty() {
		fmt.Fprintln(&buf, Placeholder(result))
		return buf.Bytes(), nil
	}

	amountLabel := "Monthly deposit"
	if result.Kind == domain.KindRequiredDeposit {
		amountLabel = "Target amount"
	}
	fmt.Fprintf(&buf, "Plan: %s\n", result.Plan)
	fmt.Fprintf(&buf, "%s: %s\n\n", amountLabel, FormatCurrency(result.Amount, result.Currency))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period (Years)\t%s\tRate\tTotal Deposited\tInterest Earned\n", ValueColumn(result.Kind))
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			PeriodLabel(row.DurationYears),
			FormatCurrency(row.Value, result.Currency),
			FormatPercentage(row.AnnualRatePercent),
			FormatCurrency(row.TotalDeposited, result.Currency),
			FormatCurrency(row.InterestEarned, result.Currency),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf)
	for _, line := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "* %s\n", line)
	}
	return buf.Bytes(), nil
}
