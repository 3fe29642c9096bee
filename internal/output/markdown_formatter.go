package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// MarkdownFormatter renders the result as a GitHub-flavoured markdown table.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "### %s\n\n", Heading(result))
	if result.IsEmpty() {
		fmt.Fprintf(&buf, "_%s_\n", Placeholder(result))
		return buf.Bytes(), nil
	}

	fmt.Fprintf(&buf, "| Period (Years) | %s | Rate | Interest Earned |\n", ValueColumn(result.Kind))
	fmt.Fprintln(&buf, "| --- | ---: | ---: | ---: |")
	for _, row := range result.Rows {
		fmt.Fprintf(&buf, "| %s | %s | %s | %s |\n",
			PeriodLabel(row.DurationYears),
			FormatCurrency(row.Value, result.Currency),
			FormatPercentage(row.AnnualRatePercent),
			FormatCurrency(row.InterestEarned, result.Currency),
		)
	}
	fmt.Fprintln(&buf)
	for _, line := range GenerateAssumptions(result) {
		fmt.Fprintf(&buf, "- %s\n", line)
	}
	return buf.Bytes(), nil
}
