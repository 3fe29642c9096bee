package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a result.
func GenerateAssumptions(r *domain.ProjectionResult) []string {
	compounding := r.Compounding
	if compounding == "" {
		compounding = "monthly"
	}
	lines := []string{
		fmt.Sprintf("Deposits are made monthly (%d installments per year)", domain.DepositsPerYear),
		fmt.Sprintf("Interest is compounded %s", compounding),
	}
	if rates := describeRates(r.Rows); rates != "" {
		lines = append(lines, "Annual rates: "+rates)
	}
	lines = append(lines, "Maturity amounts are rounded to the nearest unit; required deposits are rounded up")
	return lines
}

// describeRates collapses consecutive durations sharing a rate, e.g. "10.00% (1-2 years), 12.00% (3-5 years)".
func describeRates(rows []domain.ProjectionRow) string {
	var parts []string
	for i := 0; i < len(rows); {
		j := i
		for j+1 < len(rows) && rows[j+1].AnnualRatePercent == rows[i].AnnualRatePercent {
			j++
		}
		span := fmt.Sprintf("%d-%d years", rows[i].DurationYears, rows[j].DurationYears)
		if i == j {
			span = PeriodLabel(rows[i].DurationYears)
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", FormatPercentage(rows[i].AnnualRatePercent), strings.ToLower(span)))
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
