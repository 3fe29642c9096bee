package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/rd-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes one row per duration. Rejected amounts produce the header only.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"DurationYears", "Value", "Rounding", "AnnualRatePercent", "Factor", "TotalDeposited", "InterestEarned"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.Rows {
		record := []string{
			intToString(row.DurationYears),
			row.Value.String(),
			string(row.Rounding),
			decimal.NewFromFloat(row.AnnualRatePercent).StringFixed(2),
			strconv.FormatFloat(row.Factor, 'f', 6, 64),
			row.TotalDeposited.String(),
			row.InterestEarned.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func intToString(i int) string { return strconv.Itoa(i) }
