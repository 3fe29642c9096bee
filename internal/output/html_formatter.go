package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// HTMLFormatter produces a standalone page with the maturity-table markup.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/projection.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("projection").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"period": PeriodLabel,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	headingID := "maturityHeading"
	if result.Kind == domain.KindRequiredDeposit {
		headingID = "goalFundHeading"
	}
	data := struct {
		Result      *domain.ProjectionResult
		Heading     string
		HeadingID   string
		ValueColumn string
		Empty       bool
		Placeholder string
		Assumptions []string
	}{
		Result:      result,
		Heading:     Heading(result),
		HeadingID:   headingID,
		ValueColumn: ValueColumn(result.Kind),
		Empty:       result.IsEmpty(),
		Placeholder: Placeholder(result),
		Assumptions: GenerateAssumptions(result),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
