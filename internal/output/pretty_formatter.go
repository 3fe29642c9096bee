package output

import (
	"github.com/charmbracelet/glamour"
	"github.com/rpgo/rd-calculator/internal/domain"
)

// PrettyFormatter renders the markdown table through glamour for terminals.
type PrettyFormatter struct {
	// Style is a glamour standard style name; empty selects "notty".
	Style string
}

func (p PrettyFormatter) Name() string { return "pretty" }

func (p PrettyFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(result)
	if err != nil {
		return nil, err
	}
	style := p.Style
	if style == "" {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(string(md))
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
