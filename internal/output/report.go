package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/rd-calculator/internal/domain"
)

// GenerateReport renders result with the named formatter and writes it to w.
func GenerateReport(w io.Writer, result *domain.ProjectionResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport writes the formatted result to a timestamped file in dir and returns its path.
func SaveReport(result *domain.ProjectionResult, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, result, dir)
}
