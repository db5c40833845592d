package output

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONFormatter emits the report as indented JSON for machine consumption.
type JSONFormatter struct{}

// Name returns the registry name.
func (jf *JSONFormatter) Name() string { return "json" }

// Format marshals the report.
func (jf *JSONFormatter) Format(report *Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(data) + "\n", nil
}
