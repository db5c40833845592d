// Package output renders analysis results for the CLI boundary. Formatters
// add no semantics; every figure comes straight from the engine records.
package output

import (
	"fmt"
	"strings"

	"github.com/coverwise/coverwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles the results of one analysis run. Sections are optional; a
// nil section is simply skipped.
type Report struct {
	Recommendations *domain.RecommendationSet `json:"recommendations,omitempty"`
	MAGI            *domain.MAGIAnalysis      `json:"magi,omitempty"`
	HSA             *domain.HSAAnalysis       `json:"hsa,omitempty"`
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) (string, error)
}

// GetFormatterByName returns the formatter registered under a name, or nil.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "table", "console":
		return &TableFormatter{}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	return []string{"table", "csv", "json"}
}

// FormatCurrency renders a decimal dollar amount with two places.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent renders a decimal fraction as a percentage with one place.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// sectionHeader renders the report section banner the console output uses.
func sectionHeader(title string) string {
	return fmt.Sprintf("%s\n%s\n", title, strings.Repeat("=", len(title)))
}
