// Package report renders a kind-coverage scan as JSON or HTML through a
// common Formatter interface, so a new output format only has to add one
// more implementation rather than branch inside the CLI.
package report

import (
	"fmt"
	"io"

	"github.com/ionscan/iontok/internal/batch"
	"github.com/ionscan/iontok/internal/kindcoverage"
)

// ScanReport bundles a corpus's aggregated kind coverage with the
// per-file results the batch runner produced, which is what a formatter
// needs to render both the coverage bars and the conformance mismatch
// table.
type ScanReport struct {
	Coverage *kindcoverage.Coverage
	Results  []batch.FileResult
	Mismatch []batch.FileResult
}

// NewScanReport builds a ScanReport from a completed batch run and its
// folded coverage.
func NewScanReport(cov *kindcoverage.Coverage, results []batch.FileResult) *ScanReport {
	return &ScanReport{
		Coverage: cov,
		Results:  results,
		Mismatch: batch.Mismatches(results),
	}
}

// Formatter renders a ScanReport in a specific output format.
type Formatter interface {
	// Format writes the rendered report to writer.
	Format(writer io.Writer) error

	// FormatString returns the rendered report as a string.
	FormatString() (string, error)

	// Name returns the name of this formatter.
	Name() string
}

// FormatType represents supported report formats.
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type, bound
// to report.
func GetFormatter(format FormatType, report *ScanReport) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(report), nil
	case FormatHTML:
		return NewHTMLReporter(report), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, html)", format)
	}
}

// FormatToWriter formats report to writer using the specified format.
func FormatToWriter(report *ScanReport, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format, report)
	if err != nil {
		return err
	}
	return formatter.Format(writer)
}

// FormatToString formats report to a string using the specified format.
func FormatToString(report *ScanReport, format FormatType) (string, error) {
	formatter, err := GetFormatter(format, report)
	if err != nil {
		return "", err
	}
	return formatter.FormatString()
}

// ValidFormat reports whether format is a recognized format name.
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the list of supported format names.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatHTML)}
}
