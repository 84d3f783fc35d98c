package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONReporter formats a ScanReport as indented JSON.
type JSONReporter struct {
	report *ScanReport
}

// NewJSONReporter creates a new JSON reporter bound to report.
func NewJSONReporter(report *ScanReport) *JSONReporter {
	return &JSONReporter{report: report}
}

// jsonMismatch is the JSON-serializable projection of a conformance
// mismatch: batch.FileResult carries an error value, which does not
// marshal meaningfully on its own.
type jsonMismatch struct {
	File   string `json:"file"`
	Class  string `json:"class"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// jsonDocument is the on-disk/wire shape of a rendered ScanReport.
type jsonDocument struct {
	Version                string         `json:"version"`
	Timestamp              interface{}    `json:"timestamp"`
	TotalFiles             int            `json:"total_files"`
	TotalTokens            int            `json:"total_tokens"`
	KindCoveragePercent    float64        `json:"kind_coverage_percent"`
	KeywordCoveragePercent float64        `json:"keyword_coverage_percent"`
	UncoveredKinds         []string       `json:"uncovered_kinds,omitempty"`
	UncoveredKeywords      []string       `json:"uncovered_keywords,omitempty"`
	Files                  interface{}    `json:"files"`
	Mismatches             []jsonMismatch `json:"mismatches,omitempty"`
}

func (r *JSONReporter) document() jsonDocument {
	cov := r.report.Coverage

	var uncoveredKinds []string
	for _, k := range cov.UncoveredKinds() {
		uncoveredKinds = append(uncoveredKinds, k.String())
	}
	var uncoveredKeywords []string
	for _, kw := range cov.UncoveredKeywords() {
		uncoveredKeywords = append(uncoveredKeywords, kw.String())
	}

	totalTokens := 0
	for _, res := range r.report.Results {
		totalTokens += res.TokenCount
	}

	var mismatches []jsonMismatch
	for _, m := range r.report.Mismatch {
		jm := jsonMismatch{File: m.File.RelativePath, Class: m.File.Class.String(), Line: m.Line, Offset: m.Offset}
		if m.Err != nil {
			jm.Error = m.Err.Error()
		}
		mismatches = append(mismatches, jm)
	}

	return jsonDocument{
		Version:                cov.Version,
		Timestamp:              cov.Timestamp,
		TotalFiles:             len(r.report.Results),
		TotalTokens:            totalTokens,
		KindCoveragePercent:    cov.KindCoveragePercent(),
		KeywordCoveragePercent: cov.KeywordCoveragePercent(),
		UncoveredKinds:         uncoveredKinds,
		UncoveredKeywords:      uncoveredKeywords,
		Files:                  cov.Files,
		Mismatches:             mismatches,
	}
}

// Format writes the rendered report as indented JSON to writer.
func (r *JSONReporter) Format(writer io.Writer) error {
	data, err := json.MarshalIndent(r.document(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns the rendered report as a JSON string.
func (r *JSONReporter) FormatString() (string, error) {
	data, err := json.MarshalIndent(r.document(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this reporter.
func (r *JSONReporter) Name() string {
	return "json"
}
