package report

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/ionscan/iontok/internal/lexer"
)

// HTMLReporter renders a ScanReport as a static HTML page.
type HTMLReporter struct {
	report *ScanReport
}

// NewHTMLReporter creates a new HTML reporter bound to report.
func NewHTMLReporter(report *ScanReport) *HTMLReporter {
	return &HTMLReporter{report: report}
}

// Format writes the rendered HTML page to writer.
func (r *HTMLReporter) Format(writer io.Writer) error {
	if err := r.writeHeader(writer); err != nil {
		return err
	}
	if err := r.writeSummary(writer); err != nil {
		return err
	}
	if err := r.writeKindBars(writer); err != nil {
		return err
	}
	if err := r.writeKeywordBars(writer); err != nil {
		return err
	}
	if err := r.writeMismatchTable(writer); err != nil {
		return err
	}
	return r.writeFooter(writer)
}

func (r *HTMLReporter) writeHeader(writer io.Writer) error {
	cov := r.report.Coverage
	timestamp := time.Now().Format(time.RFC1123)
	if !cov.Timestamp.IsZero() {
		timestamp = cov.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>iontok Coverage Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        #topbar { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        #topbar h1 { font-size: 2.5em; margin-bottom: 10px; }
        #topbar .meta { opacity: 0.8; font-size: 0.9em; }
        .panel { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .panel h2 { margin-bottom: 20px; color: #2c3e50; }
        .bar-row { display: flex; align-items: center; gap: 12px; padding: 4px 0; font-family: 'Courier New', monospace; font-size: 0.9em; }
        .bar-label { min-width: 220px; }
        .bar-track { flex: 1; height: 16px; background: #ecf0f1; border-radius: 4px; overflow: hidden; }
        .bar-fill { height: 100%%; background: linear-gradient(90deg, #e74c3c 0%%, #f39c12 50%%, #2ecc71 100%%); }
        .cov0 { color: #e74c3c; font-weight: bold; }
        .cov1 { color: #2ecc71; font-weight: bold; }
        .mismatch-table { width: 100%%; border-collapse: collapse; font-family: 'Courier New', monospace; font-size: 0.9em; }
        .mismatch-table th, .mismatch-table td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #ecf0f1; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <div id="topbar">
        <div class="container">
            <h1>iontok Coverage Report</h1>
            <div class="meta">Generated: %s | Schema: %s</div>
        </div>
    </div>
    <div class="container">
`, timestamp, html.EscapeString(cov.Version))
	return err
}

func (r *HTMLReporter) writeSummary(writer io.Writer) error {
	totalTokens := 0
	for _, res := range r.report.Results {
		totalTokens += res.TokenCount
	}
	_, err := fmt.Fprintf(writer, `        <section id="summary" class="panel">
            <h2>Summary</h2>
            <div class="bar-row"><div class="bar-label">Files scanned</div><div>%d</div></div>
            <div class="bar-row"><div class="bar-label">Tokens produced</div><div>%d</div></div>
            <div class="bar-row"><div class="bar-label">Conformance mismatches</div><div class="%s">%d</div></div>
        </section>

`, len(r.report.Results), totalTokens, mismatchClass(len(r.report.Mismatch)), len(r.report.Mismatch))
	return err
}

func mismatchClass(n int) string {
	if n == 0 {
		return "cov1"
	}
	return "cov0"
}

func (r *HTMLReporter) writeKindBars(writer io.Writer) error {
	cov := r.report.Coverage
	seen := make(map[string]bool)
	for _, fc := range cov.Files {
		for name, hits := range fc.Kinds {
			if hits > 0 {
				seen[name] = true
			}
		}
	}

	if _, err := fmt.Fprintf(writer, `        <section id="kind-coverage" class="panel">
            <h2>Token Kind Coverage (%.1f%%)</h2>
`, cov.KindCoveragePercent()); err != nil {
		return err
	}
	for _, k := range lexer.AllTokenKinds() {
		covered := seen[k.String()]
		if err := writeBarRow(writer, k.String(), covered); err != nil {
			return err
		}
	}
	_, err := writer.Write([]byte("        </section>\n\n"))
	return err
}

func (r *HTMLReporter) writeKeywordBars(writer io.Writer) error {
	cov := r.report.Coverage
	seen := make(map[string]bool)
	for _, fc := range cov.Files {
		for name, hits := range fc.Keywords {
			if hits > 0 {
				seen[name] = true
			}
		}
	}

	if _, err := fmt.Fprintf(writer, `        <section id="keyword-coverage" class="panel">
            <h2>Keyword Coverage (%.1f%%)</h2>
`, cov.KeywordCoveragePercent()); err != nil {
		return err
	}
	for _, kw := range lexer.AllKeywordTags() {
		if kw == lexer.KeywordNone {
			continue
		}
		covered := seen[kw.String()]
		if err := writeBarRow(writer, kw.String(), covered); err != nil {
			return err
		}
	}
	_, err := writer.Write([]byte("        </section>\n\n"))
	return err
}

func writeBarRow(writer io.Writer, label string, covered bool) error {
	class, width := "cov0", 0
	if covered {
		class, width = "cov1", 100
	}
	_, err := fmt.Fprintf(writer, `            <div class="bar-row">
                <div class="bar-label %s">%s</div>
                <div class="bar-track"><div class="bar-fill" style="width: %d%%;"></div></div>
            </div>
`, class, html.EscapeString(label), width)
	return err
}

func (r *HTMLReporter) writeMismatchTable(writer io.Writer) error {
	var mismatches []struct {
		File  string
		Class string
		Err   string
	}
	for _, m := range r.report.Mismatch {
		errText := ""
		if m.Err != nil {
			errText = m.Err.Error()
		}
		mismatches = append(mismatches, struct {
			File  string
			Class string
			Err   string
		}{File: m.File.RelativePath, Class: m.File.Class.String(), Err: errText})
	}
	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].File < mismatches[j].File })

	if _, err := fmt.Fprintf(writer, `        <section id="mismatches" class="panel">
            <h2>Conformance Mismatches</h2>
            <table class="mismatch-table">
                <tr><th>File</th><th>Class</th><th>Error</th></tr>
`); err != nil {
		return err
	}
	for _, m := range mismatches {
		if _, err := fmt.Fprintf(writer, `                <tr><td>%s</td><td>%s</td><td>%s</td></tr>
`, html.EscapeString(m.File), html.EscapeString(m.Class), html.EscapeString(m.Err)); err != nil {
			return err
		}
	}
	_, err := writer.Write([]byte("            </table>\n        </section>\n\n"))
	return err
}

func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <footer>
            Generated by <strong>iontok</strong>
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns the rendered HTML page as a string.
func (r *HTMLReporter) FormatString() (string, error) {
	var buf strings.Builder
	if err := r.Format(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter.
func (r *HTMLReporter) Name() string {
	return "html"
}
