package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ionscan/iontok/internal/batch"
	"github.com/ionscan/iontok/internal/discovery"
	"github.com/ionscan/iontok/internal/kindcoverage"
)

func TestHTMLReporter_Format(t *testing.T) {
	reporter := NewHTMLReporter(sampleReport())

	var buf bytes.Buffer
	if err := reporter.Format(&buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := buf.String()

	for _, elem := range []string{"<!DOCTYPE html>", "<html", "<head>", "<body>", "</html>", "Coverage Report"} {
		if !strings.Contains(output, elem) {
			t.Errorf("missing required HTML element: %s", elem)
		}
	}
}

func TestHTMLReporter_FormatString(t *testing.T) {
	output, err := NewHTMLReporter(sampleReport()).FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(output), "<!DOCTYPE html>") {
		t.Error("HTML5 doctype not at beginning of document")
	}
	if !strings.Contains(output, "</html>") {
		t.Error("missing closing html tag")
	}
}

func TestHTMLReporter_Name(t *testing.T) {
	if name := NewHTMLReporter(sampleReport()).Name(); name != "html" {
		t.Errorf("Name() = %s, want html", name)
	}
}

func TestHTMLReporter_ListsMismatches(t *testing.T) {
	output, err := NewHTMLReporter(sampleReport()).FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if !strings.Contains(output, "bad/broken.ion") {
		t.Error("mismatch table missing the mismatched file")
	}
	if !strings.Contains(output, "leading zero in integer") {
		t.Error("mismatch table missing the lexical error text")
	}
}

func TestHTMLReporter_SectionIDsAreUnique(t *testing.T) {
	output, err := NewHTMLReporter(sampleReport()).FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	for _, id := range []string{`id="summary"`, `id="kind-coverage"`, `id="keyword-coverage"`, `id="mismatches"`} {
		if strings.Count(output, id) != 1 {
			t.Errorf("expected exactly one %s section, found %d", id, strings.Count(output, id))
		}
	}
}

func TestHTMLReporter_CSSPresent(t *testing.T) {
	output, err := NewHTMLReporter(sampleReport()).FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if !strings.Contains(output, "<style>") || !strings.Contains(output, "</style>") {
		t.Error("missing <style> block")
	}
}

func TestHTMLReporter_EmptyCoverage(t *testing.T) {
	reporter := NewHTMLReporter(NewScanReport(kindcoverage.NewCoverage(), nil))
	var buf bytes.Buffer
	if err := reporter.Format(&buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "<!DOCTYPE html>") {
		t.Error("missing DOCTYPE declaration")
	}
	if !strings.Contains(output, "</body>") {
		t.Error("missing closing body tag")
	}
}

func TestHTMLReporter_EscapesFileNames(t *testing.T) {
	results := []batch.FileResult{
		{
			File:     discovery.DiscoveredFile{RelativePath: "<script>.ion", Class: discovery.ClassGood},
			Err:      errors.New("boom"),
			Mismatch: true,
		},
	}
	report := NewScanReport(kindcoverage.NewCoverage(), results)

	output, err := NewHTMLReporter(report).FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if strings.Contains(output, "<script>.ion") {
		t.Error("file name was not HTML-escaped")
	}
	if !strings.Contains(output, "&lt;script&gt;.ion") {
		t.Error("expected HTML-escaped file name in mismatch table")
	}
}
