package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ionscan/iontok/internal/batch"
	"github.com/ionscan/iontok/internal/discovery"
	"github.com/ionscan/iontok/internal/kindcoverage"
	"github.com/ionscan/iontok/internal/lexer"
)

func sampleReport() *ScanReport {
	c := kindcoverage.NewCollector()
	c.AddObservation("a.ion", lexer.INT)
	c.AddObservation("a.ion", lexer.INT)
	c.AddKeywordObservation("a.ion", lexer.KeywordTrue)

	results := []batch.FileResult{
		{File: discovery.DiscoveredFile{RelativePath: "a.ion", Class: discovery.ClassGood}, TokenCount: 3},
		{
			File:     discovery.DiscoveredFile{RelativePath: "bad/broken.ion", Class: discovery.ClassGood},
			Err:      errors.New("leading zero in integer"),
			Line:     1,
			Offset:   1,
			Mismatch: true,
		},
	}
	return NewScanReport(c.Coverage(), results)
}

func TestJSONReporter_Format(t *testing.T) {
	reporter := NewJSONReporter(sampleReport())

	var buf bytes.Buffer
	if err := reporter.Format(&buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if decoded["total_files"].(float64) != 2 {
		t.Errorf("total_files = %v, want 2", decoded["total_files"])
	}
	if decoded["total_tokens"].(float64) != 3 {
		t.Errorf("total_tokens = %v, want 3", decoded["total_tokens"])
	}
	mismatches, ok := decoded["mismatches"].([]interface{})
	if !ok || len(mismatches) != 1 {
		t.Fatalf("expected exactly 1 mismatch, got %v", decoded["mismatches"])
	}
}

func TestJSONReporter_FormatString(t *testing.T) {
	reporter := NewJSONReporter(sampleReport())
	out, err := reporter.FormatString()
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if !strings.Contains(out, `"kind_coverage_percent"`) {
		t.Error("missing kind_coverage_percent field")
	}
	if !strings.Contains(out, `"keyword_coverage_percent"`) {
		t.Error("missing keyword_coverage_percent field")
	}
}

func TestJSONReporter_Name(t *testing.T) {
	if name := NewJSONReporter(sampleReport()).Name(); name != "json" {
		t.Errorf("Name() = %s, want json", name)
	}
}

func TestJSONReporter_EmptyCoverage(t *testing.T) {
	reporter := NewJSONReporter(NewScanReport(kindcoverage.NewCoverage(), nil))
	var buf bytes.Buffer
	if err := reporter.Format(&buf); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["total_files"].(float64) != 0 {
		t.Errorf("total_files = %v, want 0", decoded["total_files"])
	}
}
