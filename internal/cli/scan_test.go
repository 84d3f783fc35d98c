package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ionscan/iontok/internal/config"
	"github.com/ionscan/iontok/internal/kindcoverage"
)

func writeIonFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestScanWritesCoverageWithNoMismatchesForConformingCorpus(t *testing.T) {
	root := t.TempDir()
	writeIonFile(t, filepath.Join(root, "good", "ok.ion"), "1 2 true")
	writeIonFile(t, filepath.Join(root, "bad", "shouldfail.ion"), "01")

	cfg := config.Default()
	cfg.CoverageFile = filepath.Join(t.TempDir(), "coverage.json")

	var out bytes.Buffer
	mismatches, err := Scan(context.Background(), cfg, root, &out)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if mismatches != 0 {
		t.Errorf("got %d mismatches, want 0", mismatches)
	}

	store := kindcoverage.NewStore(cfg.CoverageFile)
	if !store.Exists() {
		t.Fatal("expected coverage file to be written")
	}
	cov, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cov.Files["good/ok.ion"] == nil {
		t.Error("expected coverage entry for good/ok.ion")
	}
}

func TestScanFlagsMismatchWhenBadFileTokenizesCleanly(t *testing.T) {
	root := t.TempDir()
	writeIonFile(t, filepath.Join(root, "bad", "accidentallyok.ion"), "1 2 3")

	cfg := config.Default()
	cfg.CoverageFile = filepath.Join(t.TempDir(), "coverage.json")

	var out bytes.Buffer
	mismatches, err := Scan(context.Background(), cfg, root, &out)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if mismatches != 1 {
		t.Errorf("got %d mismatches, want 1", mismatches)
	}
}

func TestScanEmptyCorpus(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.CoverageFile = filepath.Join(t.TempDir(), "coverage.json")

	var out bytes.Buffer
	mismatches, err := Scan(context.Background(), cfg, root, &out)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if mismatches != 0 {
		t.Errorf("got %d mismatches, want 0", mismatches)
	}
}
