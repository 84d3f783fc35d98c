package config

import "testing"

func TestDefault(t *testing.T) {
	c := Default()
	if c.Workers != 1 {
		t.Errorf("expected default workers 1, got %d", c.Workers)
	}
	if c.CoverageFile != ".iontok/coverage.json" {
		t.Errorf("expected default coverage file '.iontok/coverage.json', got %q", c.CoverageFile)
	}
	if c.Verbose {
		t.Error("expected default verbose false")
	}
}

func TestApplyFlagsOverridesNonZero(t *testing.T) {
	c := Default()
	ApplyFlags(&c, 4, "out/cov.json", true)
	if c.Workers != 4 {
		t.Errorf("got Workers=%d, want 4", c.Workers)
	}
	if c.CoverageFile != "out/cov.json" {
		t.Errorf("got CoverageFile=%q, want out/cov.json", c.CoverageFile)
	}
	if !c.Verbose {
		t.Error("expected Verbose=true")
	}
}

func TestApplyFlagsLeavesZeroValuesAtDefault(t *testing.T) {
	c := Default()
	ApplyFlags(&c, 0, "", false)
	if c.Workers != 1 {
		t.Errorf("got Workers=%d, want default 1", c.Workers)
	}
	if c.CoverageFile != ".iontok/coverage.json" {
		t.Errorf("got CoverageFile=%q, want default", c.CoverageFile)
	}
}

func TestValidateRejectsNegativeWorkers(t *testing.T) {
	c := Default()
	c.Workers = -1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for negative Workers")
	}
}

func TestValidateAcceptsZeroWorkers(t *testing.T) {
	c := Default()
	c.Workers = 0
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
