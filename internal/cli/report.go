package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ionscan/iontok/internal/batch"
	"github.com/ionscan/iontok/internal/kindcoverage"
	"github.com/ionscan/iontok/internal/logger"
	"github.com/ionscan/iontok/internal/report"
)

// Report loads a previously saved kind-coverage file and renders it in
// the requested format to outputPath ("-" or "" for stdout).
func Report(coverageFile string, format string, outputPath string) error {
	store := kindcoverage.NewStore(coverageFile)
	if !store.Exists() {
		return fmt.Errorf("coverage file not found: %s (run 'iontok scan' first)", coverageFile)
	}

	cov, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load coverage data: %w", err)
	}

	if !report.ValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, report.SupportedFormats())
	}

	// A saved coverage file carries no per-file batch results, so the
	// conformance mismatch table is rendered empty; mismatches are only
	// available immediately after `iontok scan`.
	scanReport := report.NewScanReport(cov, []batch.FileResult{})

	formatter, err := report.GetFormatter(report.FormatType(format), scanReport)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout
	if outputPath != "-" && outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := formatter.Format(writer); err != nil {
		return fmt.Errorf("failed to format coverage data: %w", err)
	}

	if outputPath != "-" && outputPath != "" {
		logger.Default().Info("report written to %s", outputPath)
	}

	return nil
}
