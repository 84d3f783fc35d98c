package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ionscan/iontok/internal/batch"
	"github.com/ionscan/iontok/internal/config"
	"github.com/ionscan/iontok/internal/discovery"
	"github.com/ionscan/iontok/internal/kindcoverage"
	"github.com/ionscan/iontok/internal/logger"
)

// Scan discovers every *.ion file under root, batch-tokenizes them, saves
// the folded kind/keyword coverage to cfg.CoverageFile, and prints a
// pass/fail conformance summary to out. It returns the number of
// conformance mismatches found; a non-zero count is the caller's signal
// to exit with a non-zero status.
func Scan(ctx context.Context, cfg config.Config, root string, out io.Writer) (int, error) {
	start := time.Now()
	log := logger.Default()
	log.SetVerbose(cfg.Verbose)

	files, err := discovery.Discover(root)
	if err != nil {
		return 0, fmt.Errorf("failed to discover conformance files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No *.ion files found under %s\n", root)
		return 0, nil
	}
	log.Info("discovered %d Ion file(s) under %s", len(files), root)

	results := batch.RunBatch(ctx, files, cfg.Workers)

	collector := kindcoverage.NewCollector()
	batch.CollectInto(collector, results)

	store := kindcoverage.NewStore(cfg.CoverageFile)
	if err := store.Save(collector.Coverage()); err != nil {
		return 0, fmt.Errorf("failed to save coverage data: %w", err)
	}

	mismatches := batch.Mismatches(results)

	totalTokens := 0
	for _, r := range results {
		totalTokens += r.TokenCount
		log.Debug("tokenized %s (%s): %d token(s)", r.File.RelativePath, r.File.Class, r.TokenCount)
	}

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Files:      %d scanned\n", len(results))
	fmt.Fprintf(out, "Tokens:     %d produced\n", totalTokens)
	fmt.Fprintf(out, "Kinds:      %.1f%% covered\n", collector.Coverage().KindCoveragePercent())
	fmt.Fprintf(out, "Keywords:   %.1f%% covered\n", collector.Coverage().KeywordCoveragePercent())
	fmt.Fprintf(out, "Mismatches: %d\n", len(mismatches))
	fmt.Fprintf(out, "Time:       %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(out, "\n")

	for _, m := range mismatches {
		if m.Err != nil {
			log.Error("mismatch %s (%s): %d:%d: %v", m.File.RelativePath, m.File.Class, m.Line, m.Offset, m.Err)
		} else {
			log.Error("mismatch %s (%s): tokenized cleanly but expected a lexical error", m.File.RelativePath, m.File.Class)
		}
	}

	fmt.Fprintf(out, "\nCoverage data written to %s\n", store.Path())

	return len(mismatches), nil
}
