package kindcoverage

import "github.com/ionscan/iontok/internal/lexer"

// Collector accumulates (TokenKind|KeywordTag, file) observations emitted
// by a scan. It wraps a Coverage and exposes an append-only API over it
// rather than letting callers mutate Coverage.Files directly.
type Collector struct {
	coverage *Coverage
}

// NewCollector creates a new, empty Collector.
func NewCollector() *Collector {
	return &Collector{coverage: NewCoverage()}
}

// AddObservation records one occurrence of kind in file.
func (c *Collector) AddObservation(file string, kind lexer.TokenKind) {
	c.coverage.AddKindHit(file, kind)
}

// AddObservationCount records n occurrences of kind in file in one step.
func (c *Collector) AddObservationCount(file string, kind lexer.TokenKind, n int) {
	if n <= 0 {
		return
	}
	c.coverage.fileCoverage(file).Kinds[kind.String()] += n
}

// AddKeywordObservation records one occurrence of kw in file.
func (c *Collector) AddKeywordObservation(file string, kw lexer.KeywordTag) {
	c.coverage.AddKeywordHit(file, kw)
}

// AddKeywordObservationCount records n occurrences of kw in file in one
// step.
func (c *Collector) AddKeywordObservationCount(file string, kw lexer.KeywordTag, n int) {
	if kw == lexer.KeywordNone || n <= 0 {
		return
	}
	c.coverage.fileCoverage(file).Keywords[kw.String()] += n
}

// Coverage returns the aggregated coverage data.
func (c *Collector) Coverage() *Coverage {
	return c.coverage
}

// Reset clears all collected coverage data.
func (c *Collector) Reset() {
	c.coverage = NewCoverage()
}

// Merge folds other's observations into c.
func (c *Collector) Merge(other *Collector) {
	for file, otherFC := range other.coverage.Files {
		fc := c.coverage.fileCoverage(file)
		for kind, hits := range otherFC.Kinds {
			fc.Kinds[kind] += hits
		}
		for kw, hits := range otherFC.Keywords {
			fc.Keywords[kw] += hits
		}
	}
}
