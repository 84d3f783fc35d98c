// Package kindcoverage tracks which of the Ion token kinds and keyword
// tags a conformance corpus scan actually exercised, persisting the result
// as JSON.
package kindcoverage

import (
	"time"

	"github.com/ionscan/iontok/internal/lexer"
)

// schemaVersion is bumped whenever the JSON shape changes incompatibly.
const schemaVersion = "1.0"

// FileCoverage is the per-file set of observed TokenKind and KeywordTag
// values with hit counts, keyed by the file's path relative to the scan
// root.
type FileCoverage struct {
	Kinds    map[string]int `json:"kinds"`              // TokenKind name -> hit count
	Keywords map[string]int `json:"keywords,omitempty"` // KeywordTag spelling -> hit count
}

// newFileCoverage creates an empty FileCoverage.
func newFileCoverage() *FileCoverage {
	return &FileCoverage{
		Kinds:    make(map[string]int),
		Keywords: make(map[string]int),
	}
}

// Coverage is the aggregate of FileCoverage across a corpus scan.
type Coverage struct {
	Version   string                   `json:"version"`
	Timestamp time.Time                `json:"timestamp"`
	Files     map[string]*FileCoverage `json:"files"`
}

// NewCoverage creates an empty Coverage instance.
func NewCoverage() *Coverage {
	return &Coverage{
		Version:   schemaVersion,
		Timestamp: time.Now(),
		Files:     make(map[string]*FileCoverage),
	}
}

// fileCoverage returns (creating if necessary) the FileCoverage for file.
func (c *Coverage) fileCoverage(file string) *FileCoverage {
	if c.Files == nil {
		c.Files = make(map[string]*FileCoverage)
	}
	fc, ok := c.Files[file]
	if !ok {
		fc = newFileCoverage()
		c.Files[file] = fc
	}
	return fc
}

// AddKindHit records one observation of kind in file.
func (c *Coverage) AddKindHit(file string, kind lexer.TokenKind) {
	c.fileCoverage(file).Kinds[kind.String()]++
}

// AddKeywordHit records one observation of kw in file.
func (c *Coverage) AddKeywordHit(file string, kw lexer.KeywordTag) {
	if kw == lexer.KeywordNone {
		return
	}
	c.fileCoverage(file).Keywords[kw.String()]++
}

// observedKinds returns the set of TokenKind names observed anywhere in
// the corpus.
func (c *Coverage) observedKinds() map[string]bool {
	seen := make(map[string]bool)
	for _, fc := range c.Files {
		for name, hits := range fc.Kinds {
			if hits > 0 {
				seen[name] = true
			}
		}
	}
	return seen
}

func (c *Coverage) observedKeywords() map[string]bool {
	seen := make(map[string]bool)
	for _, fc := range c.Files {
		for name, hits := range fc.Keywords {
			if hits > 0 {
				seen[name] = true
			}
		}
	}
	return seen
}

// KindCoveragePercent reports the fraction of the 25 token kinds a
// Tokenizer can emit (lexer.EmittableTokenKinds: every kind except ERROR
// and CLOSE_DOUBLE_BRACE) observed at least once across the whole corpus.
func (c *Coverage) KindCoveragePercent() float64 {
	all := lexer.EmittableTokenKinds()
	if len(all) == 0 {
		return 0
	}
	seen := c.observedKinds()
	covered := 0
	for _, k := range all {
		if seen[k.String()] {
			covered++
		}
	}
	return float64(covered) / float64(len(all)) * 100.0
}

// KeywordCoveragePercent reports the fraction of the 19 keyword tags
// observed at least once across the whole corpus.
func (c *Coverage) KeywordCoveragePercent() float64 {
	all := lexer.AllKeywordTags()
	if len(all) == 0 {
		return 0
	}
	seen := c.observedKeywords()
	covered := 0
	for _, k := range all {
		if seen[k.String()] {
			covered++
		}
	}
	return float64(covered) / float64(len(all)) * 100.0
}

// UncoveredKinds returns the token kinds never observed in the corpus, in
// declaration order.
func (c *Coverage) UncoveredKinds() []lexer.TokenKind {
	seen := c.observedKinds()
	var out []lexer.TokenKind
	for _, k := range lexer.EmittableTokenKinds() {
		if !seen[k.String()] {
			out = append(out, k)
		}
	}
	return out
}

// UncoveredKeywords returns the keyword tags never observed in the
// corpus, in declaration order.
func (c *Coverage) UncoveredKeywords() []lexer.KeywordTag {
	seen := c.observedKeywords()
	var out []lexer.KeywordTag
	for _, k := range lexer.AllKeywordTags() {
		if !seen[k.String()] {
			out = append(out, k)
		}
	}
	return out
}

// GetFiles returns the list of files with recorded coverage data.
func (c *Coverage) GetFiles() []string {
	files := make([]string, 0, len(c.Files))
	for f := range c.Files {
		files = append(files, f)
	}
	return files
}
