// Package batch tokenizes many files concurrently with a bounded worker
// pool, the repository's only concurrent component: each goroutine owns
// its own lexer.Tokenizer (a Tokenizer is not safe for concurrent use, so
// one is never shared across goroutines). Workers take file indices from a
// channel and store each result at its file's index, so output order
// matches input order.
package batch

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/ionscan/iontok/internal/discovery"
	"github.com/ionscan/iontok/internal/kindcoverage"
	"github.com/ionscan/iontok/internal/lexer"
)

// FileResult is the outcome of tokenizing one discovered file to EOF or to
// its first lexical error.
type FileResult struct {
	File       discovery.DiscoveredFile
	TokenCount int
	Kinds      map[lexer.TokenKind]int
	Keywords   map[lexer.KeywordTag]int
	Err        error // first lexical error, if any
	Line       int   // line of Err, if Err != nil
	Offset     int   // column of Err, if Err != nil

	// Mismatch is true when the conformance convention the file's Class
	// asserts was violated: a ClassGood file that errored, or a ClassBad
	// file that tokenized cleanly to EOF.
	Mismatch bool
}

// Tokenize scans src to EOF (or to the first lexical error), recording
// per-kind and per-keyword hit counts along the way. Plain symbols are
// looked up against the keyword table the same way an enclosing value
// parser would, so that `scan`'s coverage reporting reflects keyword
// usage, not just token-kind usage.
func Tokenize(src []byte) (tokenCount int, kinds map[lexer.TokenKind]int, keywords map[lexer.KeywordTag]int, lexErr error, line, offset int) {
	kinds = make(map[lexer.TokenKind]int)
	keywords = make(map[lexer.KeywordTag]int)

	tok := lexer.NewTokenizer(src)
	for {
		kind, err := tok.CurrentToken()
		if err != nil {
			return tokenCount, kinds, keywords, err, tok.LineNumber(), tok.LineOffset()
		}
		kinds[kind]++
		tokenCount++
		if kind == lexer.EOF {
			return tokenCount, kinds, keywords, nil, 0, 0
		}
		if kind == lexer.SYMBOL_BASIC {
			if kw, ok := tok.Keyword(tok.ValueStart(), tok.ValueEnd()); ok {
				keywords[kw]++
			}
		}
		if err := tok.ConsumeToken(); err != nil {
			return tokenCount, kinds, keywords, err, tok.LineNumber(), tok.LineOffset()
		}
	}
}

// tokenizeFile reads and tokenizes a single discovered file, producing its
// FileResult.
func tokenizeFile(file discovery.DiscoveredFile) FileResult {
	res := FileResult{File: file}

	data, err := os.ReadFile(file.Path)
	if err != nil {
		res.Err = err
		return res
	}

	res.TokenCount, res.Kinds, res.Keywords, res.Err, res.Line, res.Offset = Tokenize(data)

	switch file.Class {
	case discovery.ClassGood:
		res.Mismatch = res.Err != nil
	case discovery.ClassBad:
		res.Mismatch = res.Err == nil
	}
	return res
}

// RunBatch tokenizes each of files using a bounded pool of workers
// goroutines (runtime.NumCPU() when workers <= 0), returning one
// FileResult per input file in input order. ctx cancellation stops
// dispatching new work; files already in flight still complete.
func RunBatch(ctx context.Context, files []discovery.DiscoveredFile, workers int) []FileResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results
	}

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results[i] = FileResult{File: files[i], Err: ctx.Err()}
					continue
				}
				results[i] = tokenizeFile(files[i])
			}
		}()
	}
	wg.Wait()

	return results
}

// CollectInto folds every FileResult's kind/keyword observations into c,
// keyed by each file's RelativePath.
func CollectInto(c *kindcoverage.Collector, results []FileResult) {
	for _, r := range results {
		for kind, hits := range r.Kinds {
			c.AddObservationCount(r.File.RelativePath, kind, hits)
		}
		for kw, hits := range r.Keywords {
			c.AddKeywordObservationCount(r.File.RelativePath, kw, hits)
		}
	}
}

// Mismatches returns the subset of results flagged as conformance
// mismatches.
func Mismatches(results []FileResult) []FileResult {
	var out []FileResult
	for _, r := range results {
		if r.Mismatch {
			out = append(out, r)
		}
	}
	return out
}
