package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ionscan/iontok/internal/discovery"
	"github.com/ionscan/iontok/internal/kindcoverage"
	"github.com/ionscan/iontok/internal/lexer"
)

func TestTokenizeCountsKindsAndKeywords(t *testing.T) {
	count, kinds, keywords, err, _, _ := Tokenize([]byte(`{a:true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// OPEN_BRACE, SYMBOL_BASIC(a), COLON, SYMBOL_BASIC(true), CLOSE_BRACE, EOF
	if count != 6 {
		t.Fatalf("got %d tokens, want 6", count)
	}
	if kinds[lexer.SYMBOL_BASIC] != 2 {
		t.Fatalf("got %d SYMBOL_BASIC, want 2", kinds[lexer.SYMBOL_BASIC])
	}
	if keywords[lexer.KeywordTrue] != 1 {
		t.Fatalf("got %d KeywordTrue hits, want 1", keywords[lexer.KeywordTrue])
	}
	if keywords[lexer.KeywordNone] != 0 {
		t.Fatalf("KeywordNone must never be recorded as a hit")
	}
}

func TestTokenizeReportsLexicalError(t *testing.T) {
	_, _, _, err, line, _ := Tokenize([]byte("01"))
	if err == nil {
		t.Fatal("expected lexical error for leading-zero integer")
	}
	if line != 1 {
		t.Fatalf("got line %d, want 1", line)
	}
}

func TestRunBatchFlagsConformanceMismatches(t *testing.T) {
	root := t.TempDir()
	writeIon(t, filepath.Join(root, "good", "ok.ion"), "1 2 3")
	writeIon(t, filepath.Join(root, "good", "broken.ion"), "01")
	writeIon(t, filepath.Join(root, "bad", "shouldfail.ion"), "01")
	writeIon(t, filepath.Join(root, "bad", "accidentallyok.ion"), "1 2 3")

	files, err := discovery.Discover(root)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	results := RunBatch(context.Background(), files, 2)
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	mismatches := Mismatches(results)
	if len(mismatches) != 2 {
		t.Fatalf("got %d mismatches, want 2: %+v", len(mismatches), mismatches)
	}
	for _, m := range mismatches {
		base := filepath.Base(m.File.Path)
		if base != "broken.ion" && base != "accidentallyok.ion" {
			t.Errorf("unexpected mismatch for %s", base)
		}
	}
}

func TestRunBatchEmptyInput(t *testing.T) {
	results := RunBatch(context.Background(), nil, 4)
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0", len(results))
	}
}

func TestCollectIntoAggregatesAcrossFiles(t *testing.T) {
	results := []FileResult{
		{
			File:     discovery.DiscoveredFile{RelativePath: "a.ion"},
			Kinds:    map[lexer.TokenKind]int{lexer.INT: 3},
			Keywords: map[lexer.KeywordTag]int{lexer.KeywordTrue: 1},
		},
		{
			File:  discovery.DiscoveredFile{RelativePath: "b.ion"},
			Kinds: map[lexer.TokenKind]int{lexer.INT: 1, lexer.FLOAT: 2},
		},
	}
	c := kindcoverage.NewCollector()
	CollectInto(c, results)

	if got := c.Coverage().Files["a.ion"].Kinds["INT"]; got != 3 {
		t.Errorf("got a.ion INT=%d, want 3", got)
	}
	if got := c.Coverage().Files["b.ion"].Kinds["FLOAT"]; got != 2 {
		t.Errorf("got b.ion FLOAT=%d, want 2", got)
	}
}

func writeIon(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
