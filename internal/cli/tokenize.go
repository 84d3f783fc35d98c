// Package cli implements the workflows behind the iontok command-line
// tool: tokenizing a single input, batch-scanning a conformance corpus,
// and rendering a saved coverage report.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ionscan/iontok/internal/lexer"
)

// tokenRecord is the JSON projection of one scanned token.
type tokenRecord struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Line    int    `json:"line"`
	Offset  int    `json:"offset"`
}

// Tokenize reads src to EOF (or its first lexical error), writing the
// token stream to out in either "text" or "json" format. It returns a
// non-nil error when the input contains a lexical error, after having
// already printed every token that preceded it.
func Tokenize(src io.Reader, out io.Writer, format string) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	tok := lexer.NewTokenizer(data)
	defer tok.Close()

	switch format {
	case "json":
		return tokenizeJSON(tok, out)
	case "text", "":
		return tokenizeText(tok, out)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

func tokenizeText(tok *lexer.Tokenizer, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	for {
		kind, err := tok.CurrentToken()
		if err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
		text, err := tok.ValueAsString()
		if err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
		fmt.Fprintf(w, "%-16s %q\n", kind, text)
		if kind == lexer.EOF {
			return nil
		}
		if err := tok.ConsumeToken(); err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
	}
}

func tokenizeJSON(tok *lexer.Tokenizer, out io.Writer) error {
	enc := json.NewEncoder(out)
	for {
		kind, err := tok.CurrentToken()
		if err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
		text, err := tok.ValueAsString()
		if err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
		rec := tokenRecord{Kind: kind.String(), Text: text, Line: tok.LineNumber(), Offset: tok.LineOffset()}
		if err := enc.Encode(rec); err != nil {
			return err
		}
		if kind == lexer.EOF {
			return nil
		}
		if err := tok.ConsumeToken(); err != nil {
			return fmt.Errorf("%d:%d: %w", tok.LineNumber(), tok.LineOffset(), err)
		}
	}
}

// OpenInput opens path for reading, treating "-" as stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}
