// Package lexer implements a streaming lexical analyzer for the Ion text
// data format. It produces a lazy sequence of token descriptors (kind plus
// a half-open byte range) for consumption by a higher-level value parser;
// it does not itself build a value tree, manage symbol tables, or decode
// binary Ion.
//
// The dispatch in fillQueue (see tokenizer.go) is a Scan-on-demand
// recognizer that returns raw source spans rather than decoded values,
// leaving decoding to a later, on-demand step; keyword resolution is
// likewise deferred to a separate lookup once a plain symbol's span is
// known.
package lexer

import "fmt"

// TokenKind is the lexical category of a token. The set is closed; see the
// constants below for the complete list.
type TokenKind int

const (
	ERROR TokenKind = iota
	EOF

	INT
	HEX
	DECIMAL
	FLOAT
	TIMESTAMP
	BLOB

	SYMBOL_BASIC
	SYMBOL_QUOTED
	SYMBOL_OPERATOR

	STRING_UTF8
	STRING_UTF8_LONG
	STRING_CLOB
	STRING_CLOB_LONG

	DOT
	COMMA
	COLON
	DOUBLE_COLON

	OPEN_PAREN
	CLOSE_PAREN
	OPEN_BRACE
	CLOSE_BRACE
	OPEN_SQUARE
	CLOSE_SQUARE

	OPEN_DOUBLE_BRACE
	CLOSE_DOUBLE_BRACE

	tokenKindCount // sentinel; not a valid token kind
)

var tokenKindNames = [tokenKindCount]string{
	ERROR:              "ERROR",
	EOF:                "EOF",
	INT:                "INT",
	HEX:                "HEX",
	DECIMAL:            "DECIMAL",
	FLOAT:              "FLOAT",
	TIMESTAMP:          "TIMESTAMP",
	BLOB:               "BLOB",
	SYMBOL_BASIC:       "SYMBOL_BASIC",
	SYMBOL_QUOTED:      "SYMBOL_QUOTED",
	SYMBOL_OPERATOR:    "SYMBOL_OPERATOR",
	STRING_UTF8:        "STRING_UTF8",
	STRING_UTF8_LONG:   "STRING_UTF8_LONG",
	STRING_CLOB:        "STRING_CLOB",
	STRING_CLOB_LONG:   "STRING_CLOB_LONG",
	DOT:                "DOT",
	COMMA:              "COMMA",
	COLON:              "COLON",
	DOUBLE_COLON:       "DOUBLE_COLON",
	OPEN_PAREN:         "OPEN_PAREN",
	CLOSE_PAREN:        "CLOSE_PAREN",
	OPEN_BRACE:         "OPEN_BRACE",
	CLOSE_BRACE:        "CLOSE_BRACE",
	OPEN_SQUARE:        "OPEN_SQUARE",
	CLOSE_SQUARE:       "CLOSE_SQUARE",
	OPEN_DOUBLE_BRACE:  "OPEN_DOUBLE_BRACE",
	CLOSE_DOUBLE_BRACE: "CLOSE_DOUBLE_BRACE",
}

// String returns the symbolic name of a token kind, or a placeholder for an
// out-of-range value.
func (k TokenKind) String() string {
	if k < 0 || int(k) >= int(tokenKindCount) {
		return fmt.Sprintf("<invalid token kind %d>", int(k))
	}
	return tokenKindNames[k]
}

// AllTokenKinds returns the 26 token kinds from EOF through
// CLOSE_DOUBLE_BRACE, in declaration order. ERROR is not included: it is
// the kind Lookahead reports alongside a lexical error, not a token kind.
func AllTokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, int(tokenKindCount))
	for k := EOF; k < tokenKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// EmittableTokenKinds returns the TokenKinds a Tokenizer can actually
// enqueue as a scanned token. ERROR is never enqueued: a lexical error is
// returned as a Go error instead of a Token. CLOSE_DOUBLE_BRACE is never
// enqueued either: fillQueue always tokenizes "}}" as two CLOSE_BRACE
// tokens, leaving the blob/clob-vs-double-struct-close ambiguity to
// IsReallyDoubleBrace. Used by internal/kindcoverage so a coverage
// percentage is not permanently capped below 100% by kinds no scan can
// ever produce.
func EmittableTokenKinds() []TokenKind {
	kinds := make([]TokenKind, 0, int(tokenKindCount))
	for k := TokenKind(0); k < tokenKindCount; k++ {
		if k == ERROR || k == CLOSE_DOUBLE_BRACE {
			continue
		}
		kinds = append(kinds, k)
	}
	return kinds
}

// Token is a descriptor for a single lexical token: its kind and the
// half-open byte range [Start, End) in the source buffer that holds its
// content, excluding framing delimiters (quotes, but not the 0x prefix of a
// HEX token). End excludes the terminating character (closing quote, or the
// value-terminator of a number).
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// Len returns the byte length of the token's range.
func (t Token) Len() int { return t.End - t.Start }
