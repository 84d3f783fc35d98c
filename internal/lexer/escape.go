package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// escapeResult describes what a single backslash-escape contributed: the
// decoded rune(s) (zero, one, or two for a manufactured surrogate pair),
// and whether the escape was a \u or \U form. The STRING_UTF8/STRING_CLOB
// split cares about the latter independently of the decoded value, so the
// two pieces of information travel together through both the scan pass and
// the materialize pass rather than being re-derived twice.
type escapeResult struct {
	runes []rune
	wide  bool // \u or \U was used, regardless of decoded value
}

// scanEscape consumes one escape sequence immediately after a backslash
// already read from dec, validating its form. It is shared by the string
// scanners (which skip the escape and check its decoded value and form for
// the UTF8/CLOB decision) and the value materializer (which needs the
// decoded rune). detail names the enclosing
// construct for UnexpectedEof messages.
func scanEscape(dec *charDecoder, line, offset int, detail string) (escapeResult, error) {
	c, err := dec.readChar()
	if err != nil {
		return escapeResult{}, err
	}
	switch c {
	case '0':
		return escapeResult{runes: []rune{0}}, nil
	case 'a':
		return escapeResult{runes: []rune{'\a'}}, nil
	case 'b':
		return escapeResult{runes: []rune{'\b'}}, nil
	case 't':
		return escapeResult{runes: []rune{'\t'}}, nil
	case 'n':
		return escapeResult{runes: []rune{'\n'}}, nil
	case 'f':
		return escapeResult{runes: []rune{'\f'}}, nil
	case 'r':
		return escapeResult{runes: []rune{'\r'}}, nil
	case 'v':
		return escapeResult{runes: []rune{'\v'}}, nil
	case '"':
		return escapeResult{runes: []rune{'"'}}, nil
	case '\'':
		return escapeResult{runes: []rune{'\''}}, nil
	case '?':
		return escapeResult{runes: []rune{'?'}}, nil
	case '\\':
		return escapeResult{runes: []rune{'\\'}}, nil
	case '/':
		return escapeResult{runes: []rune{'/'}}, nil
	case '\n':
		// line continuation: contributes no character
		return escapeResult{}, nil
	case -1:
		return escapeResult{}, lexerrors.NewUnexpectedEOFError(line, offset, detail)
	case 'x':
		v, err := readHexDigits(dec, 2, line, offset)
		if err != nil {
			return escapeResult{}, err
		}
		// \xHH never counts toward the UTF8/CLOB high-byte criterion, even
		// when HH > 0x7F.
		return escapeResult{runes: []rune{rune(v)}}, nil
	case 'u':
		v, err := readHexDigits(dec, 4, line, offset)
		if err != nil {
			return escapeResult{}, err
		}
		return escapeResult{runes: []rune{rune(v)}, wide: true}, nil
	case 'U':
		v, err := readHexDigits(dec, 8, line, offset)
		if err != nil {
			return escapeResult{}, err
		}
		return escapeResult{runes: []rune{rune(v)}, wide: true}, nil
	default:
		return escapeResult{}, lexerrors.NewBadEscapeError(line, offset, "unknown escape character")
	}
}

func readHexDigits(dec *charDecoder, n int, line, offset int) (int, error) {
	v := 0
	for i := 0; i < n; i++ {
		c, err := dec.readChar()
		if err != nil {
			return 0, err
		}
		if c == -1 {
			return 0, lexerrors.NewUnexpectedEOFError(line, offset, "escape sequence")
		}
		if !isHexDigit(c) {
			return 0, lexerrors.NewBadEscapeError(line, offset, "expected hex digit")
		}
		v = v<<4 | hexValue(c)
	}
	return v, nil
}

func hexValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// isHighSurrogate / isLowSurrogate classify a \u-escaped value for pairing.
func isHighSurrogate(r rune) bool { return r >= 0xD800 && r <= 0xDBFF }
func isLowSurrogate(r rune) bool  { return r >= 0xDC00 && r <= 0xDFFF }

// combineSurrogates reconstructs the scalar value encoded by a high/low
// surrogate pair produced by two \uHHHH escapes.
func combineSurrogates(high, low rune) rune {
	return 0x10000 + (high-0xD800)<<10 + (low - 0xDC00)
}
