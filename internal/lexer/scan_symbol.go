package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// scanPlainSymbol consumes an unquoted identifier: [A-Za-z0-9_$]+. The
// first character has already been confirmed (not consumed) by the
// dispatcher in fillQueue.
func (t *Tokenizer) scanPlainSymbol(start int) (Token, error) {
	if _, err := t.dec.readChar(); err != nil {
		return Token{}, err
	}
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if c == -1 || !isIdentChar(c) {
			t.dec.unreadChar(c)
			break
		}
	}
	return Token{Kind: SYMBOL_BASIC, Start: start, End: t.dec.position()}, nil
}

// scanQuotedSymbolOrLongString handles the "'" dispatch branch. An
// immediate second and third "'" promotes the token to a triple-quoted
// long string; otherwise it scans a normal quoted symbol.
func (t *Tokenizer) scanQuotedSymbolOrLongString(start int) (Token, error) {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	if _, err := t.dec.readChar(); err != nil { // opening '
		return Token{}, err
	}
	contentStart := t.dec.position()

	c2, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if c2 != '\'' {
		t.dec.unreadChar(c2)
		return t.scanQuotedSymbolBody(contentStart, line, offset)
	}

	c3, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if c3 == '\'' {
		return t.scanLongStringBody()
	}
	// "''" not followed by a third quote: an empty quoted symbol.
	t.dec.unreadChar(c3)
	return Token{Kind: SYMBOL_QUOTED, Start: contentStart, End: contentStart}, nil
}

func (t *Tokenizer) scanQuotedSymbolBody(contentStart, line, offset int) (Token, error) {
	for {
		posBefore := t.dec.position()
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		switch c {
		case -1:
			return Token{}, lexerrors.NewUnexpectedEOFError(line, offset, "quoted symbol")
		case '\'':
			return Token{Kind: SYMBOL_QUOTED, Start: contentStart, End: posBefore}, nil
		case '\n':
			return Token{}, lexerrors.NewBadTokenError(t.dec.currentLine(), t.dec.currentOffset(), "unescaped newline in quoted symbol")
		case '\\':
			if _, err := scanEscape(t.dec, line, offset, "quoted symbol"); err != nil {
				return Token{}, err
			}
		}
	}
}

// scanLongStringBody scans the content of a triple-quoted string after the
// opening "'''" has already been consumed. Closing requires three
// consecutive "'"; a lone "'" or "''" inside the body is literal content.
// Concatenation of adjacent long-string segments (separated only by
// whitespace/comments) is the enclosing parser's responsibility, not the
// tokenizer's.
func (t *Tokenizer) scanLongStringBody() (Token, error) {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	contentStart := t.dec.position()
	hasHighCodePoint := false
	sawWideEscape := false

	for {
		posBefore := t.dec.position()
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		switch c {
		case -1:
			return Token{}, lexerrors.NewUnexpectedEOFError(line, offset, "long string")
		case '\'':
			two, err := t.dec.peekN(2)
			if err != nil {
				return Token{}, err
			}
			if len(two) == 2 && two[0] == '\'' && two[1] == '\'' {
				t.dec.readChar()
				t.dec.readChar()
				kind := STRING_CLOB_LONG
				if hasHighCodePoint || sawWideEscape {
					kind = STRING_UTF8_LONG
				}
				return Token{Kind: kind, Start: contentStart, End: posBefore}, nil
			}
		case '\\':
			res, err := scanEscape(t.dec, line, offset, "long string")
			if err != nil {
				return Token{}, err
			}
			if res.wide {
				sawWideEscape = true
			}
			for _, r := range res.runes {
				if r > 0xFF {
					hasHighCodePoint = true
				}
			}
		default:
			if c > 0xFF {
				hasHighCodePoint = true
			}
		}
	}
}

// scanOperatorSymbol consumes a run of operator characters. When the first
// character is '+' or '-', it first peeks for a trailing "inf" (followed by
// a non-identifier character or end of run) and emits a FLOAT token for
// the signed-infinity literals instead.
func (t *Tokenizer) scanOperatorSymbol(start int) (Token, error) {
	first, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if first == '+' || first == '-' {
		ahead, err := t.dec.peekN(4)
		if err != nil {
			return Token{}, err
		}
		if len(ahead) >= 3 && ahead[0] == 'i' && ahead[1] == 'n' && ahead[2] == 'f' {
			terminates := len(ahead) < 4 || !isIdentChar(ahead[3])
			if terminates {
				t.dec.readChar()
				t.dec.readChar()
				t.dec.readChar()
				return Token{Kind: FLOAT, Start: start, End: t.dec.position()}, nil
			}
		}
	}
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if c == -1 || !isOperatorChar(c) {
			t.dec.unreadChar(c)
			break
		}
	}
	return Token{Kind: SYMBOL_OPERATOR, Start: start, End: t.dec.position()}, nil
}
