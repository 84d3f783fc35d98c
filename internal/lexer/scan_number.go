package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// isNumberTerminator reports whether c may legally follow a number or
// timestamp token. In addition to the common value-terminator set, any
// operator character is accepted: an operator symbol, including a leading
// "/" of a comment, always begins its own token, so a number is never
// required to be separated from one by whitespace. S-expressions rely on
// that adjacency for forms like "(1+2)".
func isNumberTerminator(c rune) bool {
	if isValueTerminator(c) {
		return true
	}
	if c == '\'' {
		return true
	}
	return isOperatorChar(c)
}

// scanNumber implements the number scanner: integer, hex, decimal, float,
// and the handoff into the timestamp scanner when the digit run turns out
// to be a year. hasSign indicates the leading '-' has been peeked but not
// yet consumed (the dispatcher never commits a character before routing).
func (t *Tokenizer) scanNumber(start int, hasSign bool) (Token, error) {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()

	if hasSign {
		if _, err := t.dec.readChar(); err != nil { // consume '-'
			return Token{}, err
		}
	}

	d0, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if !isDigit(d0) {
		return Token{}, lexerrors.NewBadTokenError(line, offset, "expected digit")
	}

	if d0 == '0' {
		next, err := t.dec.peekChar()
		if err != nil {
			return Token{}, err
		}
		if next == 'x' || next == 'X' {
			return t.scanHex(start, line, offset)
		}
	}

	year := int(d0 - '0')
	digitCount := 1
	if d0 != '0' {
		for {
			c, err := t.dec.readChar()
			if err != nil {
				return Token{}, err
			}
			if !isDigit(c) {
				t.dec.unreadChar(c)
				break
			}
			digitCount++
			if digitCount <= 4 {
				year = year*10 + int(c-'0')
			}
		}
	}

	kind := INT

	next, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	switch {
	case next == '.':
		kind = DECIMAL
		for {
			c, err := t.dec.readChar()
			if err != nil {
				return Token{}, err
			}
			if !isDigit(c) {
				t.dec.unreadChar(c)
				break
			}
		}
	case (next == '-' || next == 'T') && !hasSign && digitCount == 4:
		return t.scanTimestamp(start, year, next == 'T')
	default:
		t.dec.unreadChar(next)
	}

	if exp, err := t.maybeScanExponent(); err != nil {
		return Token{}, err
	} else if exp == 'e' || exp == 'E' {
		kind = FLOAT
	} else if exp == 'd' || exp == 'D' {
		kind = DECIMAL
	}

	end := t.dec.position()
	term, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}
	if !isNumberTerminator(term) {
		return Token{}, lexerrors.NewBadTokenErrorAt(t.dec.currentLine(), t.dec.currentOffset(), term, "missing value terminator after number")
	}
	return Token{Kind: kind, Start: start, End: end}, nil
}

// maybeScanExponent consumes an optional e/E or d/D exponent marker
// (sign, then a required digit run) and returns the marker rune it saw, or
// 0 if there was none.
func (t *Tokenizer) maybeScanExponent() (rune, error) {
	marker, err := t.dec.readChar()
	if err != nil {
		return 0, err
	}
	if marker != 'e' && marker != 'E' && marker != 'd' && marker != 'D' {
		t.dec.unreadChar(marker)
		return 0, nil
	}
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	c, err := t.dec.readChar()
	if err != nil {
		return 0, err
	}
	if c == '+' || c == '-' {
		c, err = t.dec.readChar()
		if err != nil {
			return 0, err
		}
	}
	if !isDigit(c) {
		return 0, lexerrors.NewBadTokenError(line, offset, "malformed exponent")
	}
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return 0, err
		}
		if !isDigit(c) {
			t.dec.unreadChar(c)
			break
		}
	}
	return marker, nil
}

// scanHex scans "0x"/"0X" followed by at least one hex digit.
func (t *Tokenizer) scanHex(start int, line, offset int) (Token, error) {
	t.dec.readChar() // consume 'x'/'X'
	count := 0
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if !isHexDigit(c) {
			t.dec.unreadChar(c)
			break
		}
		count++
	}
	if count == 0 {
		return Token{}, lexerrors.NewBadTokenError(line, offset, "hex literal requires at least one digit")
	}
	end := t.dec.position()
	term, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}
	if !isNumberTerminator(term) {
		return Token{}, lexerrors.NewBadTokenErrorAt(t.dec.currentLine(), t.dec.currentOffset(), term, "missing value terminator after hex literal")
	}
	return Token{Kind: HEX, Start: start, End: end}, nil
}
