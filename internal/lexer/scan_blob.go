package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// ScanBase64Value scans a base-64 blob body after the parser has entered a
// "{{ ... }}" blob context (this scanner is invoked externally, not from
// fillQueue's dispatch, since "{{" alone is ambiguous between a blob and a
// double-brace-delimited clob until the parser inspects lobLookahead).
func (t *Tokenizer) ScanBase64Value() (Token, error) {
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if !isWhitespace(c) {
			t.dec.unreadChar(c)
			break
		}
	}

	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	start := t.dec.position()
	payloadLen := 0
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if !isBase64Char(c) {
			t.dec.unreadChar(c)
			break
		}
		payloadLen++
	}

	padLen := 0
	for padLen < 3 {
		c, err := t.dec.readChar()
		if err != nil {
			return Token{}, err
		}
		if c != '=' {
			t.dec.unreadChar(c)
			break
		}
		padLen++
	}
	end := t.dec.position()

	if (payloadLen+padLen)%4 != 0 {
		return Token{}, lexerrors.NewBadTokenError(line, offset, "base64 content length is not a multiple of four")
	}

	stop, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}
	if stop > 127 {
		return Token{}, lexerrors.NewBadTokenErrorAt(t.dec.currentLine(), t.dec.currentOffset(), stop, "non-ASCII byte in base64 content")
	}

	return Token{Kind: BLOB, Start: start, End: end}, nil
}

// LobLookahead skips whitespace and returns the next code point (or -1 at
// EOF) without consuming it, letting the parser decide between a quoted
// clob body and a base-64 blob body inside "{{ ... }}" before committing
// to either scan.
func (t *Tokenizer) LobLookahead() (int, error) {
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return 0, err
		}
		if !isWhitespace(c) {
			t.dec.unreadChar(c)
			return int(c), nil
		}
	}
}

// IsReallyDoubleBrace peeks one character after a CLOSE_BRACE has been
// consumed to decide whether it is paired with a second "}" closing a
// blob/clob. "}}" is never tokenized as a single token: it is ambiguous
// with two consecutive struct closes, so the parser opts in to this check
// only when it knows it is inside a lob context.
func (t *Tokenizer) IsReallyDoubleBrace() (bool, error) {
	c, err := t.dec.peekChar()
	if err != nil {
		return false, err
	}
	return c == '}', nil
}
