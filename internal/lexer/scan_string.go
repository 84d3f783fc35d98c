package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// scanShortString scans a double-quoted string. It tracks whether any
// decoded code point exceeds 0xFF or a \u/\U escape was used to decide
// between STRING_UTF8 and STRING_CLOB; a \xHH escape never counts toward
// the high-byte criterion even when HH > 0x7F, so a string stays
// clob-compatible under any \x content.
func (t *Tokenizer) scanShortString(start int) (Token, error) {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	if _, err := t.dec.readChar(); err != nil { // opening '"'
		return Token{}, err
	}
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
			return Token{}, lexerrors.NewUnexpectedEOFError(line, offset, "string")
		case '"':
			kind := STRING_CLOB
			if hasHighCodePoint || sawWideEscape {
				kind = STRING_UTF8
			}
			return Token{Kind: kind, Start: contentStart, End: posBefore}, nil
		case '\n':
			return Token{}, lexerrors.NewBadTokenError(t.dec.currentLine(), t.dec.currentOffset(), "unescaped newline in string")
		case '\\':
			res, err := scanEscape(t.dec, line, offset, "string")
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
