package lexer

import (
	"fmt"

	lexerrors "github.com/ionscan/iontok/internal/errors"
)

// Tokenizer is a streaming lexical analyzer over Ion text bytes. It
// produces token descriptors lazily: nothing past the deepest outstanding
// Lookahead request is ever scanned. A Tokenizer is not safe for
// concurrent use; callers must serialize their own access to its single
// src/pos cursor.
type Tokenizer struct {
	src   *byteSource
	dec   *charDecoder
	queue *tokenQueue
}

// NewTokenizer creates a Tokenizer over buf. The Tokenizer does not copy
// buf and holds it for its entire lifetime; callers must not mutate it
// while tokenizing.
func NewTokenizer(buf []byte) *Tokenizer {
	src := newByteSource(buf)
	return &Tokenizer{
		src:   src,
		dec:   newCharDecoder(src),
		queue: newTokenQueue(),
	}
}

// Reset rewinds the tokenizer to scan buf from the beginning, with a fresh
// byte source and decoder and an emptied token queue.
func (t *Tokenizer) Reset(buf []byte) {
	t.src = newByteSource(buf)
	t.dec = newCharDecoder(t.src)
	t.queue.reset()
}

// Close releases the tokenizer's reference to its input buffer.
func (t *Tokenizer) Close() {
	t.src = nil
	t.dec = nil
}

// Lookahead peeks the kind of the token k positions ahead (0..7),
// filling the queue as needed.
func (t *Tokenizer) Lookahead(k int) (TokenKind, error) {
	if err := t.fillQueue(k); err != nil {
		return ERROR, err
	}
	tok, _ := t.queue.peek(k)
	return tok.Kind, nil
}

// ConsumeToken discards the head token.
func (t *Tokenizer) ConsumeToken() error {
	if err := t.fillQueue(0); err != nil {
		return err
	}
	t.queue.dequeue()
	return nil
}

// CurrentToken returns the head token's kind, filling the queue if empty.
func (t *Tokenizer) CurrentToken() (TokenKind, error) {
	return t.Lookahead(0)
}

// ValueStart returns the head token's content start offset.
func (t *Tokenizer) ValueStart() int {
	tok, ok := t.queue.peek(0)
	if !ok {
		return t.dec.position()
	}
	return tok.Start
}

// ValueEnd returns the head token's content end offset.
func (t *Tokenizer) ValueEnd() int {
	tok, ok := t.queue.peek(0)
	if !ok {
		return t.dec.position()
	}
	return tok.End
}

// GetByte returns the byte at pos, or -1 if out of range. Used by the
// keyword recognizer and by callers that need random access without
// disturbing the read cursor.
func (t *Tokenizer) GetByte(pos int) int {
	return t.src.getByte(pos)
}

// Keyword identifies a reserved word in buf[start:end), delegating to the
// package-level length-then-prefix recognizer.
func (t *Tokenizer) Keyword(start, end int) (KeywordTag, bool) {
	if start < 0 || end > t.src.len() || start > end {
		return KeywordNone, false
	}
	return Keyword(t.src.buf[start:end])
}

// InputPosition renders the tokenizer's current logical position as
// "line:column", for diagnostics.
func (t *Tokenizer) InputPosition() string {
	return fmt.Sprintf("%d:%d", t.dec.currentLine(), t.dec.currentOffset())
}

// LineNumber returns the decoder's current 1-based line number.
func (t *Tokenizer) LineNumber() int { return t.dec.currentLine() }

// LineOffset returns the decoder's current 0-based column.
func (t *Tokenizer) LineOffset() int { return t.dec.currentOffset() }

// fillQueue ensures the queue holds at least k+1 tokens (k in 0..7),
// scanning one token at a time. Scanning past end of input yields EOF
// again, so once the input is exhausted each further scan enqueues
// another EOF token.
func (t *Tokenizer) fillQueue(k int) error {
	for t.queue.size() <= k {
		tok, err := t.scanOneToken()
		if err != nil {
			return err
		}
		t.queue.enqueue(tok)
	}
	return nil
}

// scanOneToken implements the main dispatch described by the Ion text
// specification's grammar: skip whitespace and comments, then branch on
// the first significant character. Each branch either resolves a
// fixed-width token inline or hands off to one of the scan_*.go scanners.
func (t *Tokenizer) scanOneToken() (Token, error) {
	if err := t.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	start := t.dec.position()
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	c, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}

	switch {
	case c == -1:
		t.dec.readChar()
		return Token{Kind: EOF, Start: start, End: start}, nil

	case c == ':':
		two, err := t.dec.peekN(2)
		if err != nil {
			return Token{}, err
		}
		t.dec.readChar()
		if len(two) == 2 && two[1] == ':' {
			t.dec.readChar()
			return Token{Kind: DOUBLE_COLON, Start: start, End: t.dec.position()}, nil
		}
		return Token{Kind: COLON, Start: start, End: t.dec.position()}, nil

	case c == '{':
		two, err := t.dec.peekN(2)
		if err != nil {
			return Token{}, err
		}
		t.dec.readChar()
		if len(two) == 2 && two[1] == '{' {
			t.dec.readChar()
			return Token{Kind: OPEN_DOUBLE_BRACE, Start: start, End: t.dec.position()}, nil
		}
		return Token{Kind: OPEN_BRACE, Start: start, End: t.dec.position()}, nil

	case c == '}':
		t.dec.readChar()
		return Token{Kind: CLOSE_BRACE, Start: start, End: t.dec.position()}, nil
	case c == '[':
		t.dec.readChar()
		return Token{Kind: OPEN_SQUARE, Start: start, End: t.dec.position()}, nil
	case c == ']':
		t.dec.readChar()
		return Token{Kind: CLOSE_SQUARE, Start: start, End: t.dec.position()}, nil
	case c == '(':
		t.dec.readChar()
		return Token{Kind: OPEN_PAREN, Start: start, End: t.dec.position()}, nil
	case c == ')':
		t.dec.readChar()
		return Token{Kind: CLOSE_PAREN, Start: start, End: t.dec.position()}, nil
	case c == ',':
		t.dec.readChar()
		return Token{Kind: COMMA, Start: start, End: t.dec.position()}, nil
	case c == '.':
		t.dec.readChar()
		return Token{Kind: DOT, Start: start, End: t.dec.position()}, nil

	case c == '\'':
		return t.scanQuotedSymbolOrLongString(start)
	case c == '"':
		return t.scanShortString(start)

	case isIdentStart(c):
		return t.scanPlainSymbol(start)
	case isDigit(c):
		return t.scanNumber(start, false)

	case c == '-':
		two, err := t.dec.peekN(2)
		if err != nil {
			return Token{}, err
		}
		if len(two) == 2 && isDigit(two[1]) {
			return t.scanNumber(start, true)
		}
		return t.scanOperatorSymbol(start)

	case c == '/':
		return t.scanOperatorSymbol(start)
	case isOperatorChar(c):
		return t.scanOperatorSymbol(start)

	default:
		t.dec.readChar()
		return Token{}, lexerrors.NewBadTokenStartError(line, offset, c)
	}
}

// skipWhitespaceAndComments consumes SPACE/TAB/newline runs and "// ..."
// / "/* ... */" comments, leaving the decoder positioned at the first
// character of the next token (or at EOF).
func (t *Tokenizer) skipWhitespaceAndComments() error {
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return err
		}
		switch {
		case c == -1:
			return nil
		case isWhitespace(c):
			continue
		case c == '/':
			c2, err := t.dec.readChar()
			if err != nil {
				return err
			}
			switch c2 {
			case '/':
				if err := t.skipLineComment(); err != nil {
					return err
				}
			case '*':
				if err := t.skipBlockComment(); err != nil {
					return err
				}
			default:
				t.dec.unreadChar(c2)
				t.dec.unreadChar(c)
				return nil
			}
		default:
			t.dec.unreadChar(c)
			return nil
		}
	}
}

func (t *Tokenizer) skipLineComment() error {
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return err
		}
		if c == -1 {
			return nil
		}
		if c == '\n' {
			t.dec.unreadChar(c)
			return nil
		}
	}
}

func (t *Tokenizer) skipBlockComment() error {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	for {
		c, err := t.dec.readChar()
		if err != nil {
			return err
		}
		if c == -1 {
			return lexerrors.NewUnexpectedEOFError(line, offset, "block comment")
		}
		if c == '*' {
			c2, err := t.dec.readChar()
			if err != nil {
				return err
			}
			if c2 == '/' {
				return nil
			}
			t.dec.unreadChar(c2)
		}
	}
}
