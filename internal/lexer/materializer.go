package lexer

import (
	"strings"

	lexerrors "github.com/ionscan/iontok/internal/errors"
)

// ValueAsString decodes the current token's byte range into caller-visible
// text.
func (t *Tokenizer) ValueAsString() (string, error) {
	return t.ValueAsStringRange(t.ValueStart(), t.ValueEnd())
}

// ValueAsStringRange decodes an arbitrary, previously tokenized byte range.
// An unpaired high surrogate remaining at the end of the range is a
// BadCharacter error.
func (t *Tokenizer) ValueAsStringRange(start, end int) (string, error) {
	text, pending, err := t.materialize(start, end, noPendingChar)
	if err != nil {
		return "", err
	}
	if pending != noPendingChar {
		return "", lexerrors.NewBadCharacterError(t.dec.currentLine(), t.dec.currentOffset(), "unpaired high surrogate at end of value")
	}
	return text, nil
}

// ValueAsStringChunk decodes one segment of a value that may continue
// across an adjacent segment (concatenated long strings). pendingHigh is a
// high surrogate carried over from the previous chunk's tail, or
// noPendingChar if there is none; the returned rune is the surrogate left
// pending at the end of this chunk, for the caller to thread into the next
// one and validate pairing.
func (t *Tokenizer) ValueAsStringChunk(start, end int, pendingHigh rune) (string, rune, error) {
	return t.materialize(start, end, pendingHigh)
}

// materialize decodes buf[start:end), resolving line-ending normalization
// and backslash escapes, and combining any \uHHHH surrogate pair (escaped
// or literal) back into a single scalar the way a Go string expects.
func (t *Tokenizer) materialize(start, end int, pendingHigh rune) (string, rune, error) {
	bounded := newByteSource(t.src.buf[:end])
	bounded.setPosition(start)
	dec := newCharDecoder(bounded)

	var sb strings.Builder
	pending := pendingHigh

	for {
		c, err := dec.readChar()
		if err != nil {
			return "", noPendingChar, err
		}
		if c == -1 {
			break
		}
		if c == '\\' {
			res, err := scanEscape(dec, dec.currentLine(), dec.currentOffset(), "value")
			if err != nil {
				return "", noPendingChar, err
			}
			for _, r := range res.runes {
				pending, err = appendRune(&sb, pending, r, dec)
				if err != nil {
					return "", noPendingChar, err
				}
			}
			continue
		}
		pending, err = appendRune(&sb, pending, c, dec)
		if err != nil {
			return "", noPendingChar, err
		}
	}
	return sb.String(), pending, nil
}

// appendRune writes r to sb, combining it with a carried pending high
// surrogate when present. It returns the new pending surrogate (r itself,
// if r is an unpaired high surrogate; otherwise noPendingChar).
func appendRune(sb *strings.Builder, pending rune, r rune, dec *charDecoder) (rune, error) {
	if pending != noPendingChar {
		if isLowSurrogate(r) {
			sb.WriteRune(combineSurrogates(pending, r))
			return noPendingChar, nil
		}
		return noPendingChar, lexerrors.NewBadCharacterError(dec.currentLine(), dec.currentOffset(), "unpaired high surrogate")
	}
	if isHighSurrogate(r) {
		return r, nil
	}
	if isLowSurrogate(r) {
		return noPendingChar, lexerrors.NewBadCharacterError(dec.currentLine(), dec.currentOffset(), "unpaired low surrogate")
	}
	sb.WriteRune(r)
	return noPendingChar, nil
}
