package lexer

import lexerrors "github.com/ionscan/iontok/internal/errors"

// scanTimestamp continues a number scan that turned out to be a
// timestamp: exactly four year digits have been read with no sign, and
// the character immediately following is either 'T' (year precision,
// already consumed by the caller) or '-' (also already consumed, with a
// month to follow).
func (t *Tokenizer) scanTimestamp(start, year int, yearOnly bool) (Token, error) {
	line, offset := t.dec.currentLine(), t.dec.currentOffset()
	if yearOnly {
		return t.finishTimestamp(start, line, offset)
	}

	month, err := t.readTwoDigits(line, offset)
	if err != nil {
		return Token{}, err
	}
	if month < 1 || month > 12 {
		return Token{}, lexerrors.NewBadTokenError(line, offset, "month out of range")
	}

	c, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if c != '-' {
		t.dec.unreadChar(c)
		return t.finishTimestamp(start, line, offset)
	}

	day, err := t.readTwoDigits(line, offset)
	if err != nil {
		return Token{}, err
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Token{}, lexerrors.NewBadTokenError(line, offset, "day out of range")
	}

	cT, err := t.dec.readChar()
	if err != nil {
		return Token{}, err
	}
	if cT != 'T' {
		t.dec.unreadChar(cT)
		return t.finishTimestamp(start, line, offset)
	}

	afterT, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}
	if !isDigit(afterT) {
		// bare trailing "T": day-precision timestamp, no time of day.
		return t.finishTimestamp(start, line, offset)
	}

	if err := t.scanTimeOfDay(line, offset); err != nil {
		return Token{}, err
	}
	if err := t.scanTimezone(line, offset); err != nil {
		return Token{}, err
	}
	return t.finishTimestamp(start, line, offset)
}

func (t *Tokenizer) scanTimeOfDay(line, offset int) error {
	hour, err := t.readTwoDigits(line, offset)
	if err != nil {
		return err
	}
	if hour > 23 {
		return lexerrors.NewBadTokenError(line, offset, "hour out of range")
	}
	if err := t.expectChar(':', line, offset); err != nil {
		return err
	}
	minute, err := t.readTwoDigits(line, offset)
	if err != nil {
		return err
	}
	if minute > 59 {
		return lexerrors.NewBadTokenError(line, offset, "minute out of range")
	}

	c, err := t.dec.readChar()
	if err != nil {
		return err
	}
	if c != ':' {
		t.dec.unreadChar(c)
		return nil
	}
	second, err := t.readTwoDigits(line, offset)
	if err != nil {
		return err
	}
	if second > 59 {
		return lexerrors.NewBadTokenError(line, offset, "second out of range")
	}

	c2, err := t.dec.readChar()
	if err != nil {
		return err
	}
	if c2 != '.' {
		t.dec.unreadChar(c2)
		return nil
	}
	fracDigits := 0
	for {
		c3, err := t.dec.readChar()
		if err != nil {
			return err
		}
		if !isDigit(c3) {
			t.dec.unreadChar(c3)
			break
		}
		fracDigits++
	}
	if fracDigits == 0 {
		return lexerrors.NewBadTokenError(line, offset, "malformed fractional seconds")
	}
	return nil
}

func (t *Tokenizer) scanTimezone(line, offset int) error {
	c, err := t.dec.readChar()
	if err != nil {
		return err
	}
	switch c {
	case 'Z', 'z':
		return nil
	case '+', '-':
		hour, err := t.readTwoDigits(line, offset)
		if err != nil {
			return err
		}
		if hour > 23 {
			return lexerrors.NewBadTokenError(line, offset, "time zone hour out of range")
		}
		if err := t.expectChar(':', line, offset); err != nil {
			return err
		}
		minute, err := t.readTwoDigits(line, offset)
		if err != nil {
			return err
		}
		if minute > 59 {
			return lexerrors.NewBadTokenError(line, offset, "time zone minute out of range")
		}
		return nil
	default:
		return lexerrors.NewBadTokenErrorAt(line, offset, c, "expected time zone")
	}
}

func (t *Tokenizer) finishTimestamp(start, line, offset int) (Token, error) {
	end := t.dec.position()
	term, err := t.dec.peekChar()
	if err != nil {
		return Token{}, err
	}
	if !isNumberTerminator(term) {
		return Token{}, lexerrors.NewBadTokenErrorAt(t.dec.currentLine(), t.dec.currentOffset(), term, "missing value terminator after timestamp")
	}
	return Token{Kind: TIMESTAMP, Start: start, End: end}, nil
}

func (t *Tokenizer) readTwoDigits(line, offset int) (int, error) {
	v := 0
	for i := 0; i < 2; i++ {
		c, err := t.dec.readChar()
		if err != nil {
			return 0, err
		}
		if !isDigit(c) {
			return 0, lexerrors.NewBadTokenError(line, offset, "expected digit in timestamp")
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

func (t *Tokenizer) expectChar(want rune, line, offset int) error {
	c, err := t.dec.readChar()
	if err != nil {
		return err
	}
	if c != want {
		return lexerrors.NewBadTokenErrorAt(line, offset, c, "expected character in timestamp")
	}
	return nil
}
