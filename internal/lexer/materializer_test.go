package lexer

import "testing"

func currentRange(t *testing.T, tok *Tokenizer) (int, int) {
	t.Helper()
	if _, err := tok.CurrentToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tok.ValueStart(), tok.ValueEnd()
}

func TestValueAsStringDecodesEscapes(t *testing.T) {
	tok := NewTokenizer([]byte(`"a\tbA"`))
	if k, err := tok.CurrentToken(); err != nil || k != STRING_CLOB {
		t.Fatalf("got %v, %v; want STRING_CLOB, nil", k, err)
	}
	got, err := tok.ValueAsString()
	if err != nil {
		t.Fatalf("ValueAsString: %v", err)
	}
	if got != "a\tbA" {
		t.Fatalf("got %q, want %q", got, "a\tbA")
	}
}

func TestValueAsStringCombinesEscapedSurrogatePair(t *testing.T) {
	tok := NewTokenizer([]byte(`"\uD83D\uDE00"`))
	if k, err := tok.CurrentToken(); err != nil || k != STRING_UTF8 {
		t.Fatalf("got %v, %v; want STRING_UTF8, nil", k, err)
	}
	got, err := tok.ValueAsString()
	if err != nil {
		t.Fatalf("ValueAsString: %v", err)
	}
	if got != "\U0001F600" {
		t.Fatalf("got %q, want %q", got, "\U0001F600")
	}
}

func TestValueAsStringLiteralAstralCodePoint(t *testing.T) {
	tok := NewTokenizer([]byte(`"a😀b"`))
	if k, err := tok.CurrentToken(); err != nil || k != STRING_UTF8 {
		t.Fatalf("got %v, %v; want STRING_UTF8, nil", k, err)
	}
	got, err := tok.ValueAsString()
	if err != nil {
		t.Fatalf("ValueAsString: %v", err)
	}
	if got != "a😀b" {
		t.Fatalf("got %q, want %q", got, "a😀b")
	}
}

func TestValueAsStringUnpairedHighSurrogateIsError(t *testing.T) {
	tok := NewTokenizer([]byte(`"\uD83Dx"`))
	if _, err := tok.CurrentToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tok.ValueAsString(); err == nil {
		t.Fatal("expected BadCharacter error for a high surrogate not followed by a low surrogate")
	}
}

func TestValueAsStringUnpairedLowSurrogateIsError(t *testing.T) {
	tok := NewTokenizer([]byte(`"\uDE00"`))
	if _, err := tok.CurrentToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tok.ValueAsString(); err == nil {
		t.Fatal("expected BadCharacter error for a lone low surrogate")
	}
}

func TestValueAsStringTrailingHighSurrogateIsError(t *testing.T) {
	tok := NewTokenizer([]byte(`"\uD83D"`))
	if _, err := tok.CurrentToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tok.ValueAsString(); err == nil {
		t.Fatal("expected BadCharacter error for an unpaired high surrogate at end of value")
	}
}

func TestValueAsStringChunkCarriesSurrogateAcrossSegments(t *testing.T) {
	// A surrogate pair split across two long-string segments: the pending
	// high surrogate from the first chunk threads into the second.
	tok := NewTokenizer([]byte(`'''a\uD83D''' '''\uDE00b'''`))

	s1, e1 := currentRange(t, tok)
	first, pending, err := tok.ValueAsStringChunk(s1, e1, noPendingChar)
	if err != nil {
		t.Fatalf("first chunk: %v", err)
	}
	if first != "a" {
		t.Fatalf("got first chunk %q, want %q", first, "a")
	}
	if pending == noPendingChar {
		t.Fatal("expected a pending high surrogate after the first chunk")
	}
	if err := tok.ConsumeToken(); err != nil {
		t.Fatalf("consume: %v", err)
	}

	s2, e2 := currentRange(t, tok)
	second, pending, err := tok.ValueAsStringChunk(s2, e2, pending)
	if err != nil {
		t.Fatalf("second chunk: %v", err)
	}
	if pending != noPendingChar {
		t.Fatalf("expected no pending surrogate after the second chunk, got %#x", pending)
	}
	if first+second != "a\U0001F600b" {
		t.Fatalf("got %q, want %q", first+second, "a\U0001F600b")
	}
}

func TestValueAsStringNormalizesCarriageReturns(t *testing.T) {
	// \r and \r\n inside a long string both materialize as \n.
	tok := NewTokenizer([]byte("'''a\r\nb\rc'''"))
	if k, err := tok.CurrentToken(); err != nil || k != STRING_CLOB_LONG {
		t.Fatalf("got %v, %v; want STRING_CLOB_LONG, nil", k, err)
	}
	got, err := tok.ValueAsString()
	if err != nil {
		t.Fatalf("ValueAsString: %v", err)
	}
	if got != "a\nb\nc" {
		t.Fatalf("got %q, want %q", got, "a\nb\nc")
	}
}

func TestBadEscapeRejected(t *testing.T) {
	if err := firstErr(`"a\qb"`); err == nil {
		t.Fatal("expected BadEscape error for unknown escape character")
	}
	if err := firstErr(`"a\xZZb"`); err == nil {
		t.Fatal("expected BadEscape error for non-hex escape digits")
	}
}

func TestOperatorRangeAfterMultibyteUnread(t *testing.T) {
	// Unreading a multibyte character and then an ASCII one must restore
	// byte offsets exactly: each pushback entry carries the byte length of
	// the character actually being unread.
	tok := NewTokenizer([]byte("/π"))
	k, err := tok.CurrentToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != SYMBOL_OPERATOR {
		t.Fatalf("got %v, want SYMBOL_OPERATOR", k)
	}
	if start, end := tok.ValueStart(), tok.ValueEnd(); start != 0 || end != 1 {
		t.Fatalf("got range [%d,%d), want [0,1)", start, end)
	}
	if got := tokText(t, tok); got != "/" {
		t.Fatalf("got %q, want %q", got, "/")
	}
}
