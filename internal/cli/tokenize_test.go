package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTokenizeTextFormat(t *testing.T) {
	var out bytes.Buffer
	if err := Tokenize(strings.NewReader("{a:1}"), &out, "text"); err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"OPEN_BRACE", "SYMBOL_BASIC", "COLON", "INT", "CLOSE_BRACE", "EOF"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %s:\n%s", want, text)
		}
	}
}

func TestTokenizeJSONFormat(t *testing.T) {
	var out bytes.Buffer
	if err := Tokenize(strings.NewReader("1 2"), &out, "json"); err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var records []tokenRecord
	for {
		var rec tokenRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (two ints + EOF)", len(records))
	}
	if records[0].Kind != "INT" || records[1].Kind != "INT" {
		t.Errorf("expected two INT records, got %+v", records[:2])
	}
	if records[2].Kind != "EOF" {
		t.Errorf("expected trailing EOF record, got %+v", records[2])
	}
}

func TestTokenizeReportsLexicalError(t *testing.T) {
	var out bytes.Buffer
	err := Tokenize(strings.NewReader("01"), &out, "text")
	if err == nil {
		t.Fatal("expected an error for a leading-zero integer")
	}
}

func TestTokenizeRejectsUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := Tokenize(strings.NewReader("1"), &out, "xml")
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}
