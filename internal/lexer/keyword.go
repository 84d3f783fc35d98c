package lexer

// KeywordTag identifies one of the reserved Ion type keywords or special
// numeric symbol names. The set is closed.
type KeywordTag int

const (
	KeywordNone KeywordTag = iota
	KeywordTrue
	KeywordFalse
	KeywordNull
	KeywordBool
	KeywordInt
	KeywordFloat
	KeywordDecimal
	KeywordTimestamp
	KeywordSymbol
	KeywordString
	KeywordBlob
	KeywordClob
	KeywordList
	KeywordSexp
	KeywordStruct
	KeywordNan
	KeywordInf
	KeywordPosInf
	KeywordNegInf

	keywordTagCount
)

var keywordTagNames = [keywordTagCount]string{
	KeywordNone:      "",
	KeywordTrue:      "true",
	KeywordFalse:     "false",
	KeywordNull:      "null",
	KeywordBool:      "bool",
	KeywordInt:       "int",
	KeywordFloat:     "float",
	KeywordDecimal:   "decimal",
	KeywordTimestamp: "timestamp",
	KeywordSymbol:    "symbol",
	KeywordString:    "string",
	KeywordBlob:      "blob",
	KeywordClob:      "clob",
	KeywordList:      "list",
	KeywordSexp:      "sexp",
	KeywordStruct:    "struct",
	KeywordNan:       "nan",
	KeywordInf:       "inf",
	KeywordPosInf:    "+inf",
	KeywordNegInf:    "-inf",
}

// String returns the keyword's canonical spelling, or "" for KeywordNone.
func (k KeywordTag) String() string {
	if k < 0 || int(k) >= int(keywordTagCount) {
		return ""
	}
	return keywordTagNames[k]
}

// AllKeywordTags returns every non-sentinel keyword tag, in declaration
// order. Used by internal/kindcoverage to report which keywords a corpus
// exercised.
func AllKeywordTags() []KeywordTag {
	tags := make([]KeywordTag, 0, int(keywordTagCount)-1)
	for k := KeywordTag(1); k < keywordTagCount; k++ {
		tags = append(tags, k)
	}
	return tags
}

/*
Keyword matches b against the closed set of Ion keywords, returning
(tag, true) on a match or (KeywordNone, false) otherwise. Dispatch is a
length-then-prefix decision tree rather than a hash table: the keyword set
is small, fixed, and all-ASCII, so a couple of branches to the right bucket
is cheaper than computing and probing a hash.
*/
func Keyword(b []byte) (KeywordTag, bool) {
	switch len(b) {
	case 3:
		switch string(b) {
		case "int":
			return KeywordInt, true
		case "nan":
			return KeywordNan, true
		case "inf":
			return KeywordInf, true
		}
	case 4:
		switch b[0] {
		case 't':
			if string(b) == "true" {
				return KeywordTrue, true
			}
		case 'n':
			if string(b) == "null" {
				return KeywordNull, true
			}
		case 'b':
			switch string(b) {
			case "bool":
				return KeywordBool, true
			case "blob":
				return KeywordBlob, true
			}
		case 'c':
			if string(b) == "clob" {
				return KeywordClob, true
			}
		case 'l':
			if string(b) == "list" {
				return KeywordList, true
			}
		case 's':
			if string(b) == "sexp" {
				return KeywordSexp, true
			}
		case '+':
			if string(b) == "+inf" {
				return KeywordPosInf, true
			}
		case '-':
			if string(b) == "-inf" {
				return KeywordNegInf, true
			}
		}
	case 5:
		switch b[0] {
		case 'f':
			switch string(b) {
			case "false":
				return KeywordFalse, true
			case "float":
				return KeywordFloat, true
			}
		}
	case 6:
		switch b[0] {
		case 's':
			switch string(b) {
			case "symbol":
				return KeywordSymbol, true
			case "string":
				return KeywordString, true
			case "struct":
				return KeywordStruct, true
			}
		}
	case 7:
		if string(b) == "decimal" {
			return KeywordDecimal, true
		}
	case 9:
		if string(b) == "timestamp" {
			return KeywordTimestamp, true
		}
	}
	return KeywordNone, false
}

// KeywordFromString matches the same table as Keyword but against a Go
// string, for callers that already hold decoded text (e.g. the CLI and
// tests).
func KeywordFromString(s string) (KeywordTag, bool) {
	return Keyword([]byte(s))
}
