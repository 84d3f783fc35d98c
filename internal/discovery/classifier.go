package discovery

import (
	"path/filepath"
	"strings"
)

// ClassifyPath determines a discovered file's conformance class by
// inspecting its path segments case-insensitively for "good" or "bad"; the
// first matching segment nearest the root wins.
func ClassifyPath(path string) FileClass {
	segments := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
	for _, seg := range segments {
		switch strings.ToLower(seg) {
		case "good":
			return ClassGood
		case "bad":
			return ClassBad
		}
	}
	return ClassUnknown
}

// IsIonFile reports whether filename has the .ion text extension
// (case-insensitive). Binary Ion (.10n) is never discovered; this toolkit
// only reads the text form.
func IsIonFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".ion")
}
