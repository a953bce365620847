// Package lego implements the vocab-list reader: line-oriented text in,
// a VocabList of accido.Word entities with dictionary metadata out.
package lego

import "fmt"

// InvalidVocabFileFormatError reports a malformed vocab-list line as a
// human-readable reason that quotes the offending line or the offending
// token of it; a line outside any section is reported without a quote
// (spec §4.2, §7).
type InvalidVocabFileFormatError struct {
	Reason string
}

func (e *InvalidVocabFileFormatError) Error() string {
	return e.Reason
}

func invalidFormat(format string, args ...any) *InvalidVocabFileFormatError {
	return &InvalidVocabFileFormatError{Reason: fmt.Sprintf(format, args...)}
}
