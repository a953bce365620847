package lego

import "github.com/vocab-tuister/core/accido"

// VocabList is the parsed form of a vocab-list submission: every word
// entity in section order, entry order within a section (spec §9
// "Deterministic ordering"), alongside the raw text it was parsed from.
type VocabList struct {
	Words []accido.Word
	Text  string
}

// NewVocabList wraps a parsed word slice and the source text it came from.
func NewVocabList(words []accido.Word, text string) *VocabList {
	return &VocabList{Words: words, Text: text}
}
