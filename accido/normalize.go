package accido

import "strings"

// foldCase lowercases s for case-insensitive comparison of headwords and
// answer strings. Adapted from the teacher's Atone/Deramise normalization
// pair (normalize.go in the Collatinus lemmatizer): that function folds
// away vowel-quantity marks and Ramisist spelling variants before lookup.
// This repository's data never carries macrons (spec §1 Non-goals: macron
// analysis is out of scope), so only the case-folding half of the teacher's
// normalization survives here.
func foldCase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
