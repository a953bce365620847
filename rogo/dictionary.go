package rogo

import (
	"strings"

	"github.com/vocab-tuister/core/accido"
)

// genderTag renders the single-letter gender tag the vocab grammar's noun
// entries carry (spec §6.4, e.g. "(m)").
func genderTag(g accido.Gender) string {
	switch g {
	case accido.Feminine:
		return "f"
	case accido.Neuter:
		return "n"
	default:
		return "m"
	}
}

// principalParts returns a word's principal parts in the conventional
// Latin-grammar order, for PrincipalPartsQuestion (spec §6.2, GLOSSARY).
func principalParts(w accido.Word) []string {
	switch word := w.(type) {
	case *accido.Verb:
		parts := []string{word.Present, word.Infinitive}
		if word.Perfect != "" {
			parts = append(parts, word.Perfect)
		}
		if word.PPP != "" {
			parts = append(parts, word.PPP)
		}
		return parts
	case *accido.Noun:
		return []string{word.Nominative, word.Genitive}
	case *accido.Adjective:
		return append([]string(nil), word.Parts...)
	default:
		return []string{w.Headword()}
	}
}

// dictionaryEntry renders the canonical "meaning: parts" vocab-line form a
// word was parsed from, for ParseWordLatToCompQuestion's dictionary_entry
// field (spec §6.2, scenario 1).
func dictionaryEntry(w accido.Word) string {
	meaning := strings.Join(w.Meanings().All(), "/")
	var parts string
	switch word := w.(type) {
	case *accido.Noun:
		parts = word.Nominative + ", " + word.Genitive + ", (" + genderTag(word.Gender) + ")"
	case *accido.Verb:
		parts = strings.Join(principalParts(word), ", ")
	case *accido.Adjective:
		parts = strings.Join(word.Parts, ", ") + ", (" + word.Termination.String() + ")"
	default:
		parts = w.Headword()
	}
	return meaning + ": " + parts
}
