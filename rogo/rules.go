package rogo

import (
	"github.com/vocab-tuister/core/accido"
)

// wordExcluded reports whether an entire word should be dropped from the
// candidate pool before any per-form filtering happens, grounded on the
// upstream reference's two-stage "filter_words" then "filter_endings" split
// (spec §4.4 point 2).
func wordExcluded(s *Settings, w accido.Word) bool {
	switch word := w.(type) {
	case *accido.Verb:
		if s.excluded("exclude-verbs") {
			return true
		}
		if word.Deponent && s.excluded("exclude-deponents") {
			return true
		}
		return conjugationExcluded(s, word.Conjugation)
	case *accido.Noun:
		if s.excluded("exclude-nouns") {
			return true
		}
		return declensionExcluded(s, word.Declension)
	case *accido.Adjective:
		if s.excluded("exclude-adjectives") {
			return true
		}
		if word.Termination == accido.Term212 {
			return s.excluded("exclude-adjective-212-declension")
		}
		return s.excluded("exclude-adjective-third-declension")
	case *accido.Adverb:
		return s.excluded("exclude-adverbs")
	case *accido.Pronoun:
		return s.excluded("exclude-pronouns")
	case *accido.RegularWord:
		return s.excluded("exclude-regulars")
	default:
		return false
	}
}

func conjugationExcluded(s *Settings, c accido.Conjugation) bool {
	switch c {
	case accido.FirstConjugation:
		return s.excluded("exclude-verb-first-conjugation")
	case accido.SecondConjugation:
		return s.excluded("exclude-verb-second-conjugation")
	case accido.ThirdConjugation:
		return s.excluded("exclude-verb-third-conjugation")
	case accido.MixedConjugation:
		return s.excluded("exclude-verb-mixed-conjugation")
	case accido.FourthConjugation:
		return s.excluded("exclude-verb-fourth-conjugation")
	case accido.IrregularConjugation:
		return s.excluded("exclude-verb-irregular-conjugation")
	default:
		return false
	}
}

func declensionExcluded(s *Settings, d accido.Declension) bool {
	switch d {
	case accido.FirstDeclension:
		return s.excluded("exclude-noun-first-declension")
	case accido.SecondDeclension:
		return s.excluded("exclude-noun-second-declension")
	case accido.ThirdDeclension:
		return s.excluded("exclude-noun-third-declension")
	case accido.FourthDeclension:
		return s.excluded("exclude-noun-fourth-declension")
	case accido.FifthDeclension:
		return s.excluded("exclude-noun-fifth-declension")
	default:
		return false
	}
}

// keyExcluded reports whether a single paradigm cell should be dropped,
// grounded on the upstream reference's "filter_endings" (spec §4.4 point 2).
// Unlike the Python original's regex match against a fixed-width key
// string, this switches directly on the typed EndingKey tag fields set by
// the key constructors in accido/key.go.
func keyExcluded(s *Settings, pos accido.PartOfSpeech, key accido.EndingKey) bool {
	if verbCategory(pos, key) && numberExcluded(s, "verb", key.Number) {
		return true
	}

	switch pos {
	case accido.POSVerb:
		return verbKeyExcluded(s, key)
	case accido.POSNoun:
		return caseExcluded(s, "noun", key.Case) || numberExcluded(s, "noun", key.Number)
	case accido.POSAdjective:
		return caseExcluded(s, "adjective", key.Case) ||
			numberExcluded(s, "adjective", key.Number) ||
			genderExcluded(s, "adjective", key.Gender) ||
			degreeExcluded(s, "adjective", key.Degree)
	case accido.POSAdverb:
		return degreeExcluded(s, "adverb", key.Degree)
	case accido.POSPronoun:
		return caseExcluded(s, "pronoun", key.Case) ||
			numberExcluded(s, "pronoun", key.Number) ||
			genderExcluded(s, "pronoun", key.Gender)
	default:
		return false
	}
}

// verbCategory reports whether key belongs to one of the verb sub-forms
// whose plural/singular exclusion is governed by the general
// "exclude-verb-*" flags rather than the participle-specific ones.
func verbCategory(pos accido.PartOfSpeech, key accido.EndingKey) bool {
	return pos == accido.POSVerb && key.Mood != accido.Participle
}

func verbKeyExcluded(s *Settings, key accido.EndingKey) bool {
	if key.Mood == accido.Participle {
		return participleKeyExcluded(s, key)
	}
	if key.Mood == accido.Gerundive && s.excluded("exclude-gerundives") {
		return true
	}
	if key.Mood == accido.Gerund && s.excluded("exclude-gerunds") {
		return true
	}
	if key.Mood == accido.Supine && s.excluded("exclude-supines") {
		return true
	}

	if key.Person != accido.NoPerson {
		switch key.Person {
		case accido.First:
			if s.excluded("exclude-verb-1st-person") {
				return true
			}
		case accido.Second:
			if s.excluded("exclude-verb-2nd-person") {
				return true
			}
		case accido.Third:
			if s.excluded("exclude-verb-3rd-person") {
				return true
			}
		}
	}

	switch key.Mood {
	case accido.Indicative:
		return tenseVoiceExcluded(s, "indicative", key.Tense, key.Voice)
	case accido.Subjunctive:
		return tenseVoiceExcluded(s, "subjunctive", key.Tense, key.Voice)
	case accido.Imperative:
		return tenseVoiceExcluded(s, "imperative", key.Tense, key.Voice)
	case accido.Infinitive:
		return tenseVoiceExcluded(s, "infinitive", key.Tense, key.Voice)
	default:
		return false
	}
}

func tenseVoiceExcluded(s *Settings, mood string, tense accido.Tense, voice accido.Voice) bool {
	voiceName := "active"
	if voice == accido.Passive {
		voiceName = "passive"
	}
	name := "exclude-verb-" + tenseName(tense) + "-" + voiceName + "-" + mood
	return s.excluded(name)
}

func tenseName(t accido.Tense) string {
	switch t {
	case accido.Imperfect:
		return "imperfect"
	case accido.Future:
		return "future"
	case accido.Perfect:
		return "perfect"
	case accido.Pluperfect:
		return "pluperfect"
	case accido.FuturePerfect:
		return "future-perfect"
	default:
		return "present"
	}
}

func participleKeyExcluded(s *Settings, key accido.EndingKey) bool {
	if s.excluded("exclude-participles") {
		return true
	}
	switch {
	case key.Tense == accido.Present && key.Voice == accido.Active:
		if s.excluded("exclude-participle-present-active") {
			return true
		}
	case key.Tense == accido.Perfect && key.Voice == accido.Passive:
		if s.excluded("exclude-participle-perfect-passive") {
			return true
		}
	case key.Tense == accido.Future && key.Voice == accido.Active:
		if s.excluded("exclude-participle-future-active") {
			return true
		}
	}
	if genderExcluded(s, "participle", key.Gender) {
		return true
	}
	if caseExcluded(s, "participle", key.Case) {
		return true
	}
	return numberExcluded(s, "participle", key.Number)
}

func caseExcluded(s *Settings, category string, c accido.Case) bool {
	var name string
	switch c {
	case accido.Nominative:
		name = "nominative"
	case accido.Vocative:
		name = "vocative"
	case accido.Accusative:
		name = "accusative"
	case accido.Genitive:
		name = "genitive"
	case accido.Dative:
		name = "dative"
	case accido.Ablative:
		name = "ablative"
	default:
		return false
	}
	return s.excluded("exclude-" + category + "-" + name)
}

func numberExcluded(s *Settings, category string, n accido.Number) bool {
	if n == accido.Plural {
		return s.excluded("exclude-" + category + "-plural")
	}
	return s.excluded("exclude-" + category + "-singular")
}

func genderExcluded(s *Settings, category string, g accido.Gender) bool {
	var name string
	switch g {
	case accido.Masculine:
		name = "masculine"
	case accido.Feminine:
		name = "feminine"
	case accido.Neuter:
		name = "neuter"
	default:
		return false
	}
	return s.excluded("exclude-" + category + "-" + name)
}

func degreeExcluded(s *Settings, category string, d accido.Degree) bool {
	var name string
	switch d {
	case accido.Positive:
		name = "positive"
	case accido.Comparative:
		name = "comparative"
	case accido.Superlative:
		name = "superlative"
	default:
		return false
	}
	return s.excluded("exclude-" + category + "-" + name)
}

// filterWords returns the subset of words not excluded wholesale.
func filterWords(s *Settings, words []accido.Word) []accido.Word {
	out := make([]accido.Word, 0, len(words))
	for _, w := range words {
		if !wordExcluded(s, w) {
			out = append(out, w)
		}
	}
	return out
}

// candidate is one surviving (word, key, form) triple available for
// question generation after both filter stages have run.
type candidate struct {
	Word accido.Word
	Key  accido.EndingKey
	Form string
}

// filterCandidates expands every surviving word's full paradigm and drops
// any cell excluded by a form-level setting (spec §4.4 point 2, second
// filter stage).
func filterCandidates(s *Settings, words []accido.Word) []candidate {
	var out []candidate
	for _, w := range filterWords(s, words) {
		pos := w.PartOfSpeech()
		for key, form := range w.Forms() {
			if keyExcluded(s, pos, key) {
				continue
			}
			out = append(out, candidate{Word: w, Key: key, Form: form})
		}
	}
	return out
}
