package transfero

import (
	"strings"

	"github.com/vocab-tuister/core/accido"
)

// nounForms implements spec §4.3's noun rule through its case→preposition
// map. number has already selected singular or plural (accido carries them
// as distinct paradigm cells); this function produces the case's forms.
// Articles appear only in the genitive ("of a"/"of the"); no other case
// yields an "a"/"the" form.
func nounForms(lemma string, caseVal accido.Case, number accido.Number) []string {
	form := lemma
	if number == accido.Plural {
		form = pluralize(lemma)
	}

	switch caseVal.String() {
	case "vocative":
		return []string{"O " + form, form}
	case "genitive":
		return []string{"of " + form, "of a " + form, "of the " + form}
	case "dative":
		return []string{"to " + form, "for " + form}
	case "ablative":
		return []string{"by " + form, "with " + form, "by means of " + form}
	default: // nominative, accusative
		return []string{form}
	}
}

// mainNounForm names the canonical rendering per case: the bare form where
// no preposition is obligatory, otherwise the first-listed preposition
// (with "the" added for the genitive: "of the ...").
func mainNounForm(lemma string, caseVal accido.Case, number accido.Number) string {
	form := lemma
	if number == accido.Plural {
		form = pluralize(lemma)
	}
	switch caseVal.String() {
	case "genitive":
		return "of the " + form
	case "dative":
		return "to " + form
	case "ablative":
		return "by " + form
	default:
		return form
	}
}

// pluralize applies the regular English noun plural suffix rules. No
// comprehensive irregular-plural table is maintained: vocab glosses are
// short common nouns, and an occasional irregular plural simply does not
// appear in the accepted-answers set, matching spec §4.3's degradation
// policy for forms an external provider (here, a hand-rolled rule set
// standing in for one) cannot produce.
func pluralize(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !isVowel(lower[len(lower)-2]):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return word + "es"
	case strings.HasSuffix(lower, "fe"):
		return word[:len(word)-2] + "ves"
	case strings.HasSuffix(lower, "f") && !strings.HasSuffix(lower, "ff"):
		return word[:len(word)-1] + "ves"
	default:
		return word + "s"
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
