package transfero

import (
	"sort"

	"github.com/vocab-tuister/core/accido"
)

// Options carries the configuration flags that bear on English rendering
// (spec §4.3: "subjunctives optionally expanded with modal periphrases when
// the configuration flag enables them").
type Options struct {
	// EnglishSubjunctives mirrors the session setting "english-subjunctives":
	// when false, a subjunctive key has no English rendering at all (the
	// caller — rogo — is expected to have already excluded subjunctive keys
	// from typein-to-English question candidates in that case; FindInflections
	// still degrades gracefully to the bare lemma rather than panicking).
	EnglishSubjunctives bool
}

// FindInflections enumerates every English surface form that counts as a
// correct translation of meaning at the given paradigm cell (spec §4.3). The
// returned slice is deduplicated and sorted for deterministic set comparison
// and stable iteration (spec §9 "Deterministic ordering").
//
// meaning is the dictionary headword gloss (accido.Meaning.Principal()), not
// a full MultipleMeanings join; rogo passes only the principal meaning, so
// a word's other glosses are not translated.
func FindInflections(meaning string, pos accido.PartOfSpeech, key accido.EndingKey, opts Options) []string {
	var forms []string
	switch pos {
	case accido.POSNoun, accido.POSPronoun:
		forms = nounForms(meaning, key.Case, key.Number)
	case accido.POSAdjective:
		forms = degreeForms(meaning, key.Degree)
	case accido.POSAdverb:
		forms = degreeForms(adjToAdvOrSelf(meaning), key.Degree)
	case accido.POSVerb:
		forms = verbForms(meaning, key, opts)
	case accido.POSRegular:
		forms = []string{meaning}
	default:
		forms = []string{meaning}
	}
	return dedupeSorted(forms)
}

// FindMainInflection returns the single deterministic "main answer" form for
// a paradigm cell (spec §4.3, §6.2 "main_answer"). It is not simply the first
// element of FindInflections' sorted set: each POS names a canonical form
// independent of lexicographic order (e.g. the superlative "most light",
// not the alphabetically-earlier "extremely light").
func FindMainInflection(meaning string, pos accido.PartOfSpeech, key accido.EndingKey, opts Options) string {
	switch pos {
	case accido.POSNoun, accido.POSPronoun:
		return mainNounForm(meaning, key.Case, key.Number)
	case accido.POSAdjective:
		return mainDegreeForm(meaning, key.Degree)
	case accido.POSAdverb:
		return mainDegreeForm(adjToAdvOrSelf(meaning), key.Degree)
	case accido.POSVerb:
		return mainVerbForm(meaning, key, opts)
	default:
		return meaning
	}
}

func dedupeSorted(forms []string) []string {
	seen := make(map[string]bool, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// adjToAdvOrSelf converts an adjective-shaped English gloss into its adverb
// (spec overview §2: Transfero owns "adjective→adverb"); a gloss with no
// recorded or derivable adverb form degrades to itself rather than erroring,
// per spec §4.3's failure semantics for unknown lemmas.
func adjToAdvOrSelf(meaning string) string {
	if adv, err := AdjToAdv(meaning); err == nil {
		return adv
	}
	return meaning
}
