package transfero

import (
	"strings"

	"github.com/vocab-tuister/core/accido"
)

// degreeForms implements spec §4.3's shared adjective/adverb degree rule.
// Accido already carries the Latin-side degree paradigm (comparative and
// superlative synthesized from the stem, spec §4.1); this enumerates the
// English periphrases a learner may use to translate each degree.
func degreeForms(lemma string, degree accido.Degree) []string {
	switch degree {
	case accido.Comparative:
		return []string{"more " + lemma, comparativeSuffix(lemma)}
	case accido.Superlative:
		return []string{
			"most " + lemma, "very " + lemma, "extremely " + lemma,
			"rather " + lemma, "quite " + lemma, "too " + lemma,
			superlativeSuffix(lemma),
		}
	default:
		return []string{lemma}
	}
}

// mainDegreeForm names the canonical rendering per degree.
func mainDegreeForm(lemma string, degree accido.Degree) string {
	switch degree {
	case accido.Comparative:
		return comparativeSuffix(lemma)
	case accido.Superlative:
		return "most " + lemma
	default:
		return lemma
	}
}

// comparativeSuffix and superlativeSuffix apply the regular "-er"/"-est"
// suffix rule, eliding a bare final "e" (e.g. "brave" -> "braver", not
// "braveer"); this is a deliberate simplification of English comparative
// morphology (no consonant-doubling or y->i allomorphy) since it only needs
// to stand alongside the periphrastic "more ..."/"most ..." forms above as
// one acceptable answer among several, not the sole one.
func comparativeSuffix(lemma string) string {
	if strings.HasSuffix(lemma, "e") {
		return lemma + "r"
	}
	return lemma + "er"
}

func superlativeSuffix(lemma string) string {
	if strings.HasSuffix(lemma, "e") {
		return lemma + "st"
	}
	return lemma + "est"
}

// adjectiveToAdverb is a closed set of English adjective→adverb conversions
// for glosses whose regular "-ly" suffixation is irregular (e.g. "good" ->
// "well", not "goodly"), grounded on the same role the upstream reference's
// adj_to_adv.json override table plays.
var adjectiveToAdverb = map[string]string{
	"good": "well", "bad": "badly", "fast": "fast", "hard": "hard",
	"late": "late", "early": "early", "little": "little", "much": "much",
	"far": "far", "whole": "wholly", "true": "truly", "due": "duly",
	"full": "fully", "sly": "slyly", "public": "publicly",
}

// AdjToAdv converts an English adjective gloss to its adverb form (spec
// overview §2, "adjective→adverb"), used when rendering an accido.Adverb
// entity whose stored gloss is the adjective-shaped English headword (e.g.
// Latin "laete" glossed as "happy" rather than "happily").
func AdjToAdv(adjective string) (string, error) {
	if adv, ok := adjectiveToAdverb[adjective]; ok {
		return adv, nil
	}
	if adjective == "" {
		return "", &InvalidWordError{Word: adjective, Reason: "is not an adjective"}
	}
	switch {
	case strings.HasSuffix(adjective, "y") && !strings.HasSuffix(adjective, "ey"):
		return adjective[:len(adjective)-1] + "ily", nil
	case strings.HasSuffix(adjective, "le"):
		return adjective[:len(adjective)-1] + "y", nil
	case strings.HasSuffix(adjective, "ic"):
		return adjective + "ally", nil
	default:
		return adjective + "ly", nil
	}
}
