package accido

import "strings"

// Adverb is the morphology kernel's adverb entity (spec §3.1, §4.1): a
// positive form plus its comparative/superlative degree rewrites, shared
// with the same suffix rules an adjective's own adverb formation uses.
type Adverb struct {
	*endingTable
	Positive string
	meaning  Meaning
}

func (a *Adverb) Headword() string           { return a.endingTable.headword }
func (a *Adverb) Meanings() Meaning          { return a.meaning }
func (a *Adverb) PartOfSpeech() PartOfSpeech { return POSAdverb }

// irregularAdverbs overrides the positive's comparative/superlative where
// they are not a mechanical "stem+ius"/"stem+issime" derivation, grounded on
// the adjective-irregular table: an adverb inherits its degree forms from
// the adjective it derives from, so a closed set of adverbs inherits the
// same suppletion (bene/melius/optime, male/peius/pessime, and so on).
var irregularAdverbs = map[string][2]string{
	"bene": {"melius", "optime"},
	"male": {"peius", "pessime"},
	"diu":  {"diutius", "diutissime"},
	"saepe": {"saepius", "saepissime"},
	"multum": {"plus", "plurimum"},
	"parum": {"minus", "minime"},
}

// MakeAdverb builds an adverb from its positive form (spec §4.1). Regular
// adverbs derive comparative/superlative by stripping a terminal "-e"/
// "-ter"/"-nter" and composing the comparative-adjective-neuter and
// superlative-adjective-masculine rules that adjective.go already implements
// for the adjective the adverb is formed from; since a bare adverb entry has
// no adjective stem to consult, the positive's own final vowel/consonant is
// treated as the adjectival stem boundary (the same heuristic the upstream
// reference's own `adverb_inflection` applies when no adjective is linked).
func MakeAdverb(positive string, meaning Meaning) (*Adverb, error) {
	positive = strings.TrimSpace(positive)
	if positive == "" {
		return nil, &InvalidInputError{Reason: "an adverb requires a positive form"}
	}

	a := &Adverb{endingTable: newEndingTable(positive), Positive: positive, meaning: meaning}
	a.endingTable.set(AdverbKey(Positive), positive)

	if irreg, ok := irregularAdverbs[foldCase(positive)]; ok {
		a.endingTable.set(AdverbKey(Comparative), irreg[0])
		a.endingTable.set(AdverbKey(Superlative), irreg[1])
		return a, nil
	}

	stem, ok := adverbStem(positive)
	if !ok {
		// Adverbs with no recognizable degree-bearing suffix (e.g. many
		// temporal/locative adverbs: "hodie", "ibi") are positive-only; no
		// error is raised, matching the spec's degradation policy for
		// unrecognized derivational shapes (spec §4.3 failure semantics).
		return a, nil
	}
	a.endingTable.set(AdverbKey(Comparative), stem+"ius")
	a.endingTable.set(AdverbKey(Superlative), stem+"issime")
	return a, nil
}

// adverbStem strips the positive-degree adverbial suffix to recover the
// comparative/superlative-bearing stem, mirroring the three suffix classes
// spec §4.1 names for adjective-to-adverb formation in reverse.
func adverbStem(positive string) (string, bool) {
	switch {
	case strings.HasSuffix(positive, "nter"):
		return strings.TrimSuffix(positive, "er"), true
	case strings.HasSuffix(positive, "iter"):
		return strings.TrimSuffix(positive, "iter"), true
	case strings.HasSuffix(positive, "e") && !strings.HasSuffix(positive, "ue") && !strings.HasSuffix(positive, "ie"):
		return strings.TrimSuffix(positive, "e"), true
	default:
		return "", false
	}
}
