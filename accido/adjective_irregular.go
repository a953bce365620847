package accido

import "strings"

// lisAdjectives is the closed set of "-lis" adjectives whose superlative
// doubles the "l" instead of taking "-issimus" (facilis -> facillimus),
// grounded on the upstream reference's LIS_ADJECTIVES set.
var lisAdjectives = map[string]bool{
	"facilis": true, "difficilis": true, "similis": true,
	"dissimilis": true, "gracilis": true, "humilis": true,
}

// noAdverbAdjectives is the closed set of adjectives that form no adverb
// at all, grounded on the upstream reference's NO_ADVERB_ADJECTIVES set.
var noAdverbAdjectives = map[string]bool{
	"ingens": true,
}

// irregularAdjective carries the suppletive comparative/superlative stems
// and (where they exist) irregular adverb forms for a closed set of 2-1-2
// adjectives, grounded on the upstream reference's IRREGULAR_ADJECTIVES
// literal table. An empty posAdverb means the adjective forms no adverb.
type irregularAdjective struct {
	cmpMascNom, sprStem                     string
	posAdverb, cmpAdverb, sprAdverb         string
}

var irregularAdjectives = map[string]irregularAdjective{
	"bonus":  {"melior", "optim", "bene", "melius", "optime"},
	"malus":  {"peior", "pessim", "male", "peius", "pessime"},
	"magnus": {"maior", "maxim", "", "", ""},
	"parvus": {"minor", "minim", "", "", ""},
	"multus": {"plus", "plurim", "", "", ""},
	"nequam": {"nequior", "nequissim", "", "", ""},
	"frugi":  {"frugalior", "frugalissim", "frugaliter", "frugalius", "frugalissime"},
	"dexter": {"dexterior", "dextim", "", "", ""},
}

// buildIrregularAdjective builds a positive-degree 2-1-2 paradigm the
// regular way, then overrides the comparative/superlative stems (and
// adverb forms, when they exist) with the suppletive forms instead of the
// regularly-derived ones (spec §4.1).
func buildIrregularAdjective(parts []string, termination Termination, irreg irregularAdjective, meaning Meaning) (*Adjective, error) {
	headword := ""
	if len(parts) > 0 {
		headword = parts[0]
	}
	a := &Adjective{
		endingTable: newEndingTable(headword),
		Termination: termination,
		Parts:       parts,
		NoAdverb:    irreg.posAdverb == "",
		meaning:     meaning,
	}

	var posStem string
	var err error
	switch termination {
	case Term212:
		posStem, _, _, err = a.build212()
	case Term31:
		posStem, _, _, err = a.build31()
	case Term32:
		posStem, _, _, err = a.build32()
	case Term33:
		posStem, _, _, err = a.build33()
	default:
		return nil, &InvalidInputError{Reason: "unrecognized adjective termination"}
	}
	if err != nil {
		return nil, err
	}
	_ = posStem

	if strings.HasSuffix(irreg.cmpMascNom, "or") {
		for _, cell := range adjectiveComparativeCells(irreg.cmpMascNom) {
			a.endingTable.set(AdjectiveKey(Comparative, cell.gender, cell.caseVal, cell.number), cell.form)
		}
	} else {
		// "plus" (multus' comparative) only survives as a nominative/accusative
		// singular form in ordinary use and declines as a noun in its few
		// surviving oblique cases; the regular comparative paradigm shape
		// does not apply, so only the headline forms are recorded here.
		a.endingTable.set(AdjectiveKey(Comparative, Masculine, Nominative, Singular), irreg.cmpMascNom)
		a.endingTable.set(AdjectiveKey(Comparative, Feminine, Nominative, Singular), irreg.cmpMascNom)
		a.endingTable.set(AdjectiveKey(Comparative, Neuter, Nominative, Singular), irreg.cmpMascNom)
	}
	for _, cell := range adjective212Cells(irreg.sprStem) {
		a.endingTable.set(AdjectiveKey(Superlative, cell.gender, cell.caseVal, cell.number), cell.form)
	}
	if !a.NoAdverb {
		a.endingTable.set(AdverbKey(Positive), irreg.posAdverb)
		a.endingTable.set(AdverbKey(Comparative), irreg.cmpAdverb)
		a.endingTable.set(AdverbKey(Superlative), irreg.sprAdverb)
	}
	return a, nil
}
