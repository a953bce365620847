package accido

import "strings"

// Adjective is the morphology kernel's adjective entity (spec §3.1, §4.1):
// three degrees (positive/comparative/superlative) each declined across
// gender x case x number, plus the three degree-adverbs it shares a stem
// with.
type Adjective struct {
	*endingTable
	Termination Termination
	Parts       []string
	NoAdverb    bool
	meaning     Meaning
}

func (a *Adjective) Headword() string           { return a.endingTable.headword }
func (a *Adjective) Meanings() Meaning          { return a.meaning }
func (a *Adjective) PartOfSpeech() PartOfSpeech { return POSAdjective }

// MakeAdjective builds an adjective from its principal parts (3 for 2-1-2
// and 3-termination 3rd declension, 2 for 1/2-termination 3rd declension)
// and termination, inferring comparative/superlative stems and the adverb
// unless the headword is in the closed no-adverb set (spec §4.1, "NO_ADVERB
// set").
func MakeAdjective(parts []string, termination Termination, meaning Meaning) (*Adjective, error) {
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	headword := ""
	if len(parts) > 0 {
		headword = parts[0]
	}

	if irreg, ok := irregularAdjectives[foldCase(headword)]; ok {
		return buildIrregularAdjective(parts, termination, irreg, meaning)
	}

	a := &Adjective{
		endingTable: newEndingTable(headword),
		Termination: termination,
		Parts:       parts,
		NoAdverb:    noAdverbAdjectives[foldCase(headword)],
		meaning:     meaning,
	}

	var posStem, cmpStem, sprStem string
	var err error
	switch termination {
	case Term212:
		posStem, cmpStem, sprStem, err = a.build212()
	case Term31:
		posStem, cmpStem, sprStem, err = a.build31()
	case Term32:
		posStem, cmpStem, sprStem, err = a.build32()
	case Term33:
		posStem, cmpStem, sprStem, err = a.build33()
	default:
		return nil, &InvalidInputError{Reason: "unrecognized adjective termination"}
	}
	if err != nil {
		return nil, err
	}

	for _, cell := range adjectiveComparativeCells(cmpStem) {
		a.endingTable.set(AdjectiveKey(Comparative, cell.gender, cell.caseVal, cell.number), cell.form)
	}
	for _, cell := range adjective212Cells(sprStem) {
		a.endingTable.set(AdjectiveKey(Superlative, cell.gender, cell.caseVal, cell.number), cell.form)
	}

	if !a.NoAdverb {
		a.endingTable.set(AdverbKey(Positive), posAdverb(termination, posStem))
		a.endingTable.set(AdverbKey(Comparative), posStem+"ius")
		a.endingTable.set(AdverbKey(Superlative), sprStem+"e")
	}

	return a, nil
}

// posAdverb forms the positive-degree adverb from the positive stem: 2-1-2
// adjectives add "e" (care -> dear, carus/cara/carum), every 3rd-declension
// termination adds "iter" (fortiter, acriter) (spec §4.1).
func posAdverb(termination Termination, posStem string) string {
	if termination == Term212 {
		return posStem + "e"
	}
	return posStem + "iter"
}

// superlativeStem applies the three-way superlative rule shared by every
// termination: "-er" nominatives double the r (miser -> miserrimus), the
// closed "-lis" set doubles the l (facilis -> facillimus), everything else
// takes "-issimus" (spec §4.1).
func superlativeStem(mascNom, posStem string) string {
	switch {
	case strings.HasSuffix(mascNom, "er"):
		return mascNom + "rim"
	case lisAdjectives[mascNom]:
		return posStem + "lim"
	default:
		return posStem + "issim"
	}
}

func (a *Adjective) build212() (posStem, cmpStem, sprStem string, err error) {
	if len(a.Parts) != 3 {
		return "", "", "", &InvalidInputError{Reason: "2-1-2 adjectives require 3 principal parts"}
	}
	mascNom, femNom, neutNom := a.Parts[0], a.Parts[1], a.Parts[2]
	posStem = strings.TrimSuffix(femNom, "a")
	cmpStem = posStem + "ior"
	sprStem = superlativeStem(mascNom, posStem)

	mascVoc := mascNom
	if !strings.HasSuffix(mascNom, "er") {
		mascVoc = posStem + "e"
	}
	t := a.endingTable
	t.set(AdjectiveKey(Positive, Masculine, Nominative, Singular), mascNom)
	t.set(AdjectiveKey(Positive, Masculine, Vocative, Singular), mascVoc)
	t.set(AdjectiveKey(Positive, Masculine, Accusative, Singular), posStem+"um")
	t.set(AdjectiveKey(Positive, Masculine, Genitive, Singular), posStem+"i")
	t.set(AdjectiveKey(Positive, Masculine, Dative, Singular), posStem+"o")
	t.set(AdjectiveKey(Positive, Masculine, Ablative, Singular), posStem+"o")
	t.set(AdjectiveKey(Positive, Masculine, Nominative, Plural), posStem+"i")
	t.set(AdjectiveKey(Positive, Masculine, Vocative, Plural), posStem+"i")
	t.set(AdjectiveKey(Positive, Masculine, Accusative, Plural), posStem+"os")
	t.set(AdjectiveKey(Positive, Masculine, Genitive, Plural), posStem+"orum")
	t.set(AdjectiveKey(Positive, Masculine, Dative, Plural), posStem+"is")
	t.set(AdjectiveKey(Positive, Masculine, Ablative, Plural), posStem+"is")
	t.set(AdjectiveKey(Positive, Feminine, Nominative, Singular), femNom)
	t.set(AdjectiveKey(Positive, Feminine, Vocative, Singular), femNom)
	t.set(AdjectiveKey(Positive, Feminine, Accusative, Singular), posStem+"am")
	t.set(AdjectiveKey(Positive, Feminine, Genitive, Singular), posStem+"ae")
	t.set(AdjectiveKey(Positive, Feminine, Dative, Singular), posStem+"ae")
	t.set(AdjectiveKey(Positive, Feminine, Ablative, Singular), posStem+"a")
	t.set(AdjectiveKey(Positive, Feminine, Nominative, Plural), posStem+"ae")
	t.set(AdjectiveKey(Positive, Feminine, Vocative, Plural), posStem+"ae")
	t.set(AdjectiveKey(Positive, Feminine, Accusative, Plural), posStem+"as")
	t.set(AdjectiveKey(Positive, Feminine, Genitive, Plural), posStem+"arum")
	t.set(AdjectiveKey(Positive, Feminine, Dative, Plural), posStem+"is")
	t.set(AdjectiveKey(Positive, Feminine, Ablative, Plural), posStem+"is")
	t.set(AdjectiveKey(Positive, Neuter, Nominative, Singular), neutNom)
	t.set(AdjectiveKey(Positive, Neuter, Vocative, Singular), neutNom)
	t.set(AdjectiveKey(Positive, Neuter, Accusative, Singular), neutNom)
	t.set(AdjectiveKey(Positive, Neuter, Genitive, Singular), posStem+"i")
	t.set(AdjectiveKey(Positive, Neuter, Dative, Singular), posStem+"o")
	t.set(AdjectiveKey(Positive, Neuter, Ablative, Singular), posStem+"o")
	t.set(AdjectiveKey(Positive, Neuter, Nominative, Plural), posStem+"a")
	t.set(AdjectiveKey(Positive, Neuter, Vocative, Plural), posStem+"a")
	t.set(AdjectiveKey(Positive, Neuter, Accusative, Plural), posStem+"a")
	t.set(AdjectiveKey(Positive, Neuter, Genitive, Plural), posStem+"orum")
	t.set(AdjectiveKey(Positive, Neuter, Dative, Plural), posStem+"is")
	t.set(AdjectiveKey(Positive, Neuter, Ablative, Plural), posStem+"is")
	return posStem, cmpStem, sprStem, nil
}

func (a *Adjective) build31() (posStem, cmpStem, sprStem string, err error) {
	if len(a.Parts) != 2 {
		return "", "", "", &InvalidInputError{Reason: "first-termination 3rd-declension adjectives require 2 principal parts"}
	}
	mascNom, mascGen := a.Parts[0], a.Parts[1]
	if !strings.HasSuffix(mascGen, "is") {
		return "", "", "", &InvalidInputError{Reason: "genitive '" + mascGen + "' must end in '-is'"}
	}
	posStem = strings.TrimSuffix(mascGen, "is")
	cmpStem = posStem + "ior"
	sprStem = superlativeStem(mascNom, posStem)
	for _, cell := range adjectiveThirdPositiveCells(mascNom, mascNom, mascNom, posStem) {
		a.endingTable.set(AdjectiveKey(Positive, cell.gender, cell.caseVal, cell.number), cell.form)
	}
	return posStem, cmpStem, sprStem, nil
}

func (a *Adjective) build32() (posStem, cmpStem, sprStem string, err error) {
	if len(a.Parts) != 2 {
		return "", "", "", &InvalidInputError{Reason: "second-termination 3rd-declension adjectives require 2 principal parts"}
	}
	mascNom, neutNom := a.Parts[0], a.Parts[1]
	if !strings.HasSuffix(mascNom, "is") {
		return "", "", "", &InvalidInputError{Reason: "nominative '" + mascNom + "' must end in '-is'"}
	}
	posStem = strings.TrimSuffix(mascNom, "is")
	cmpStem = posStem + "ior"
	sprStem = superlativeStem(mascNom, posStem)
	for _, cell := range adjectiveThirdPositiveCells(mascNom, mascNom, neutNom, posStem) {
		a.endingTable.set(AdjectiveKey(Positive, cell.gender, cell.caseVal, cell.number), cell.form)
	}
	return posStem, cmpStem, sprStem, nil
}

func (a *Adjective) build33() (posStem, cmpStem, sprStem string, err error) {
	if len(a.Parts) != 3 {
		return "", "", "", &InvalidInputError{Reason: "third-termination 3rd-declension adjectives require 3 principal parts"}
	}
	mascNom, femNom, neutNom := a.Parts[0], a.Parts[1], a.Parts[2]
	if !strings.HasSuffix(femNom, "is") {
		return "", "", "", &InvalidInputError{Reason: "feminine nominative '" + femNom + "' must end in '-is'"}
	}
	posStem = strings.TrimSuffix(femNom, "is")
	cmpStem = posStem + "ior"
	sprStem = superlativeStem(mascNom, posStem)
	for _, cell := range adjectiveThirdPositiveCells(mascNom, femNom, neutNom, posStem) {
		a.endingTable.set(AdjectiveKey(Positive, cell.gender, cell.caseVal, cell.number), cell.form)
	}
	return posStem, cmpStem, sprStem, nil
}
