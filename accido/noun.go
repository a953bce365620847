package accido

import "strings"

// Declension is the noun-paradigm family inferred from the genitive ending.
type Declension int

const (
	FirstDeclension Declension = iota
	SecondDeclension
	ThirdDeclension
	FourthDeclension
	FifthDeclension
)

// Noun is the morphology kernel's noun entity (spec §3.1, §4.1).
type Noun struct {
	*endingTable
	Nominative     string
	Genitive       string
	Gender         Gender
	Declension     Declension
	IStem          bool
	PluraleTantum  bool
	meaning        Meaning
}

func (n *Noun) Headword() string           { return n.endingTable.headword }
func (n *Noun) Meanings() Meaning          { return n.meaning }
func (n *Noun) PartOfSpeech() PartOfSpeech { return POSNoun }

// MakeNoun infers a noun's declension from its nominative/genitive pair and
// gender and builds its full case x number paradigm eagerly (spec §4.1
// "Declension pick table").
func MakeNoun(nom, gen string, gender Gender, meaning Meaning) (*Noun, error) {
	nom, gen = strings.TrimSpace(nom), strings.TrimSpace(gen)
	if nom == "" {
		return nil, &InvalidInputError{Reason: "a noun requires at least a nominative singular form"}
	}

	// Checked before the genitive is required: the vocab grammar's
	// irregular-noun line shape gives only the headword (spec §4.2).
	if build, ok := irregularNouns[foldCase(nom)]; ok {
		return build(meaning), nil
	}

	if gen == "" {
		return nil, &InvalidInputError{Reason: "a noun requires both a nominative and a genitive singular form"}
	}

	n := &Noun{
		endingTable: newEndingTable(nom),
		Nominative:  nom,
		Genitive:    gen,
		Gender:      gender,
		meaning:     meaning,
	}

	switch {
	case strings.HasSuffix(gen, "ei"):
		n.Declension = FifthDeclension
		n.build5th()
	case strings.HasSuffix(gen, "us") && gender != Feminine:
		n.Declension = FourthDeclension
		n.build4th()
	case strings.HasSuffix(gen, "ae"):
		n.Declension = FirstDeclension
		n.build1st()
	case strings.HasSuffix(gen, "i") && !strings.HasSuffix(gen, "ei"):
		n.Declension = SecondDeclension
		n.build2nd()
	case strings.HasSuffix(gen, "is"):
		n.Declension = ThirdDeclension
		n.IStem = detectIStem(nom, gen)
		n.build3rd()
	default:
		return nil, &InvalidInputError{Reason: "genitive '" + gen + "' does not match any recognized declension pattern"}
	}
	return n, nil
}

// detectIStem approximates the traditional parisyllabic / double-consonant
// i-stem test for 3rd-declension nouns (spec §4.1). This is a heuristic
// simplification: the upstream reference tracks quantity marks the vocab
// grammar here never supplies (spec §1 Non-goal on macrons), so exact
// classification of every i-stem noun is not reconstructible from
// nominative/genitive alone; the parisyllabic rule below covers the
// overwhelming majority of testable vocabulary.
func detectIStem(nom, gen string) bool {
	if strings.HasSuffix(nom, "is") || strings.HasSuffix(nom, "es") {
		stem := strings.TrimSuffix(gen, "is")
		nomStem := strings.TrimSuffix(strings.TrimSuffix(nom, "is"), "es")
		return countVowels(stem) == countVowels(nomStem)
	}
	return false
}

func countVowels(s string) int {
	n := 0
	for _, r := range strings.ToLower(s) {
		if strings.ContainsRune("aeiouy", r) {
			n++
		}
	}
	return n
}

func (n *Noun) setCase(caseVal Case, number Number, form string) {
	if n.PluraleTantum && number == Singular {
		return
	}
	n.endingTable.set(NounKey(caseVal, number), form)
}

func (n *Noun) build1st() {
	stem := strings.TrimSuffix(n.Genitive, "ae")
	n.setCase(Nominative, Singular, n.Nominative)
	n.setCase(Vocative, Singular, stem+"a")
	n.setCase(Accusative, Singular, stem+"am")
	n.setCase(Genitive, Singular, n.Genitive)
	n.setCase(Dative, Singular, stem+"ae")
	n.setCase(Ablative, Singular, stem+"a")
	n.setCase(Nominative, Plural, stem+"ae")
	n.setCase(Vocative, Plural, stem+"ae")
	n.setCase(Accusative, Plural, stem+"as")
	n.setCase(Genitive, Plural, stem+"arum")
	n.setCase(Dative, Plural, stem+"is")
	n.setCase(Ablative, Plural, stem+"is")
}

func (n *Noun) build2nd() {
	stem := strings.TrimSuffix(n.Genitive, "i")
	if n.Gender == Neuter {
		n.setCase(Nominative, Singular, n.Nominative)
		n.setCase(Vocative, Singular, n.Nominative)
		n.setCase(Accusative, Singular, n.Nominative)
		n.setCase(Genitive, Singular, n.Genitive)
		n.setCase(Dative, Singular, stem+"o")
		n.setCase(Ablative, Singular, stem+"o")
		n.setCase(Nominative, Plural, stem+"a")
		n.setCase(Vocative, Plural, stem+"a")
		n.setCase(Accusative, Plural, stem+"a")
		n.setCase(Genitive, Plural, stem+"orum")
		n.setCase(Dative, Plural, stem+"is")
		n.setCase(Ablative, Plural, stem+"is")
		return
	}
	voc := n.Nominative
	if strings.HasSuffix(n.Nominative, "us") {
		voc = strings.TrimSuffix(n.Nominative, "us") + "e"
	}
	n.setCase(Nominative, Singular, n.Nominative)
	n.setCase(Vocative, Singular, voc)
	n.setCase(Accusative, Singular, stem+"um")
	n.setCase(Genitive, Singular, n.Genitive)
	n.setCase(Dative, Singular, stem+"o")
	n.setCase(Ablative, Singular, stem+"o")
	n.setCase(Nominative, Plural, stem+"i")
	n.setCase(Vocative, Plural, stem+"i")
	n.setCase(Accusative, Plural, stem+"os")
	n.setCase(Genitive, Plural, stem+"orum")
	n.setCase(Dative, Plural, stem+"is")
	n.setCase(Ablative, Plural, stem+"is")
}

func (n *Noun) build3rd() {
	stem := strings.TrimSuffix(n.Genitive, "is")
	ablSg := stem + "e"
	accPl := stem + "es"
	genPl := stem + "um"
	if n.IStem {
		ablSg = stem + "i"
		accPl = stem + "is"
		genPl = stem + "ium"
	}
	if n.Gender == Neuter {
		plForm := stem + "a"
		if n.IStem {
			plForm = stem + "ia"
		}
		n.setCase(Nominative, Singular, n.Nominative)
		n.setCase(Vocative, Singular, n.Nominative)
		n.setCase(Accusative, Singular, n.Nominative)
		n.setCase(Genitive, Singular, n.Genitive)
		n.setCase(Dative, Singular, stem+"i")
		n.setCase(Ablative, Singular, ablSg)
		n.setCase(Nominative, Plural, plForm)
		n.setCase(Vocative, Plural, plForm)
		n.setCase(Accusative, Plural, plForm)
		n.setCase(Genitive, Plural, genPl)
		n.setCase(Dative, Plural, stem+"ibus")
		n.setCase(Ablative, Plural, stem+"ibus")
		return
	}
	n.setCase(Nominative, Singular, n.Nominative)
	n.setCase(Vocative, Singular, n.Nominative)
	n.setCase(Accusative, Singular, stem+"em")
	n.setCase(Genitive, Singular, n.Genitive)
	n.setCase(Dative, Singular, stem+"i")
	n.setCase(Ablative, Singular, ablSg)
	n.setCase(Nominative, Plural, stem+"es")
	n.setCase(Vocative, Plural, stem+"es")
	n.setCase(Accusative, Plural, accPl)
	n.setCase(Genitive, Plural, genPl)
	n.setCase(Dative, Plural, stem+"ibus")
	n.setCase(Ablative, Plural, stem+"ibus")
}

func (n *Noun) build4th() {
	stem := strings.TrimSuffix(n.Genitive, "us")
	if n.Gender == Neuter {
		n.setCase(Nominative, Singular, n.Nominative)
		n.setCase(Vocative, Singular, n.Nominative)
		n.setCase(Accusative, Singular, n.Nominative)
		n.setCase(Genitive, Singular, n.Genitive)
		n.setCase(Dative, Singular, stem+"u")
		n.setCase(Ablative, Singular, stem+"u")
		n.setCase(Nominative, Plural, stem+"ua")
		n.setCase(Vocative, Plural, stem+"ua")
		n.setCase(Accusative, Plural, stem+"ua")
		n.setCase(Genitive, Plural, stem+"uum")
		n.setCase(Dative, Plural, stem+"ibus")
		n.setCase(Ablative, Plural, stem+"ibus")
		return
	}
	n.setCase(Nominative, Singular, n.Nominative)
	n.setCase(Vocative, Singular, n.Nominative)
	n.setCase(Accusative, Singular, stem+"um")
	n.setCase(Genitive, Singular, n.Genitive)
	n.setCase(Dative, Singular, stem+"ui")
	n.setCase(Ablative, Singular, stem+"u")
	n.setCase(Nominative, Plural, stem+"us")
	n.setCase(Vocative, Plural, stem+"us")
	n.setCase(Accusative, Plural, stem+"us")
	n.setCase(Genitive, Plural, stem+"uum")
	n.setCase(Dative, Plural, stem+"ibus")
	n.setCase(Ablative, Plural, stem+"ibus")
}

func (n *Noun) build5th() {
	stem := strings.TrimSuffix(n.Genitive, "ei")
	n.setCase(Nominative, Singular, n.Nominative)
	n.setCase(Vocative, Singular, n.Nominative)
	n.setCase(Accusative, Singular, stem+"em")
	n.setCase(Genitive, Singular, n.Genitive)
	n.setCase(Dative, Singular, n.Genitive)
	n.setCase(Ablative, Singular, stem+"e")
	n.setCase(Nominative, Plural, stem+"es")
	n.setCase(Vocative, Plural, stem+"es")
	n.setCase(Accusative, Plural, stem+"es")
	n.setCase(Genitive, Plural, stem+"erum")
	n.setCase(Dative, Plural, stem+"ebus")
	n.setCase(Ablative, Plural, stem+"ebus")
}
