package accido

import "strings"

// Conjugation is the verb-stem pattern a regular verb follows.
type Conjugation int

const (
	FirstConjugation Conjugation = iota
	SecondConjugation
	ThirdConjugation
	MixedConjugation // "io"-stem third conjugation (capio, capere)
	FourthConjugation
	IrregularConjugation
)

// VerbFlags carries the boolean metadata the upstream reference attaches to
// individual irregular/defective verbs (spec §3.1, §4.1): impersonal verbs,
// verbs lacking a gerund/future-active-participle, verbs restricted to the
// active voice, and so on.
type VerbFlags struct {
	NoGerund                 bool
	NoFutureActiveParticiple bool
	ActiveOnly               bool
	Impersonal               bool
	ImpersonalPassive         bool
}

// Verb is the morphology kernel's verb entity (spec §3.1, §4.1).
type Verb struct {
	*endingTable
	Present      string
	Infinitive   string
	Perfect      string
	PPP          string
	Conjugation  Conjugation
	Deponent     bool
	SemiDeponent bool
	Flags        VerbFlags
	meaning      Meaning
}

func (v *Verb) Headword() string        { return v.endingTable.headword }
func (v *Verb) Meanings() Meaning       { return v.meaning }
func (v *Verb) PartOfSpeech() PartOfSpeech { return POSVerb }

// sixForms holds the six personal-ending forms of one tense/mood/voice cell:
// [number][person-1], i.e. [Singular][0] is 1sg, [Plural][2] is 3pl.
type sixForms [2][3]string

// fourForms holds perfect-system personal endings, same layout as sixForms;
// named separately only for readability at call sites.
type fourForms = sixForms

// conjugationRules holds every suffix set needed to build a regular verb's
// present system, grounded on the standard paradigm tables the upstream
// reference's `_first_conjugation`-style per-conjugation functions encode
// in Python (spec §4.1: "looking up a per-conjugation suffix table indexed
// by (tense, voice, mood, person, number)").
type conjugationRules struct {
	presActInd, presActSubj   sixForms
	impfActInd, impfActSubj   sixForms
	futActInd                 sixForms
	presPassInd, presPassSubj sixForms
	impfPassInd, impfPassSubj sixForms
	futPassInd                sixForms
	impPresAct2, impPresAct3  string // imperative present active sg, pl
	impFutAct                 [4]string
	impPresPass2, impPresPass3 string
	presActPartSuffix         string
	infPassSuffix             string
}

var conjugationTable = map[Conjugation]conjugationRules{
	FirstConjugation: {
		presActInd:  sixForms{{"o", "as", "at"}, {"amus", "atis", "ant"}},
		presActSubj: sixForms{{"em", "es", "et"}, {"emus", "etis", "ent"}},
		impfActInd:  sixForms{{"abam", "abas", "abat"}, {"abamus", "abatis", "abant"}},
		impfActSubj: sixForms{{"arem", "ares", "aret"}, {"aremus", "aretis", "arent"}},
		futActInd:   sixForms{{"abo", "abis", "abit"}, {"abimus", "abitis", "abunt"}},
		presPassInd:  sixForms{{"or", "aris", "atur"}, {"amur", "amini", "antur"}},
		presPassSubj: sixForms{{"er", "eris", "etur"}, {"emur", "emini", "entur"}},
		impfPassInd:  sixForms{{"abar", "abaris", "abatur"}, {"abamur", "abamini", "abantur"}},
		impfPassSubj: sixForms{{"arer", "areris", "aretur"}, {"aremur", "aremini", "arentur"}},
		futPassInd:   sixForms{{"abor", "aberis", "abitur"}, {"abimur", "abimini", "abuntur"}},
		impPresAct2: "a", impPresAct3: "ate",
		impFutAct:    [4]string{"ato", "ato", "atote", "anto"},
		impPresPass2: "are", impPresPass3: "amini",
		presActPartSuffix: "ans",
		infPassSuffix:     "ari",
	},
	SecondConjugation: {
		presActInd:  sixForms{{"eo", "es", "et"}, {"emus", "etis", "ent"}},
		presActSubj: sixForms{{"eam", "eas", "eat"}, {"eamus", "eatis", "eant"}},
		impfActInd:  sixForms{{"ebam", "ebas", "ebat"}, {"ebamus", "ebatis", "ebant"}},
		impfActSubj: sixForms{{"erem", "eres", "eret"}, {"eremus", "eretis", "erent"}},
		futActInd:   sixForms{{"ebo", "ebis", "ebit"}, {"ebimus", "ebitis", "ebunt"}},
		presPassInd:  sixForms{{"eor", "eris", "etur"}, {"emur", "emini", "entur"}},
		presPassSubj: sixForms{{"ear", "earis", "eatur"}, {"eamur", "eamini", "eantur"}},
		impfPassInd:  sixForms{{"ebar", "ebaris", "ebatur"}, {"ebamur", "ebamini", "ebantur"}},
		impfPassSubj: sixForms{{"erer", "ereris", "eretur"}, {"eremur", "eremini", "erentur"}},
		futPassInd:   sixForms{{"ebor", "eberis", "ebitur"}, {"ebimur", "ebimini", "ebuntur"}},
		impPresAct2: "e", impPresAct3: "ete",
		impFutAct:    [4]string{"eto", "eto", "etote", "ento"},
		impPresPass2: "ere", impPresPass3: "emini",
		presActPartSuffix: "ens",
		infPassSuffix:     "eri",
	},
	ThirdConjugation: {
		presActInd:  sixForms{{"o", "is", "it"}, {"imus", "itis", "unt"}},
		presActSubj: sixForms{{"am", "as", "at"}, {"amus", "atis", "ant"}},
		impfActInd:  sixForms{{"ebam", "ebas", "ebat"}, {"ebamus", "ebatis", "ebant"}},
		impfActSubj: sixForms{{"erem", "eres", "eret"}, {"eremus", "eretis", "erent"}},
		futActInd:   sixForms{{"am", "es", "et"}, {"emus", "etis", "ent"}},
		presPassInd:  sixForms{{"or", "eris", "itur"}, {"imur", "imini", "untur"}},
		presPassSubj: sixForms{{"ar", "aris", "atur"}, {"amur", "amini", "antur"}},
		impfPassInd:  sixForms{{"ebar", "ebaris", "ebatur"}, {"ebamur", "ebamini", "ebantur"}},
		impfPassSubj: sixForms{{"erer", "ereris", "eretur"}, {"eremur", "eremini", "erentur"}},
		futPassInd:   sixForms{{"ar", "eris", "etur"}, {"emur", "emini", "entur"}},
		impPresAct2: "e", impPresAct3: "ite",
		impFutAct:    [4]string{"ito", "ito", "itote", "unto"},
		impPresPass2: "ere", impPresPass3: "imini",
		presActPartSuffix: "ens",
		infPassSuffix:     "i",
	},
	MixedConjugation: {
		presActInd:  sixForms{{"io", "is", "it"}, {"imus", "itis", "iunt"}},
		presActSubj: sixForms{{"iam", "ias", "iat"}, {"iamus", "iatis", "iant"}},
		impfActInd:  sixForms{{"iebam", "iebas", "iebat"}, {"iebamus", "iebatis", "iebant"}},
		impfActSubj: sixForms{{"erem", "eres", "eret"}, {"eremus", "eretis", "erent"}},
		futActInd:   sixForms{{"iam", "ies", "iet"}, {"iemus", "ietis", "ient"}},
		presPassInd:  sixForms{{"ior", "eris", "itur"}, {"imur", "imini", "iuntur"}},
		presPassSubj: sixForms{{"iar", "iaris", "iatur"}, {"iamur", "iamini", "iantur"}},
		impfPassInd:  sixForms{{"iebar", "iebaris", "iebatur"}, {"iebamur", "iebamini", "iebantur"}},
		impfPassSubj: sixForms{{"erer", "ereris", "eretur"}, {"eremur", "eremini", "erentur"}},
		futPassInd:   sixForms{{"iar", "ieris", "ietur"}, {"iemur", "iemini", "ientur"}},
		impPresAct2: "e", impPresAct3: "ite",
		impFutAct:    [4]string{"ito", "ito", "itote", "iunto"},
		impPresPass2: "ere", impPresPass3: "imini",
		presActPartSuffix: "iens",
		infPassSuffix:     "i",
	},
	FourthConjugation: {
		presActInd:  sixForms{{"io", "is", "it"}, {"imus", "itis", "iunt"}},
		presActSubj: sixForms{{"iam", "ias", "iat"}, {"iamus", "iatis", "iant"}},
		impfActInd:  sixForms{{"iebam", "iebas", "iebat"}, {"iebamus", "iebatis", "iebant"}},
		impfActSubj: sixForms{{"irem", "ires", "iret"}, {"iremus", "iretis", "irent"}},
		futActInd:   sixForms{{"iam", "ies", "iet"}, {"iemus", "ietis", "ient"}},
		presPassInd:  sixForms{{"ior", "iris", "itur"}, {"imur", "imini", "iuntur"}},
		presPassSubj: sixForms{{"iar", "iaris", "iatur"}, {"iamur", "iamini", "iantur"}},
		impfPassInd:  sixForms{{"iebar", "iebaris", "iebatur"}, {"iebamur", "iebamini", "iebantur"}},
		impfPassSubj: sixForms{{"irer", "ireris", "iretur"}, {"iremur", "iremini", "irentur"}},
		futPassInd:   sixForms{{"iar", "ieris", "ietur"}, {"iemur", "iemini", "ientur"}},
		impPresAct2: "i", impPresAct3: "ite",
		impFutAct:    [4]string{"ito", "ito", "itote", "iunto"},
		impPresPass2: "ire", impPresPass3: "imini",
		presActPartSuffix: "iens",
		infPassSuffix:     "iri",
	},
}

// sum's irregular present/imperfect/future indicative and present/imperfect
// subjunctive, used to compose every periphrastic perfect-passive form
// (spec §4.1 perfect passive system = ppp + sum).
var sumPresInd = sixForms{{"sum", "es", "est"}, {"sumus", "estis", "sunt"}}
var sumImpfInd = sixForms{{"eram", "eras", "erat"}, {"eramus", "eratis", "erant"}}
var sumFutInd = sixForms{{"ero", "eris", "erit"}, {"erimus", "eritis", "erunt"}}
var sumPresSubj = sixForms{{"sim", "sis", "sit"}, {"simus", "sitis", "sint"}}
var sumImpfSubj = sixForms{{"essem", "esses", "esset"}, {"essemus", "essetis", "essent"}}

// perfect-active and perfect-system endings are shared across every
// conjugation (they attach to the perfect stem, not the present stem).
var perfActInd = sixForms{{"i", "isti", "it"}, {"imus", "istis", "erunt"}}
var perfActSubj = sixForms{{"erim", "eris", "erit"}, {"erimus", "eritis", "erint"}}
var pluperfActInd = sixForms{{"eram", "eras", "erat"}, {"eramus", "eratis", "erant"}}
var pluperfActSubj = sixForms{{"issem", "isses", "isset"}, {"issemus", "issetis", "issent"}}
var futperfActInd = sixForms{{"ero", "eris", "erit"}, {"erimus", "eritis", "erint"}}

// MakeVerb constructs a Verb from its principal parts, inferring
// conjugation and deponent/semi-deponent status, and eagerly builds the
// full ending table (spec §3.3, §4.1).
func MakeVerb(pres, inf, perf, ppp string, meaning Meaning, flags VerbFlags) (*Verb, error) {
	pres, inf, perf, ppp = strings.TrimSpace(pres), strings.TrimSpace(inf), strings.TrimSpace(perf), strings.TrimSpace(ppp)
	if pres == "" {
		return nil, &InvalidInputError{Reason: "a verb requires at least a present principal part"}
	}

	// The irregular table is checked before the infinitive is required: the
	// vocab grammar's irregular-verb line shape gives only the headword
	// (spec §4.2, "count and shape determine which Accido constructor is
	// called"), so "sum" alone must resolve here.
	if irreg, ok := irregularVerbs[foldCase(pres)]; ok {
		return buildIrregularVerb(irreg, meaning)
	}

	if inf == "" {
		return nil, &InvalidInputError{Reason: "a verb requires at least a present and an infinitive principal part"}
	}

	v := &Verb{
		endingTable: newEndingTable(pres),
		Present:     pres,
		Infinitive:  inf,
		Perfect:     perf,
		PPP:         ppp,
		Flags:       flags,
		meaning:     meaning,
	}

	switch {
	case strings.HasSuffix(pres, "or"):
		v.Deponent = true
		if err := v.buildDeponent(); err != nil {
			return nil, err
		}
	case strings.HasSuffix(perf, " sum"):
		v.SemiDeponent = true
		if err := v.buildSemiDeponent(); err != nil {
			return nil, err
		}
	default:
		if err := v.buildRegular(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// conjugationOf classifies a regular verb from its present/infinitive
// shape (spec §4.1: "Stems are derived from principal parts"). Macron
// information is unavailable (spec §1 Non-goal), so 2nd vs. 3rd
// conjugation and 3rd vs. 4th/mixed are disambiguated from the present
// 1sg ending instead of vowel length, following the traditional pedagogical
// heuristic rather than the upstream reference's macron-aware stem removal.
func conjugationOf(pres, inf string) (Conjugation, string, error) {
	switch {
	case strings.HasSuffix(inf, "are"):
		return FirstConjugation, strings.TrimSuffix(inf, "are"), nil
	case strings.HasSuffix(inf, "ire"):
		return FourthConjugation, strings.TrimSuffix(inf, "ire"), nil
	case strings.HasSuffix(inf, "ere"):
		switch {
		case strings.HasSuffix(pres, "eo"):
			return SecondConjugation, strings.TrimSuffix(inf, "ere"), nil
		case strings.HasSuffix(pres, "io"):
			return MixedConjugation, strings.TrimSuffix(inf, "ere"), nil
		default:
			return ThirdConjugation, strings.TrimSuffix(inf, "ere"), nil
		}
	default:
		return 0, "", &InvalidInputError{Reason: "infinitive '" + inf + "' does not match any recognized conjugation pattern"}
	}
}

func (v *Verb) buildRegular() error {
	conj, stem, err := conjugationOf(v.Present, v.Infinitive)
	if err != nil {
		return err
	}
	v.Conjugation = conj
	rules := conjugationTable[conj]

	applyFinite(v.endingTable, stem, rules.presActInd, Present, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.presActSubj, Present, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.impfActInd, Imperfect, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.impfActSubj, Imperfect, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.futActInd, Future, Active, Indicative)

	if !v.Flags.ActiveOnly {
		applyFinite(v.endingTable, stem, rules.presPassInd, Present, Passive, Indicative)
		applyFinite(v.endingTable, stem, rules.presPassSubj, Present, Passive, Subjunctive)
		applyFinite(v.endingTable, stem, rules.impfPassInd, Imperfect, Passive, Indicative)
		applyFinite(v.endingTable, stem, rules.impfPassSubj, Imperfect, Passive, Subjunctive)
		applyFinite(v.endingTable, stem, rules.futPassInd, Future, Passive, Indicative)
	}

	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Singular), stem+rules.impPresAct2)
	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Plural), stem+rules.impPresAct3)
	v.endingTable.set(VerbImperativeKey(Future, Active, Second, Singular), stem+rules.impFutAct[0])
	v.endingTable.set(VerbImperativeKey(Future, Active, Third, Singular), stem+rules.impFutAct[1])
	v.endingTable.set(VerbImperativeKey(Future, Active, Second, Plural), stem+rules.impFutAct[2])
	v.endingTable.set(VerbImperativeKey(Future, Active, Third, Plural), stem+rules.impFutAct[3])
	if !v.Flags.ActiveOnly {
		v.endingTable.set(VerbImperativeKey(Present, Passive, Second, Singular), stem+rules.impPresPass2)
		v.endingTable.set(VerbImperativeKey(Present, Passive, Second, Plural), stem+rules.impPresPass3)
	}

	v.endingTable.set(VerbInfinitiveKey(Present, Active), v.Infinitive)
	if !v.Flags.ActiveOnly {
		v.endingTable.set(VerbInfinitiveKey(Present, Passive), stem+rules.infPassSuffix)
	}
	v.endingTable.set(VerbParticipleKey(Present, Active, Masculine, Nominative, Singular), stem+rules.presActPartSuffix)
	applyPresentParticipleDeclension(v.endingTable, stem+rules.presActPartSuffix)

	if v.Perfect != "" {
		perfStem := strings.TrimSuffix(strings.TrimSpace(v.Perfect), "i")
		applyFinite(v.endingTable, perfStem, perfActInd, Perfect, Active, Indicative)
		applyFinite(v.endingTable, perfStem, perfActSubj, Perfect, Active, Subjunctive)
		applyFinite(v.endingTable, perfStem, pluperfActInd, Pluperfect, Active, Indicative)
		applyFinite(v.endingTable, perfStem, pluperfActSubj, Pluperfect, Active, Subjunctive)
		applyFinite(v.endingTable, perfStem, futperfActInd, FuturePerfect, Active, Indicative)
		v.endingTable.set(VerbInfinitiveKey(Perfect, Active), perfStem+"isse")
	}

	if v.PPP != "" {
		pppStem := strings.TrimSuffix(strings.TrimSpace(v.PPP), "us")
		if !v.Flags.ActiveOnly {
			applyPeriphrasticPerfectPassive(v.endingTable, pppStem, Passive)
			v.endingTable.set(VerbInfinitiveKey(Perfect, Passive), pppStem+"us esse")
			v.endingTable.set(VerbInfinitiveKey(Future, Passive), pppStem+"um iri")
			apply212Participle(v.endingTable, pppStem, Perfect, Passive)
		}
		if !v.Flags.NoGerund {
			applySupine(v.endingTable, pppStem)
			applyGerund(v.endingTable, stem+gerundiveInfix(conj))
		}
		applyGerundive(v.endingTable, stem+gerundiveInfix(conj))
	}

	if !v.Flags.NoFutureActiveParticiple && v.PPP != "" {
		pppStem := strings.TrimSuffix(strings.TrimSpace(v.PPP), "us")
		apply212Participle(v.endingTable, pppStem+"ur", Future, Active)
	}

	return nil
}

func gerundiveInfix(conj Conjugation) string {
	if conj == FirstConjugation {
		return "and"
	}
	return "end"
}

// buildDeponent builds a deponent verb's table: passive-shaped morphology
// throughout the finite system, tagged Active because the meaning is
// active (spec §4.1 "Deponent verbs use active-sense English translation
// over passive-form morphology"; P3).
func (v *Verb) buildDeponent() error {
	var conj Conjugation
	var stem string
	switch {
	case strings.HasSuffix(v.Present, "ior") && strings.HasSuffix(v.Infinitive, "iri"):
		conj, stem = FourthConjugation, strings.TrimSuffix(v.Infinitive, "iri")
	case strings.HasSuffix(v.Present, "ior"):
		conj, stem = MixedConjugation, strings.TrimSuffix(v.Infinitive, "i")
	case strings.HasSuffix(v.Infinitive, "ari"):
		conj, stem = FirstConjugation, strings.TrimSuffix(v.Infinitive, "ari")
	case strings.HasSuffix(v.Infinitive, "eri"):
		conj, stem = SecondConjugation, strings.TrimSuffix(v.Infinitive, "eri")
	case strings.HasSuffix(v.Infinitive, "i"):
		conj, stem = ThirdConjugation, strings.TrimSuffix(v.Infinitive, "i")
	default:
		return &InvalidInputError{Reason: "infinitive '" + v.Infinitive + "' does not match any recognized deponent pattern"}
	}
	v.Conjugation = conj
	rules := conjugationTable[conj]

	applyFinite(v.endingTable, stem, rules.presPassInd, Present, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.presPassSubj, Present, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.impfPassInd, Imperfect, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.impfPassSubj, Imperfect, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.futPassInd, Future, Active, Indicative)
	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Singular), stem+rules.impPresPass2)
	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Plural), stem+rules.impPresPass3)
	v.endingTable.set(VerbInfinitiveKey(Present, Active), v.Infinitive)
	v.endingTable.set(VerbParticipleKey(Present, Active, Masculine, Nominative, Singular), stem+rules.presActPartSuffix)
	applyPresentParticipleDeclension(v.endingTable, stem+rules.presActPartSuffix)

	// Perfect system: "perf" is given as "<participle> sum", e.g. "hortatus sum".
	pppWithSum := strings.TrimSpace(v.Perfect)
	pppStem := strings.TrimSuffix(strings.TrimSuffix(pppWithSum, " sum"), "us")
	applyPeriphrasticPerfectPassive(v.endingTable, pppStem, Active)
	v.endingTable.set(VerbInfinitiveKey(Perfect, Active), pppStem+"us esse")
	apply212Participle(v.endingTable, pppStem, Perfect, Active)
	if !v.Flags.NoFutureActiveParticiple {
		apply212Participle(v.endingTable, pppStem+"ur", Future, Active)
	}
	if !v.Flags.NoGerund {
		applySupine(v.endingTable, pppStem)
		applyGerund(v.endingTable, stem+gerundiveInfix(conj))
	}
	applyGerundive(v.endingTable, stem+gerundiveInfix(conj))
	return nil
}

// buildSemiDeponent builds a verb whose present system is ordinary active
// morphology but whose perfect system is periphrastic like a deponent's,
// both tagged Active throughout (spec §3.1; e.g. audeo/audere/ausus sum).
func (v *Verb) buildSemiDeponent() error {
	conj, stem, err := conjugationOf(v.Present, v.Infinitive)
	if err != nil {
		return err
	}
	v.Conjugation = conj
	rules := conjugationTable[conj]

	applyFinite(v.endingTable, stem, rules.presActInd, Present, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.presActSubj, Present, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.impfActInd, Imperfect, Active, Indicative)
	applyFinite(v.endingTable, stem, rules.impfActSubj, Imperfect, Active, Subjunctive)
	applyFinite(v.endingTable, stem, rules.futActInd, Future, Active, Indicative)
	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Singular), stem+rules.impPresAct2)
	v.endingTable.set(VerbImperativeKey(Present, Active, Second, Plural), stem+rules.impPresAct3)
	v.endingTable.set(VerbInfinitiveKey(Present, Active), v.Infinitive)
	v.endingTable.set(VerbParticipleKey(Present, Active, Masculine, Nominative, Singular), stem+rules.presActPartSuffix)
	applyPresentParticipleDeclension(v.endingTable, stem+rules.presActPartSuffix)

	pppWithSum := strings.TrimSpace(v.Perfect)
	pppStem := strings.TrimSuffix(strings.TrimSuffix(pppWithSum, " sum"), "us")
	applyPeriphrasticPerfectPassive(v.endingTable, pppStem, Active)
	v.endingTable.set(VerbInfinitiveKey(Perfect, Active), pppStem+"us esse")
	apply212Participle(v.endingTable, pppStem, Perfect, Active)
	return nil
}

// applyFinite writes the six (number, person) cells of forms onto stem+suffix.
func applyFinite(t *endingTable, stem string, forms sixForms, tense Tense, voice Voice, mood Mood) {
	for ni, number := range []Number{Singular, Plural} {
		for pi, person := range []Person{First, Second, Third} {
			suffix := forms[ni][pi]
			if suffix == "" {
				continue
			}
			t.set(VerbKey(tense, voice, mood, person, number), stem+suffix)
		}
	}
}

// applyPeriphrasticPerfectPassive composes the periphrastic perfect/
// pluperfect/future-perfect system from a participle stem (without "us"/"i")
// and sum's forms (spec §4.1), tagging every cell with voice: Passive for a
// regular verb, Active for a deponent or semi-deponent.
func applyPeriphrasticPerfectPassive(t *endingTable, pppStem string, voice Voice) {
	compose := func(forms sixForms, tense Tense, mood Mood) {
		for ni, number := range []Number{Singular, Plural} {
			participle := pppStem + "us"
			if number == Plural {
				participle = pppStem + "i"
			}
			for pi, person := range []Person{First, Second, Third} {
				t.set(VerbKey(tense, voice, mood, person, number), participle+" "+forms[ni][pi])
			}
		}
	}
	compose(sumPresInd, Perfect, Indicative)
	compose(sumImpfInd, Pluperfect, Indicative)
	compose(sumFutInd, FuturePerfect, Indicative)
	compose(sumPresSubj, Perfect, Subjunctive)
	compose(sumImpfSubj, Pluperfect, Subjunctive)
}

// apply212Participle declines a participle stem (without its own "us"/"a"/"um")
// like a regular 2-1-2 adjective across case x number x gender.
func apply212Participle(t *endingTable, stem string, tense Tense, voice Voice) {
	for _, cell := range adjective212Cells(stem) {
		t.set(VerbParticipleKey(tense, voice, cell.gender, cell.caseVal, cell.number), cell.form)
	}
}

// applyPresentParticipleDeclension declines a present-active-participle
// nominative-singular form (stem+"ns"-shaped, e.g. "capiens") across the
// 3rd-declension single-termination paradigm: same form for m/f/n
// nominative, stem+nt- for the oblique cases (spec §4.1).
func applyPresentParticipleDeclension(t *endingTable, nomSg string) {
	stem := strings.TrimSuffix(nomSg, "s") + "t" // capiens -> capient-
	for _, cell := range thirdDeclSingleTerminationCells(nomSg, stem) {
		t.set(VerbParticipleKey(Present, Active, cell.gender, cell.caseVal, cell.number), cell.form)
	}
}

// applyGerundive declines a gerundive stem (e.g. "amand") like a 2-1-2
// adjective, reusing the same participle key space (Mood=Gerundive).
func applyGerundive(t *endingTable, stem string) {
	for _, cell := range adjective212Cells(stem) {
		t.set(VerbGerundiveKey(cell.gender, cell.caseVal, cell.number), cell.form)
	}
}

// applyGerund builds the gerund (genitive/dative/accusative/ablative
// singular neuter, no nominative) from the gerundive stem, e.g. "amand"
// (spec §3.1, §4.1).
func applyGerund(t *endingTable, gerundStem string) {
	t.set(VerbGerundKey(Genitive), gerundStem+"i")
	t.set(VerbGerundKey(Dative), gerundStem+"o")
	t.set(VerbGerundKey(Accusative), gerundStem+"um")
	t.set(VerbGerundKey(Ablative), gerundStem+"o")
}

// applySupine builds the supine's two surviving cases (accusative,
// ablative) from the ppp stem, e.g. "amat" (spec §3.1, §4.1).
func applySupine(t *endingTable, pppStem string) {
	t.set(VerbSupineKey(Accusative), pppStem+"um")
	t.set(VerbSupineKey(Ablative), pppStem+"u")
}
