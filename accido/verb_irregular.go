package accido

// irregularVerb is one closed-set irregular/defective verb's complete
// hand-authored paradigm, grounded directly on the upstream reference's
// IRREGULAR_VERBS literal tables (no stem-derivation rule applies to these).
type irregularVerb struct {
	headword    string
	presActInd  sixForms
	impfActInd  sixForms
	perfActInd  sixForms
	plpActInd   sixForms
	impfActSubj sixForms
	plpActSubj  sixForms
	presActInf  string
	impPresSg2  string
	impPresPl2  string
	noImperative bool
}

// irregularVerbs is the closed set of Latin verbs whose present system
// cannot be derived from a conjugation rule table (spec §4.1 "irregular
// verbs are a fixed, hand-authored set"). "absum"/"adsum" are compounds of
// "sum" sharing its irregularity rather than distinct entries a vocab list
// would key on "sum" for, so they are entered under their own headwords.
var irregularVerbs = map[string]irregularVerb{
	"sum": {
		headword:   "sum",
		presActInd: sixForms{{"sum", "es", "est"}, {"sumus", "estis", "sunt"}},
		impfActInd: sixForms{{"eram", "eras", "erat"}, {"eramus", "eratis", "erant"}},
		perfActInd: sixForms{{"fui", "fuisti", "fuit"}, {"fuimus", "fuistis", "fuerunt"}},
		plpActInd:  sixForms{{"fueram", "fueras", "fuerat"}, {"fueramus", "fueratis", "fuerant"}},
		impfActSubj: sixForms{{"essem", "esses", "esset"}, {"essemus", "essetis", "essent"}},
		plpActSubj:  sixForms{{"fuissem", "fuisses", "fuisset"}, {"fuissemus", "fuissetis", "fuissent"}},
		presActInf: "esse",
		impPresSg2: "es", impPresPl2: "este",
	},
	"possum": {
		headword:   "possum",
		presActInd: sixForms{{"possum", "potes", "potest"}, {"possumus", "potestis", "possunt"}},
		impfActInd: sixForms{{"poteram", "poteras", "poterat"}, {"poteramus", "poteratis", "poterant"}},
		perfActInd: sixForms{{"potui", "potuisti", "potuit"}, {"potuimus", "potuistis", "potuerunt"}},
		plpActInd:  sixForms{{"potueram", "potueras", "potuerat"}, {"potueramus", "potueratis", "potuerant"}},
		impfActSubj: sixForms{{"possem", "posses", "posset"}, {"possemus", "possetis", "possent"}},
		plpActSubj:  sixForms{{"potuissem", "potuisses", "potuisset"}, {"potuissemus", "potuissetis", "potuissent"}},
		presActInf: "posse",
		noImperative: true,
	},
	"volo": {
		headword:   "volo",
		presActInd: sixForms{{"volo", "vis", "vult"}, {"volumus", "vultis", "volunt"}},
		impfActInd: sixForms{{"volebam", "volebas", "volebat"}, {"volebamus", "volebatis", "volebant"}},
		perfActInd: sixForms{{"volui", "voluisti", "voluit"}, {"voluimus", "voluistis", "voluerunt"}},
		plpActInd:  sixForms{{"volueram", "volueras", "voluerat"}, {"volueramus", "volueratis", "voluerant"}},
		impfActSubj: sixForms{{"vellem", "velles", "vellet"}, {"vellemus", "velletis", "vellent"}},
		plpActSubj:  sixForms{{"voluissem", "voluisses", "voluisset"}, {"voluissemus", "voluissetis", "voluissent"}},
		presActInf: "velle",
		noImperative: true,
	},
	"nolo": {
		headword:   "nolo",
		presActInd: sixForms{{"nolo", "non vis", "non vult"}, {"nolumus", "non vultis", "nolunt"}},
		impfActInd: sixForms{{"nolebam", "nolebas", "nolebat"}, {"nolebamus", "nolebatis", "nolebant"}},
		perfActInd: sixForms{{"nolui", "noluisti", "noluit"}, {"noluimus", "noluistis", "noluerunt"}},
		plpActInd:  sixForms{{"nolueram", "nolueras", "noluerat"}, {"nolueramus", "nolueratis", "noluerant"}},
		impfActSubj: sixForms{{"nollem", "nolles", "nollet"}, {"nollemus", "nolletis", "nollent"}},
		plpActSubj:  sixForms{{"noluissem", "noluisses", "noluisset"}, {"noluissemus", "noluissetis", "noluissent"}},
		presActInf: "nolle",
		noImperative: true,
	},
	"fero": {
		headword:   "fero",
		presActInd: sixForms{{"fero", "fers", "fert"}, {"ferimus", "fertis", "ferunt"}},
		impfActInd: sixForms{{"ferebam", "ferebas", "ferebat"}, {"ferebamus", "ferebatis", "ferebant"}},
		perfActInd: sixForms{{"tuli", "tulisti", "tulit"}, {"tulimus", "tulistis", "tulerunt"}},
		plpActInd:  sixForms{{"tuleram", "tuleras", "tulerat"}, {"tuleramus", "tuleratis", "tulerant"}},
		impfActSubj: sixForms{{"ferrem", "ferres", "ferret"}, {"ferremus", "ferretis", "ferrent"}},
		plpActSubj:  sixForms{{"tulissem", "tulisses", "tulisset"}, {"tulissemus", "tulissetis", "tulissent"}},
		presActInf: "ferre",
		impPresSg2: "fer", impPresPl2: "ferte",
	},
	"eo": {
		headword:   "eo",
		presActInd: sixForms{{"eo", "is", "it"}, {"imus", "itis", "eunt"}},
		impfActInd: sixForms{{"ibam", "ibas", "ibat"}, {"ibamus", "ibatis", "ibant"}},
		perfActInd: sixForms{{"ii", "iisti", "iit"}, {"iimus", "iistis", "ierunt"}},
		plpActInd:  sixForms{{"ieram", "ieras", "ierat"}, {"ieramus", "ieratis", "ierant"}},
		impfActSubj: sixForms{{"irem", "ires", "iret"}, {"iremus", "iretis", "irent"}},
		plpActSubj:  sixForms{{"iissem", "iisses", "iisset"}, {"iissemus", "iissetis", "iissent"}},
		presActInf: "ire",
		impPresSg2: "i", impPresPl2: "ite",
	},
	"absum": {
		headword:   "absum",
		presActInd: sixForms{{"absum", "abes", "abest"}, {"absumus", "abestis", "absunt"}},
		impfActInd: sixForms{{"aberam", "aberas", "aberat"}, {"aberamus", "aberatis", "aberant"}},
		perfActInd: sixForms{{"afui", "afuisti", "afuit"}, {"afuimus", "afuistis", "afuerunt"}},
		plpActInd:  sixForms{{"afueram", "afueras", "afuerat"}, {"afueramus", "afueratis", "afuerant"}},
		impfActSubj: sixForms{{"abessem", "abesses", "abesset"}, {"abessemus", "abessetis", "abessent"}},
		plpActSubj:  sixForms{{"afuissem", "afuisses", "afuisset"}, {"afuissemus", "afuissetis", "afuissent"}},
		presActInf: "abesse",
		noImperative: true,
	},
	"adsum": {
		headword:   "adsum",
		presActInd: sixForms{{"adsum", "ades", "adest"}, {"adsumus", "adestis", "adsunt"}},
		impfActInd: sixForms{{"aderam", "aderas", "aderat"}, {"aderamus", "aderatis", "aderant"}},
		perfActInd: sixForms{{"adfui", "adfuisti", "adfuit"}, {"adfuimus", "adfuistis", "adfuerunt"}},
		plpActInd:  sixForms{{"adfueram", "adfueras", "adfuerat"}, {"adfueramus", "adfueratis", "adfuerant"}},
		impfActSubj: sixForms{{"adessem", "adesses", "adesset"}, {"adessemus", "adessetis", "adessent"}},
		plpActSubj:  sixForms{{"adfuissem", "adfuisses", "adfuisset"}, {"adfuissemus", "adfuissetis", "adfuissent"}},
		presActInf: "adesse",
		noImperative: true,
	},
	"malo": {
		headword:   "malo",
		presActInd: sixForms{{"malo", "mavis", "mavult"}, {"malumus", "mavultis", "malunt"}},
		impfActInd: sixForms{{"malebam", "malebas", "malebat"}, {"malebamus", "malebatis", "malebant"}},
		perfActInd: sixForms{{"malui", "maluisti", "maluit"}, {"maluimus", "maluistis", "maluerunt"}},
		plpActInd:  sixForms{{"malueram", "malueras", "maluerat"}, {"malueramus", "malueratis", "maluerant"}},
		impfActSubj: sixForms{{"mallem", "malles", "mallet"}, {"mallemus", "malletis", "mallent"}},
		plpActSubj:  sixForms{{"maluissem", "maluisses", "maluisset"}, {"maluissemus", "maluissetis", "maluissent"}},
		presActInf: "malle",
		noImperative: true,
	},
	"fio": {
		headword:   "fio",
		presActInd: sixForms{{"fio", "fis", "fit"}, {"fimus", "fitis", "fiunt"}},
		impfActInd: sixForms{{"fiebam", "fiebas", "fiebat"}, {"fiebamus", "fiebatis", "fiebant"}},
		perfActInd: sixForms{{"factus sum", "factus es", "factus est"}, {"facti sumus", "facti estis", "facti sunt"}},
		plpActInd:  sixForms{{"factus eram", "factus eras", "factus erat"}, {"facti eramus", "facti eratis", "facti erant"}},
		impfActSubj: sixForms{{"fierem", "fieres", "fieret"}, {"fieremus", "fieretis", "fierent"}},
		plpActSubj:  sixForms{{"factus essem", "factus esses", "factus esset"}, {"facti essemus", "facti essetis", "facti essent"}},
		presActInf: "fieri",
		impPresSg2: "fi", impPresPl2: "fite",
	},
	"inquam": {
		headword:   "inquam",
		presActInd: sixForms{{"inquam", "inquis", "inquit"}, {"inquimus", "inquitis", "inquint"}},
		impfActInd: sixForms{{"", "", "inquiebat"}, {"", "", ""}},
		perfActInd: sixForms{{"inquii", "inquisti", "inquit"}, {"", "", ""}},
		impPresSg2: "inque",
	},
}

// buildIrregularVerb assembles the ending table for a closed-set irregular
// verb from its literal paradigm (spec §4.1). No passive voice, participle,
// gerund, gerundive, or supine is populated: none of these verbs has one in
// the upstream reference's tables, so lookups for them correctly fall
// through to *NoEndingError via the shared endingTable.
func buildIrregularVerb(irreg irregularVerb, meaning Meaning) (*Verb, error) {
	v := &Verb{
		endingTable: newEndingTable(irreg.headword),
		Present:     irreg.headword,
		Infinitive:  irreg.presActInf,
		Conjugation: IrregularConjugation,
		Flags:       VerbFlags{ActiveOnly: true, NoGerund: true, NoFutureActiveParticiple: true},
		meaning:     meaning,
	}

	applyFinite(v.endingTable, "", irreg.presActInd, Present, Active, Indicative)
	applyFinite(v.endingTable, "", irreg.impfActInd, Imperfect, Active, Indicative)
	applyFinite(v.endingTable, "", irreg.perfActInd, Perfect, Active, Indicative)
	applyFinite(v.endingTable, "", irreg.plpActInd, Pluperfect, Active, Indicative)
	applyFinite(v.endingTable, "", irreg.impfActSubj, Imperfect, Active, Subjunctive)
	applyFinite(v.endingTable, "", irreg.plpActSubj, Pluperfect, Active, Subjunctive)
	if irreg.presActInf != "" {
		v.endingTable.set(VerbInfinitiveKey(Present, Active), irreg.presActInf)
	}
	if !irreg.noImperative {
		if irreg.impPresSg2 != "" {
			v.endingTable.set(VerbImperativeKey(Present, Active, Second, Singular), irreg.impPresSg2)
		}
		if irreg.impPresPl2 != "" {
			v.endingTable.set(VerbImperativeKey(Present, Active, Second, Plural), irreg.impPresPl2)
		}
	}
	return v, nil
}
