package accido

// Pronoun is the morphology kernel's pronoun entity (spec §3.1, §4.1): a
// closed set of demonstratives, the relative, and the indefinite
// "quidam", each with a hand-authored paradigm rather
// than a derivation rule. Personal and reflexive pronouns (ego, tu, se) are
// modeled as accido.Noun (see DESIGN.md's Open Question resolution); this
// type covers the remaining closed set that genuinely inflects with its own
// gender axis across all three genders.
type Pronoun struct {
	*endingTable
	meaning Meaning
}

func (p *Pronoun) Headword() string           { return p.endingTable.headword }
func (p *Pronoun) Meanings() Meaning          { return p.meaning }
func (p *Pronoun) PartOfSpeech() PartOfSpeech { return POSPronoun }

// pronounTables holds the closed set's literal paradigms, grounded on the
// upstream reference's PRONOUNS table.
var pronounTables = map[string]map[Gender]map[Case][2]string{
	"hic": {
		Masculine: {Nominative: {"hic", "hi"}, Accusative: {"hunc", "hos"}, Genitive: {"huius", "horum"}, Dative: {"huic", "his"}, Ablative: {"hoc", "his"}},
		Feminine:  {Nominative: {"haec", "hae"}, Accusative: {"hanc", "has"}, Genitive: {"huius", "harum"}, Dative: {"huic", "his"}, Ablative: {"hac", "his"}},
		Neuter:    {Nominative: {"hoc", "haec"}, Accusative: {"hoc", "haec"}, Genitive: {"huius", "horum"}, Dative: {"huic", "his"}, Ablative: {"hoc", "his"}},
	},
	"ille": {
		Masculine: {Nominative: {"ille", "illi"}, Accusative: {"illum", "illos"}, Genitive: {"illius", "illorum"}, Dative: {"illi", "illis"}, Ablative: {"illo", "illis"}},
		Feminine:  {Nominative: {"illa", "illae"}, Accusative: {"illam", "illas"}, Genitive: {"illius", "illarum"}, Dative: {"illi", "illis"}, Ablative: {"illa", "illis"}},
		Neuter:    {Nominative: {"illud", "illa"}, Accusative: {"illud", "illa"}, Genitive: {"illius", "illorum"}, Dative: {"illi", "illis"}, Ablative: {"illo", "illis"}},
	},
	"is": {
		Masculine: {Nominative: {"is", "ei"}, Accusative: {"eum", "eos"}, Genitive: {"eius", "eorum"}, Dative: {"ei", "eis"}, Ablative: {"eo", "eis"}},
		Feminine:  {Nominative: {"ea", "eae"}, Accusative: {"eam", "eas"}, Genitive: {"eius", "earum"}, Dative: {"ei", "eis"}, Ablative: {"ea", "eis"}},
		Neuter:    {Nominative: {"id", "ea"}, Accusative: {"id", "ea"}, Genitive: {"eius", "eorum"}, Dative: {"ei", "eis"}, Ablative: {"eo", "eis"}},
	},
	"ipse": {
		Masculine: {Nominative: {"ipse", "ipsi"}, Accusative: {"ipsum", "ipsos"}, Genitive: {"ipsius", "ipsorum"}, Dative: {"ipsi", "ipsis"}, Ablative: {"ipso", "ipsis"}},
		Feminine:  {Nominative: {"ipsa", "ipsae"}, Accusative: {"ipsam", "ipsas"}, Genitive: {"ipsius", "ipsarum"}, Dative: {"ipsi", "ipsis"}, Ablative: {"ipsa", "ipsis"}},
		Neuter:    {Nominative: {"ipsum", "ipsa"}, Accusative: {"ipsum", "ipsa"}, Genitive: {"ipsius", "ipsorum"}, Dative: {"ipsi", "ipsis"}, Ablative: {"ipso", "ipsis"}},
	},
	"idem": {
		Masculine: {Nominative: {"idem", "eidem"}, Accusative: {"eundem", "eosdem"}, Genitive: {"eiusdem", "eorundem"}, Dative: {"eidem", "eisdem"}, Ablative: {"eodem", "eisdem"}},
		Feminine:  {Nominative: {"eadem", "eaedem"}, Accusative: {"eandem", "easdem"}, Genitive: {"eiusdem", "earundem"}, Dative: {"eidem", "eisdem"}, Ablative: {"eadem", "eisdem"}},
		Neuter:    {Nominative: {"idem", "eadem"}, Accusative: {"idem", "eadem"}, Genitive: {"eiusdem", "eorundem"}, Dative: {"eidem", "eisdem"}, Ablative: {"eodem", "eisdem"}},
	},
	"qui": {
		Masculine: {Nominative: {"qui", "qui"}, Accusative: {"quem", "quos"}, Genitive: {"cuius", "quorum"}, Dative: {"cui", "quibus"}, Ablative: {"quo", "quibus"}},
		Feminine:  {Nominative: {"quae", "quae"}, Accusative: {"quam", "quas"}, Genitive: {"cuius", "quarum"}, Dative: {"cui", "quibus"}, Ablative: {"qua", "quibus"}},
		Neuter:    {Nominative: {"quod", "quae"}, Accusative: {"quod", "quae"}, Genitive: {"cuius", "quorum"}, Dative: {"cui", "quibus"}, Ablative: {"quo", "quibus"}},
	},
	"quidam": {
		Masculine: {Nominative: {"quidam", "quidam"}, Accusative: {"quendam", "quosdam"}, Genitive: {"cuiusdam", "quorundam"}, Dative: {"cuidam", "quibusdam"}, Ablative: {"quodam", "quibusdam"}},
		Feminine:  {Nominative: {"quaedam", "quaedam"}, Accusative: {"quandam", "quasdam"}, Genitive: {"cuiusdam", "quarundam"}, Dative: {"cuidam", "quibusdam"}, Ablative: {"quadam", "quibusdam"}},
		Neuter:    {Nominative: {"quoddam", "quaedam"}, Accusative: {"quoddam", "quaedam"}, Genitive: {"cuiusdam", "quorundam"}, Dative: {"cuidam", "quibusdam"}, Ablative: {"quodam", "quibusdam"}},
	},
}

// MakePronoun builds a pronoun from the closed hic/ille/is/ipse/idem/qui/
// quidam set. Any other headword is an *InvalidInputError: unlike nouns or
// adjectives, pronouns have no productive derivation rule (spec §4.1).
func MakePronoun(headword string, meaning Meaning) (*Pronoun, error) {
	headword = foldCase(headword)
	table, ok := pronounTables[headword]
	if !ok {
		return nil, &InvalidInputError{Reason: "'" + headword + "' is not a recognized pronoun"}
	}
	p := &Pronoun{endingTable: newEndingTable(headword), meaning: meaning}
	for _, cell := range pronounCells(table) {
		p.endingTable.set(PronounKey(cell.gender, cell.caseVal, cell.number), cell.form)
	}
	return p, nil
}
