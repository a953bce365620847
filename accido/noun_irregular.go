package accido

// irregularNouns is the closed set of personal/reflexive nouns whose
// paradigm cannot be derived from a genitive-suffix declension rule,
// grounded on the upstream reference's IRREGULAR_NOUNS literal table.
// "se" is defective: it has no nominative (a reflexive cannot be the
// subject of its own clause) and no vocative.
var irregularNouns = map[string]func(Meaning) *Noun{
	"ego": buildEgo,
	"tu":  buildTu,
	"se":  buildSe,
}

func buildEgo(meaning Meaning) *Noun {
	n := &Noun{endingTable: newEndingTable("ego"), Nominative: "ego", Gender: Masculine, meaning: meaning}
	t := n.endingTable
	t.set(NounKey(Nominative, Singular), "ego")
	t.set(NounKey(Vocative, Singular), "ego")
	t.set(NounKey(Accusative, Singular), "me")
	t.set(NounKey(Genitive, Singular), "mei")
	t.set(NounKey(Dative, Singular), "mihi")
	t.set(NounKey(Ablative, Singular), "me")
	t.set(NounKey(Nominative, Plural), "nos")
	t.set(NounKey(Vocative, Plural), "nos")
	t.set(NounKey(Accusative, Plural), "nos")
	t.set(NounKey(Genitive, Plural), "nostri", "nostrum")
	t.set(NounKey(Dative, Plural), "nobis")
	t.set(NounKey(Ablative, Plural), "nobis")
	return n
}

func buildTu(meaning Meaning) *Noun {
	n := &Noun{endingTable: newEndingTable("tu"), Nominative: "tu", Gender: Masculine, meaning: meaning}
	t := n.endingTable
	t.set(NounKey(Nominative, Singular), "tu")
	t.set(NounKey(Vocative, Singular), "tu")
	t.set(NounKey(Accusative, Singular), "te")
	t.set(NounKey(Genitive, Singular), "tui")
	t.set(NounKey(Dative, Singular), "tibi")
	t.set(NounKey(Ablative, Singular), "te")
	t.set(NounKey(Nominative, Plural), "vos")
	t.set(NounKey(Vocative, Plural), "vos")
	t.set(NounKey(Accusative, Plural), "vos")
	t.set(NounKey(Genitive, Plural), "vestri", "vestrum")
	t.set(NounKey(Dative, Plural), "vobis")
	t.set(NounKey(Ablative, Plural), "vobis")
	return n
}

func buildSe(meaning Meaning) *Noun {
	n := &Noun{endingTable: newEndingTable("se"), Gender: Masculine, meaning: meaning}
	t := n.endingTable
	t.set(NounKey(Accusative, Singular), "se")
	t.set(NounKey(Genitive, Singular), "sui")
	t.set(NounKey(Dative, Singular), "sibi")
	t.set(NounKey(Ablative, Singular), "se")
	t.set(NounKey(Accusative, Plural), "se")
	t.set(NounKey(Genitive, Plural), "sui")
	t.set(NounKey(Dative, Plural), "sibi")
	t.set(NounKey(Ablative, Plural), "se")
	return n
}
