package transfero

import "github.com/vocab-tuister/core/accido"

// participleForms implements spec §4.3's participle rule: decomposed by
// tense/voice into "...ing", "having been ...ed", "going to ...", and
// "about to ...". Accido generates present-active, perfect-passive, and
// future-active participle cells, plus perfect-active ones for deponent and
// semi-deponent verbs (verb.go); every
// tense/voice combination is covered here so an unexpected future extension
// of the Latin paradigm still degrades to a reasonable English rendering.
func participleForms(lemma string, tense accido.Tense, voice accido.Voice) []string {
	ing := presentParticiple(lemma)
	pp := pastParticiple(lemma)

	switch {
	case tense == accido.Present && voice == accido.Active:
		return []string{ing}
	case tense == accido.Perfect && voice == accido.Passive:
		return []string{"having been " + pp, pp}
	case tense == accido.Future && voice == accido.Active:
		return []string{"going to " + lemma, "about to " + lemma}
	case tense == accido.Future && voice == accido.Passive:
		return []string{"going to be " + pp, "about to be " + pp}
	case voice == accido.Passive:
		return []string{"being " + pp}
	default:
		return []string{ing}
	}
}
