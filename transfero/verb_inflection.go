package transfero

import "github.com/vocab-tuister/core/accido"

// subjectPronouns renders person × number as the subject pronoun(s) a
// periphrastic or modal construction is built on (spec §4.3's "gender
// expansion for 3rd-person {he, she, it}"; second-person plural expands to
// both the plain and emphatic "you all" forms, grounded on the upstream
// reference's equivalent expansion for second-person-plural subjunctives).
func subjectPronouns(person accido.Person, number accido.Number) []string {
	switch {
	case person == accido.First && number == accido.Singular:
		return []string{"I"}
	case person == accido.First && number == accido.Plural:
		return []string{"we"}
	case person == accido.Second && number == accido.Singular:
		return []string{"you"}
	case person == accido.Second && number == accido.Plural:
		return []string{"you", "you all"}
	case person == accido.Third && number == accido.Singular:
		return []string{"he", "she", "it"}
	case person == accido.Third && number == accido.Plural:
		return []string{"they"}
	default:
		return []string{""}
	}
}

// beForm renders "to be" in the present tense, agreeing with person/number.
func beForm(person accido.Person, number accido.Number) string {
	switch {
	case person == accido.First && number == accido.Singular:
		return "am"
	case number == accido.Plural || person == accido.Second:
		return "are"
	default:
		return "is"
	}
}

// wasWereForm renders "to be" in the past tense, agreeing with person/number.
func wasWereForm(person accido.Person, number accido.Number) string {
	if number == accido.Plural || person == accido.Second {
		return "were"
	}
	return "was"
}

// doForm renders "to do" in the present tense, agreeing with person/number.
func doForm(person accido.Person, number accido.Number) string {
	if person == accido.Third && number == accido.Singular {
		return "does"
	}
	return "do"
}

// conjugatedPresent renders the finite present-tense form of lemma for the
// given person/number, prefixed by the subject pronoun(s) required outside
// the third-person-singular (where the lemma's own inflection already
// encodes the subject, per spec §4.3's example "hears", not "he hears", as
// the unmarked present-active-indicative form).
func conjugatedPresent(lemma string, person accido.Person, number accido.Number) []string {
	if person == accido.Third && number == accido.Singular {
		return []string{thirdSingularPresent(lemma)}
	}
	var out []string
	for _, pn := range subjectPronouns(person, number) {
		out = append(out, pn+" "+lemma)
	}
	return out
}

// verbForms dispatches by mood to the correct English rendering rules.
func verbForms(lemma string, key accido.EndingKey, opts Options) []string {
	switch key.Mood {
	case accido.Infinitive:
		return infinitiveForms(lemma, key.Voice)
	case accido.Imperative:
		return imperativeForms(lemma, key.Person, key.Number, key.Voice)
	case accido.Participle:
		return participleForms(lemma, key.Tense, key.Voice)
	case accido.Gerund:
		return []string{presentParticiple(lemma)}
	case accido.Gerundive:
		return []string{"to be " + pastParticiple(lemma)}
	case accido.Supine:
		return []string{"to " + lemma}
	case accido.Subjunctive:
		return subjunctiveForms(lemma, key.Tense, key.Voice, key.Person, key.Number, opts)
	default:
		return indicativeForms(lemma, key.Tense, key.Voice, key.Person, key.Number)
	}
}

func mainVerbForm(lemma string, key accido.EndingKey, opts Options) string {
	forms := verbForms(lemma, key, opts)
	if len(forms) == 0 {
		return lemma
	}
	return forms[0]
}

// indicativeForms implements spec §4.3's periphrasis rules for the finite
// indicative active/passive paradigm across all six tenses.
func indicativeForms(lemma string, tense accido.Tense, voice accido.Voice, person accido.Person, number accido.Number) []string {
	if voice == accido.Passive {
		return passiveIndicativeForms(lemma, tense, person, number)
	}

	pp := pastParticiple(lemma)
	ing := presentParticiple(lemma)
	switch tense {
	case accido.Present:
		forms := conjugatedPresent(lemma, person, number)
		forms = append(forms, beForm(person, number)+" "+ing, doForm(person, number)+" "+lemma)
		return forms
	case accido.Imperfect:
		return []string{wasWereForm(person, number) + " " + ing, "used to " + lemma}
	case accido.Future:
		return []string{"will " + lemma, "shall " + lemma, "will be " + ing, "shall be " + ing}
	case accido.Perfect:
		has := "have"
		if person == accido.Third && number == accido.Singular {
			has = "has"
		}
		return []string{pastTense(lemma), has + " " + pp}
	case accido.Pluperfect:
		return []string{"had " + pp}
	case accido.FuturePerfect:
		return []string{"will have " + pp, "shall have " + pp}
	default:
		return []string{lemma}
	}
}

func passiveIndicativeForms(lemma string, tense accido.Tense, person accido.Person, number accido.Number) []string {
	pp := pastParticiple(lemma)
	switch tense {
	case accido.Present:
		return []string{beForm(person, number) + " " + pp, beForm(person, number) + " being " + pp}
	case accido.Imperfect:
		return []string{wasWereForm(person, number) + " being " + pp}
	case accido.Future:
		return []string{"will be " + pp, "shall be " + pp}
	case accido.Perfect:
		has := "have"
		if person == accido.Third && number == accido.Singular {
			has = "has"
		}
		return []string{has + " been " + pp}
	case accido.Pluperfect:
		return []string{"had been " + pp}
	case accido.FuturePerfect:
		return []string{"will have been " + pp, "shall have been " + pp}
	default:
		return []string{pp}
	}
}

// subjunctiveForms implements spec §4.3's "modal periphrases when the
// configuration flag enables them"; disabled, a subjunctive has no English
// rendering and degrades to the bare lemma so callers never see an empty set.
func subjunctiveForms(lemma string, tense accido.Tense, voice accido.Voice, person accido.Person, number accido.Number, opts Options) []string {
	if !opts.EnglishSubjunctives {
		return []string{lemma}
	}

	modal := "may"
	if tense == accido.Imperfect || tense == accido.Pluperfect {
		modal = "might"
	}

	var out []string
	for _, pn := range subjectPronouns(person, number) {
		switch {
		case voice == accido.Passive && (tense == accido.Perfect || tense == accido.Pluperfect):
			out = append(out, pn+" "+modal+" have been "+pastParticiple(lemma))
		case voice == accido.Passive:
			out = append(out, pn+" "+modal+" be "+pastParticiple(lemma))
		case tense == accido.Perfect || tense == accido.Pluperfect:
			out = append(out, pn+" "+modal+" have "+pastParticiple(lemma))
		default:
			out = append(out, pn+" "+modal+" "+lemma)
		}
	}
	return out
}

// infinitiveForms renders an infinitive by voice alone: "to <lemma>" for
// active, "to be <past participle>" for passive. Accido generates present,
// perfect and future-passive infinitives (verb.go); their tense is not
// distinguished here.
func infinitiveForms(lemma string, voice accido.Voice) []string {
	if voice == accido.Passive {
		return []string{"to be " + pastParticiple(lemma)}
	}
	return []string{"to " + lemma}
}

// imperativeForms renders "let ..." alongside the bare imperative, per spec
// §4.3 ("imperatives with and without 'let ...'").
func imperativeForms(lemma string, person accido.Person, number accido.Number, voice accido.Voice) []string {
	subject := "him"
	if number == accido.Plural {
		subject = "them"
	}
	if voice == accido.Passive {
		pp := pastParticiple(lemma)
		return []string{"let " + subject + " be " + pp}
	}
	if number == accido.Plural {
		return []string{lemma, "all of you " + lemma, "let them " + lemma}
	}
	return []string{lemma, "let " + subject + " " + lemma}
}
