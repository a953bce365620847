package accido

import "strings"

// paradigmCell is one (gender, case, number) → form triple, used by the
// shared 2-1-2 and 3rd-declension single-termination generators that
// participles, gerundives, and 2-1-2/3-x adjectives all build on.
type paradigmCell struct {
	gender  Gender
	caseVal Case
	number  Number
	form    string
}

// adjective212Cells declines a 2-1-2 stem (e.g. "bon" for "bonus, -a, -um")
// across masculine/feminine/neuter, all cases, both numbers. Grounded on
// the teacher-adjacent reference's `_212_endings` (read in full while
// designing this repository): masculine and neuter share the 2nd
// declension, feminine follows the 1st.
func adjective212Cells(stem string) []paradigmCell {
	masc := map[Case][2]string{
		Nominative: {"us", "i"}, Vocative: {"e", "i"}, Accusative: {"um", "os"},
		Genitive: {"i", "orum"}, Dative: {"o", "is"}, Ablative: {"o", "is"},
	}
	fem := map[Case][2]string{
		Nominative: {"a", "ae"}, Vocative: {"a", "ae"}, Accusative: {"am", "as"},
		Genitive: {"ae", "arum"}, Dative: {"ae", "is"}, Ablative: {"a", "is"},
	}
	neut := map[Case][2]string{
		Nominative: {"um", "a"}, Vocative: {"um", "a"}, Accusative: {"um", "a"},
		Genitive: {"i", "orum"}, Dative: {"o", "is"}, Ablative: {"o", "is"},
	}
	var out []paradigmCell
	for _, c := range []Case{Nominative, Vocative, Accusative, Genitive, Dative, Ablative} {
		out = append(out,
			paradigmCell{Masculine, c, Singular, stem + masc[c][0]},
			paradigmCell{Masculine, c, Plural, stem + masc[c][1]},
			paradigmCell{Feminine, c, Singular, stem + fem[c][0]},
			paradigmCell{Feminine, c, Plural, stem + fem[c][1]},
			paradigmCell{Neuter, c, Singular, stem + neut[c][0]},
			paradigmCell{Neuter, c, Plural, stem + neut[c][1]},
		)
	}
	return out
}

// adjectiveThirdPositiveCells declines a 3rd-declension adjective's positive
// degree from its given nominatives (masculine and feminine may coincide,
// as for 1- and 2-termination adjectives) and its shared oblique stem.
// Grounded on `_31_endings`/`_32_endings`/`_33_endings` in the reference's
// adjective class: every termination shares the same oblique-case shape,
// differing only in which nominative/vocative/accusative forms are given
// outright versus derived.
func adjectiveThirdPositiveCells(mascNom, femNom, neutForm, stem string) []paradigmCell {
	return []paradigmCell{
		{Masculine, Nominative, Singular, mascNom}, {Masculine, Vocative, Singular, mascNom},
		{Masculine, Accusative, Singular, stem + "em"}, {Masculine, Genitive, Singular, stem + "is"},
		{Masculine, Dative, Singular, stem + "i"}, {Masculine, Ablative, Singular, stem + "i"},
		{Masculine, Nominative, Plural, stem + "es"}, {Masculine, Vocative, Plural, stem + "es"},
		{Masculine, Accusative, Plural, stem + "es"}, {Masculine, Genitive, Plural, stem + "ium"},
		{Masculine, Dative, Plural, stem + "ibus"}, {Masculine, Ablative, Plural, stem + "ibus"},

		{Feminine, Nominative, Singular, femNom}, {Feminine, Vocative, Singular, femNom},
		{Feminine, Accusative, Singular, stem + "em"}, {Feminine, Genitive, Singular, stem + "is"},
		{Feminine, Dative, Singular, stem + "i"}, {Feminine, Ablative, Singular, stem + "i"},
		{Feminine, Nominative, Plural, stem + "es"}, {Feminine, Vocative, Plural, stem + "es"},
		{Feminine, Accusative, Plural, stem + "es"}, {Feminine, Genitive, Plural, stem + "ium"},
		{Feminine, Dative, Plural, stem + "ibus"}, {Feminine, Ablative, Plural, stem + "ibus"},

		{Neuter, Nominative, Singular, neutForm}, {Neuter, Vocative, Singular, neutForm},
		{Neuter, Accusative, Singular, neutForm}, {Neuter, Genitive, Singular, stem + "is"},
		{Neuter, Dative, Singular, stem + "i"}, {Neuter, Ablative, Singular, stem + "i"},
		{Neuter, Nominative, Plural, stem + "ia"}, {Neuter, Vocative, Plural, stem + "ia"},
		{Neuter, Accusative, Plural, stem + "ia"}, {Neuter, Genitive, Plural, stem + "ium"},
		{Neuter, Dative, Plural, stem + "ibus"}, {Neuter, Ablative, Plural, stem + "ibus"},
	}
}

// adjectiveComparativeCells declines a comparative stem (e.g. "carior"),
// shared by every termination regardless of the positive degree's
// declension pattern. The neuter nominative/vocative/accusative singular
// drops the comparative's final "or" in favour of "us" (carior -> carius).
func adjectiveComparativeCells(cmpStem string) []paradigmCell {
	neutSg := strings.TrimSuffix(cmpStem, "or") + "us"
	return []paradigmCell{
		{Masculine, Nominative, Singular, cmpStem}, {Masculine, Vocative, Singular, cmpStem},
		{Masculine, Accusative, Singular, cmpStem + "em"}, {Masculine, Genitive, Singular, cmpStem + "is"},
		{Masculine, Dative, Singular, cmpStem + "i"}, {Masculine, Ablative, Singular, cmpStem + "e"},
		{Masculine, Nominative, Plural, cmpStem + "es"}, {Masculine, Vocative, Plural, cmpStem + "es"},
		{Masculine, Accusative, Plural, cmpStem + "es"}, {Masculine, Genitive, Plural, cmpStem + "um"},
		{Masculine, Dative, Plural, cmpStem + "ibus"}, {Masculine, Ablative, Plural, cmpStem + "ibus"},

		{Feminine, Nominative, Singular, cmpStem}, {Feminine, Vocative, Singular, cmpStem},
		{Feminine, Accusative, Singular, cmpStem + "em"}, {Feminine, Genitive, Singular, cmpStem + "is"},
		{Feminine, Dative, Singular, cmpStem + "i"}, {Feminine, Ablative, Singular, cmpStem + "e"},
		{Feminine, Nominative, Plural, cmpStem + "es"}, {Feminine, Vocative, Plural, cmpStem + "es"},
		{Feminine, Accusative, Plural, cmpStem + "es"}, {Feminine, Genitive, Plural, cmpStem + "um"},
		{Feminine, Dative, Plural, cmpStem + "ibus"}, {Feminine, Ablative, Plural, cmpStem + "ibus"},

		{Neuter, Nominative, Singular, neutSg}, {Neuter, Vocative, Singular, neutSg},
		{Neuter, Accusative, Singular, neutSg}, {Neuter, Genitive, Singular, cmpStem + "is"},
		{Neuter, Dative, Singular, cmpStem + "i"}, {Neuter, Ablative, Singular, cmpStem + "e"},
		{Neuter, Nominative, Plural, cmpStem + "a"}, {Neuter, Vocative, Plural, cmpStem + "a"},
		{Neuter, Accusative, Plural, cmpStem + "a"}, {Neuter, Genitive, Plural, cmpStem + "um"},
		{Neuter, Dative, Plural, cmpStem + "ibus"}, {Neuter, Ablative, Plural, cmpStem + "ibus"},
	}
}

// pronounCells flattens a per-gender, per-case [singular, plural] literal
// table into paradigm cells. Pronouns have no vocative (spec §3.1: the
// closed demonstrative/relative/interrogative set never takes one).
func pronounCells(table map[Gender]map[Case][2]string) []paradigmCell {
	var out []paradigmCell
	for _, gender := range []Gender{Masculine, Feminine, Neuter} {
		for _, c := range []Case{Nominative, Accusative, Genitive, Dative, Ablative} {
			forms := table[gender][c]
			out = append(out,
				paradigmCell{gender, c, Singular, forms[0]},
				paradigmCell{gender, c, Plural, forms[1]},
			)
		}
	}
	return out
}

// thirdDeclSingleTerminationCells declines a one-termination 3rd-declension
// i-stem adjective/participle (e.g. present participles, "ingens"-type
// adjectives) from its nominative singular form and oblique stem (e.g.
// nomSg="capiens", stem="capient"). Masculine and feminine share every
// form; neuter differs only in nominative/vocative/accusative.
func thirdDeclSingleTerminationCells(nomSg, stem string) []paradigmCell {
	mf := map[Case][2]string{
		Nominative: {nomSg, stem + "es"}, Vocative: {nomSg, stem + "es"},
		Accusative: {stem + "em", stem + "es"},
		Genitive:   {stem + "is", stem + "ium"},
		Dative:     {stem + "i", stem + "ibus"},
		Ablative:   {stem + "i", stem + "ibus"},
	}
	neut := map[Case][2]string{
		Nominative: {nomSg, stem + "ia"}, Vocative: {nomSg, stem + "ia"}, Accusative: {nomSg, stem + "ia"},
		Genitive: {stem + "is", stem + "ium"},
		Dative:   {stem + "i", stem + "ibus"},
		Ablative: {stem + "i", stem + "ibus"},
	}
	var out []paradigmCell
	for _, c := range []Case{Nominative, Vocative, Accusative, Genitive, Dative, Ablative} {
		out = append(out,
			paradigmCell{Masculine, c, Singular, mf[c][0]},
			paradigmCell{Masculine, c, Plural, mf[c][1]},
			paradigmCell{Feminine, c, Singular, mf[c][0]},
			paradigmCell{Feminine, c, Plural, mf[c][1]},
			paradigmCell{Neuter, c, Singular, neut[c][0]},
			paradigmCell{Neuter, c, Plural, neut[c][1]},
		)
	}
	return out
}
