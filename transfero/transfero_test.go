package transfero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vocab-tuister/core/accido"
)

func TestFindInflectionsNounCases(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		key  accido.EndingKey
		want []string
	}{
		{"nominative singular", accido.NounKey(accido.Nominative, accido.Singular), []string{"farmer"}},
		{"genitive singular", accido.NounKey(accido.Genitive, accido.Singular), []string{"of a farmer", "of farmer", "of the farmer"}},
		{"dative plural", accido.NounKey(accido.Dative, accido.Plural), []string{"for farmers", "to farmers"}},
		{"ablative singular", accido.NounKey(accido.Ablative, accido.Singular), []string{"by farmer", "by means of farmer", "with farmer"}},
	}
	for _, c := range cases {
		got := FindInflections("farmer", accido.POSNoun, c.key, Options{})
		assert.ElementsMatch(t, c.want, got, c.name)
	}
}

func TestFindInflectionsAdjectiveDegrees(t *testing.T) {
	t.Parallel()
	got := FindInflections("light", accido.POSAdjective, accido.AdjectiveKey(accido.Comparative, accido.Masculine, accido.Nominative, accido.Singular), Options{})
	assert.Contains(t, got, "lighter")
	assert.Contains(t, got, "more light")
}

func TestMainInflectionComparative(t *testing.T) {
	t.Parallel()
	main := FindMainInflection("light", accido.POSAdjective, accido.AdjectiveKey(accido.Comparative, accido.Masculine, accido.Nominative, accido.Singular), Options{})
	assert.Equal(t, "lighter", main)
}

func TestVerbIndicativeForms(t *testing.T) {
	t.Parallel()
	present := FindInflections("hear", accido.POSVerb, accido.VerbKey(accido.Present, accido.Active, accido.Indicative, accido.Third, accido.Singular), Options{})
	assert.Contains(t, present, "hears")
	assert.Contains(t, present, "is hearing")
	assert.Contains(t, present, "does hear")

	future := FindInflections("hear", accido.POSVerb, accido.VerbKey(accido.Future, accido.Active, accido.Indicative, accido.Third, accido.Singular), Options{})
	assert.ElementsMatch(t, []string{"shall be hearing", "shall hear", "will be hearing", "will hear"}, future)
}

func TestDeponentVerbIsActiveOnly(t *testing.T) {
	t.Parallel()
	v, err := accido.MakeVerb("conor", "conari", "conatus sum", "", accido.NewMeaning("try"), accido.VerbFlags{})
	assert.NoError(t, err)
	for key, form := range v.Forms() {
		if key.Mood == accido.Indicative || key.Mood == accido.Subjunctive {
			_ = form
			assert.Equal(t, accido.Active, key.Voice, "deponent verb forms must be tagged active")
		}
	}
}

func TestSubjunctiveDegradesWithoutFlag(t *testing.T) {
	t.Parallel()
	forms := FindInflections("hear", accido.POSVerb, accido.VerbKey(accido.Present, accido.Active, accido.Subjunctive, accido.Third, accido.Singular), Options{EnglishSubjunctives: false})
	assert.Equal(t, []string{"hear"}, forms)
}

func TestSubjunctiveModalPeriphrasis(t *testing.T) {
	t.Parallel()
	forms := FindInflections("hear", accido.POSVerb, accido.VerbKey(accido.Present, accido.Active, accido.Subjunctive, accido.First, accido.Singular), Options{EnglishSubjunctives: true})
	assert.Contains(t, forms, "I may hear")
}

func TestAdjToAdvOverrideAndFallback(t *testing.T) {
	t.Parallel()
	well, err := AdjToAdv("good")
	assert.NoError(t, err)
	assert.Equal(t, "well", well)

	happily, err := AdjToAdv("happy")
	assert.NoError(t, err)
	assert.Equal(t, "happily", happily)
}

func TestFindSynonymsDegradesWithoutProvider(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"farmer"}, FindSynonyms(nil, "farmer"))
}

func TestPluralizeSuffixRules(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "farmers", pluralize("farmer"))
	assert.Equal(t, "cities", pluralize("city"))
	assert.Equal(t, "boxes", pluralize("box"))
	assert.Equal(t, "wives", pluralize("wife"))
}
