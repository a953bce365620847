package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeVerbFirstConjugation(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("amo", "amare", "amavi", "amatus", NewMeaning("love"), VerbFlags{})
	require.NoError(t, err)
	assert.Equal(t, FirstConjugation, v.Conjugation)

	form, err := v.Get(VerbKey(Present, Active, Indicative, First, Singular))
	require.NoError(t, err)
	assert.Equal(t, "amo", form)

	form, err = v.Get(VerbKey(Perfect, Active, Indicative, Third, Singular))
	require.NoError(t, err)
	assert.Equal(t, "amavit", form)
}

func TestMakeVerbMixedConjugation(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("capio", "capere", "cepi", "captus", NewMeaning("take"), VerbFlags{})
	require.NoError(t, err)
	assert.Equal(t, MixedConjugation, v.Conjugation)

	form, err := v.Get(VerbKey(Present, Active, Indicative, Third, Plural))
	require.NoError(t, err)
	assert.Equal(t, "capiunt", form)

	participle, err := v.Get(VerbParticipleKey(Present, Active, Neuter, Accusative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "capiens", participle)
}

func TestMakeVerbDeponent(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("hortor", "hortari", "hortatus sum", "", NewMeaning("encourage"), VerbFlags{})
	require.NoError(t, err)
	assert.True(t, v.Deponent)

	form, err := v.Get(VerbKey(Present, Active, Indicative, First, Singular))
	require.NoError(t, err)
	assert.Equal(t, "hortor", form)
}

func TestMakeVerbActiveOnlySuppressesPassive(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("amo", "amare", "amavi", "amatus", NewMeaning("love"), VerbFlags{ActiveOnly: true})
	require.NoError(t, err)

	_, err = v.Get(VerbKey(Present, Passive, Indicative, First, Singular))
	var noEnding *NoEndingError
	require.ErrorAs(t, err, &noEnding)
}

func TestMakeVerbIrregularSum(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("sum", "", "", "", NewMeaning("be"), VerbFlags{})
	require.NoError(t, err)

	form, err := v.Get(VerbKey(Present, Active, Indicative, Third, Singular))
	require.NoError(t, err)
	assert.Equal(t, "est", form)
}

func TestMakeVerbRequiresPresent(t *testing.T) {
	t.Parallel()
	_, err := MakeVerb("", "amare", "amavi", "amatus", NewMeaning("love"), VerbFlags{})
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestMakeVerbRequiresInfinitive(t *testing.T) {
	t.Parallel()
	_, err := MakeVerb("amo", "", "amavi", "amatus", NewMeaning("love"), VerbFlags{})
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

// TestVerbRoundTripClosure exercises P1/P2 across a regular verb's whole table.
func TestVerbRoundTripClosure(t *testing.T) {
	t.Parallel()
	v, err := MakeVerb("amo", "amare", "amavi", "amatus", NewMeaning("love"), VerbFlags{})
	require.NoError(t, err)

	for key, form := range v.Forms() {
		keys := v.FindKeys(form)
		assert.Contains(t, keys, key)
		forms, err := v.GetAll(key)
		require.NoError(t, err)
		assert.Contains(t, forms, form)
	}
}
