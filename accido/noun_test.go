package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeNounFirstDeclension(t *testing.T) {
	t.Parallel()
	n, err := MakeNoun("agricola", "agricolae", Masculine, NewMeaning("farmer"))
	require.NoError(t, err)
	assert.Equal(t, FirstDeclension, n.Declension)

	form, err := n.Get(NounKey(Nominative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "agricola", form)

	form, err = n.Get(NounKey(Genitive, Plural))
	require.NoError(t, err)
	assert.Equal(t, "agricolarum", form)
}

func TestMakeNounSecondDeclensionNeuter(t *testing.T) {
	t.Parallel()
	n, err := MakeNoun("bellum", "belli", Neuter, NewMeaning("war"))
	require.NoError(t, err)
	assert.Equal(t, SecondDeclension, n.Declension)

	nomPl, err := n.Get(NounKey(Nominative, Plural))
	require.NoError(t, err)
	assert.Equal(t, "bella", nomPl)

	// neuter nominative/vocative/accusative are syncretic
	acc, err := n.Get(NounKey(Accusative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "bellum", acc)
}

func TestMakeNounThirdDeclension(t *testing.T) {
	t.Parallel()
	n, err := MakeNoun("rex", "regis", Masculine, NewMeaning("king"))
	require.NoError(t, err)
	assert.Equal(t, ThirdDeclension, n.Declension)

	dat, err := n.Get(NounKey(Dative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "regi", dat)
}

func TestMakeNounRequiresNominative(t *testing.T) {
	t.Parallel()
	_, err := MakeNoun("", "agricolae", Masculine, NewMeaning("farmer"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestMakeNounRequiresGenitive(t *testing.T) {
	t.Parallel()
	_, err := MakeNoun("agricola", "", Masculine, NewMeaning("farmer"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestMakeNounIrregularEgo(t *testing.T) {
	t.Parallel()
	n, err := MakeNoun("ego", "", Masculine, NewMeaning("I"))
	require.NoError(t, err)

	form, err := n.Get(NounKey(Dative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "mihi", form)
}

func TestMakeNounUnrecognizedGenitive(t *testing.T) {
	t.Parallel()
	_, err := MakeNoun("foo", "bar", Masculine, NewMeaning("thing"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

// TestNounRoundTripClosure exercises P1/P2: every produced form maps back
// to a key whose own forward lookup still contains that form.
func TestNounRoundTripClosure(t *testing.T) {
	t.Parallel()
	n, err := MakeNoun("agricola", "agricolae", Masculine, NewMeaning("farmer"))
	require.NoError(t, err)

	count := 0
	for key, form := range n.Forms() {
		count++
		keys := n.FindKeys(form)
		assert.Contains(t, keys, key, "form %q at key %q did not round-trip", form, key.Words())

		forms, err := n.GetAll(key)
		require.NoError(t, err)
		assert.Contains(t, forms, form)
	}
	assert.Equal(t, 12, count)
}
