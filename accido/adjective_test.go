package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAdjective212(t *testing.T) {
	t.Parallel()
	a, err := MakeAdjective([]string{"bonus", "bona", "bonum"}, Term212, NewMeaning("good"))
	require.NoError(t, err)

	form, err := a.Get(AdjectiveKey(Positive, Feminine, Nominative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "bona", form)

	adv, err := a.Get(AdverbKey(Positive))
	require.NoError(t, err)
	assert.Equal(t, "bene", adv)
}

func TestMakeAdjective32Comparative(t *testing.T) {
	t.Parallel()
	a, err := MakeAdjective([]string{"levis", "leve"}, Term32, NewMeaning("light"))
	require.NoError(t, err)

	genSg, err := a.Get(AdjectiveKey(Comparative, Masculine, Genitive, Singular))
	require.NoError(t, err)
	assert.Equal(t, "levioris", genSg)
}

func TestMakeAdjectiveIrregularSuppletion(t *testing.T) {
	t.Parallel()
	a, err := MakeAdjective([]string{"bonus", "bona", "bonum"}, Term212, NewMeaning("good"))
	require.NoError(t, err)

	cmp, err := a.Get(AdjectiveKey(Comparative, Masculine, Nominative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "melior", cmp)

	spr, err := a.Get(AdjectiveKey(Superlative, Masculine, Nominative, Singular))
	require.NoError(t, err)
	assert.Equal(t, "optimus", spr)

	cmpAdv, err := a.Get(AdverbKey(Comparative))
	require.NoError(t, err)
	assert.Equal(t, "melius", cmpAdv)
}

func TestMakeAdjectiveNoAdverb(t *testing.T) {
	t.Parallel()
	a, err := MakeAdjective([]string{"ingens", "ingentis"}, Term31, NewMeaning("huge"))
	require.NoError(t, err)
	assert.True(t, a.NoAdverb)

	_, err = a.Get(AdverbKey(Positive))
	var noEnding *NoEndingError
	require.ErrorAs(t, err, &noEnding)
}

func TestMakeAdjective212RequiresThreeParts(t *testing.T) {
	t.Parallel()
	_, err := MakeAdjective([]string{"bonus", "bona"}, Term212, NewMeaning("good"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestMakeAdjective32RequiresDashIsEnding(t *testing.T) {
	t.Parallel()
	_, err := MakeAdjective([]string{"foo", "bar"}, Term32, NewMeaning("thing"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestAdjectiveRoundTripClosure(t *testing.T) {
	t.Parallel()
	a, err := MakeAdjective([]string{"bonus", "bona", "bonum"}, Term212, NewMeaning("good"))
	require.NoError(t, err)

	for key, form := range a.Forms() {
		keys := a.FindKeys(form)
		assert.Contains(t, keys, key)
	}
}
