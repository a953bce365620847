package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAdverbRegular(t *testing.T) {
	t.Parallel()
	a, err := MakeAdverb("fortiter", NewMeaning("bravely"))
	require.NoError(t, err)

	cmp, err := a.Get(AdverbKey(Comparative))
	require.NoError(t, err)
	assert.Equal(t, "fortius", cmp)

	spr, err := a.Get(AdverbKey(Superlative))
	require.NoError(t, err)
	assert.Equal(t, "fortissime", spr)
}

func TestMakeAdverbIrregularSuppletion(t *testing.T) {
	t.Parallel()
	a, err := MakeAdverb("bene", NewMeaning("well"))
	require.NoError(t, err)

	cmp, err := a.Get(AdverbKey(Comparative))
	require.NoError(t, err)
	assert.Equal(t, "melius", cmp)
}

func TestMakeAdverbNoDegreeSuffix(t *testing.T) {
	t.Parallel()
	a, err := MakeAdverb("hodie", NewMeaning("today"))
	require.NoError(t, err)

	_, err = a.Get(AdverbKey(Comparative))
	var noEnding *NoEndingError
	require.ErrorAs(t, err, &noEnding)
}

func TestMakeAdverbRequiresForm(t *testing.T) {
	t.Parallel()
	_, err := MakeAdverb("", NewMeaning("x"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
