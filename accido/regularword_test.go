package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRegularWord(t *testing.T) {
	t.Parallel()
	r, err := MakeRegularWord("et", NewMeaning("and"))
	require.NoError(t, err)
	assert.Equal(t, POSRegular, r.PartOfSpeech())
	assert.Equal(t, "et", r.Headword())

	count := 0
	for _, form := range r.Forms() {
		count++
		assert.Equal(t, "et", form)
	}
	assert.Equal(t, 1, count)
}

func TestMakeRegularWordRequiresForm(t *testing.T) {
	t.Parallel()
	_, err := MakeRegularWord("", NewMeaning("x"))
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}
