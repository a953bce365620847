package rogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/accido"
)

func TestDictionaryEntryNoun(t *testing.T) {
	t.Parallel()
	n, err := accido.MakeNoun("agricola", "agricolae", accido.Masculine, accido.NewMeaning("farmer"))
	require.NoError(t, err)
	assert.Equal(t, "farmer: agricola, agricolae, (m)", dictionaryEntry(n))
}

func TestPrincipalPartsVerb(t *testing.T) {
	t.Parallel()
	v := mustVerb(t)
	assert.Equal(t, []string{"capio", "capere", "cepi", "captus"}, principalParts(v))
}
