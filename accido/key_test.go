package accido

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndingKeyWordsNoun(t *testing.T) {
	t.Parallel()
	k := NounKey(Dative, Singular)
	assert.Equal(t, "dative singular", k.Words())
}

func TestEndingKeyWordsVerb(t *testing.T) {
	t.Parallel()
	k := VerbKey(Present, Active, Indicative, Third, Singular)
	assert.Equal(t, "third person present active indicative singular", k.Words())
}

func TestEndingKeyWordsParticiple(t *testing.T) {
	t.Parallel()
	k := VerbParticipleKey(Present, Active, Neuter, Accusative, Singular)
	assert.Equal(t, "present active participle neuter accusative singular", k.Words())
}

func TestByWordsSortsLexicographically(t *testing.T) {
	t.Parallel()
	keys := []EndingKey{
		NounKey(Nominative, Plural),
		NounKey(Dative, Singular),
		NounKey(Genitive, Singular),
	}
	sorted := byWords(keys)
	assert.Equal(t, "dative singular", sorted[0].Words())
	assert.Equal(t, "genitive singular", sorted[1].Words())
	assert.Equal(t, "nominative plural", sorted[2].Words())
}
