package rogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/accido"
)

func mustNoun(t *testing.T) accido.Word {
	t.Helper()
	n, err := accido.MakeNoun("agricola", "agricolae", accido.Masculine, accido.NewMeaning("farmer"))
	require.NoError(t, err)
	return n
}

func mustVerb(t *testing.T) accido.Word {
	t.Helper()
	v, err := accido.MakeVerb("capio", "capere", "cepi", "captus", accido.NewMeaning("take"), accido.VerbFlags{})
	require.NoError(t, err)
	return v
}

func TestWordExcludedBlanket(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{"number-of-questions": float64(1), "exclude-nouns": true})
	require.NoError(t, err)
	assert.True(t, wordExcluded(s, mustNoun(t)))
	assert.False(t, wordExcluded(s, mustVerb(t)))
}

func TestWordExcludedByConjugation(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{"number-of-questions": float64(1), "exclude-verb-mixed-conjugation": true})
	require.NoError(t, err)
	assert.True(t, wordExcluded(s, mustVerb(t)))
}

func TestKeyExcludedByCase(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{"number-of-questions": float64(1), "exclude-noun-genitive": true})
	require.NoError(t, err)
	key := accido.NounKey(accido.Genitive, accido.Singular)
	assert.True(t, keyExcluded(s, accido.POSNoun, key))
	assert.False(t, keyExcluded(s, accido.POSNoun, accido.NounKey(accido.Nominative, accido.Singular)))
}

func TestKeyExcludedByTenseVoiceMood(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{
		"number-of-questions":                     float64(1),
		"exclude-verb-perfect-passive-indicative": true,
	})
	require.NoError(t, err)
	key := accido.VerbKey(accido.Perfect, accido.Passive, accido.Indicative, accido.Third, accido.Singular)
	assert.True(t, keyExcluded(s, accido.POSVerb, key))
	activeKey := accido.VerbKey(accido.Perfect, accido.Active, accido.Indicative, accido.Third, accido.Singular)
	assert.False(t, keyExcluded(s, accido.POSVerb, activeKey))
}

func TestFilterMonotonicity(t *testing.T) {
	t.Parallel()
	words := []accido.Word{mustNoun(t), mustVerb(t)}
	before, err := ParseSettings(map[string]any{"number-of-questions": float64(1)})
	require.NoError(t, err)
	after, err := ParseSettings(map[string]any{"number-of-questions": float64(1), "exclude-verbs": true})
	require.NoError(t, err)

	beforeCandidates := filterCandidates(before, words)
	afterCandidates := filterCandidates(after, words)
	assert.LessOrEqual(t, len(afterCandidates), len(beforeCandidates))
}

func TestFilterCandidatesIncludesSurvivingCells(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{"number-of-questions": float64(1)})
	require.NoError(t, err)
	candidates := filterCandidates(s, []accido.Word{mustNoun(t)})
	assert.NotEmpty(t, candidates)
	for _, c := range candidates {
		assert.Equal(t, accido.POSNoun, c.Word.PartOfSpeech())
	}
}
