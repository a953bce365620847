package rogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/accido"
)

func sampleWords(t *testing.T) []accido.Word {
	t.Helper()
	noun := mustNoun(t)
	verb := mustVerb(t)
	adj, err := accido.MakeAdjective([]string{"levis", "leve"}, accido.Term32, accido.NewMeaning("light"))
	require.NoError(t, err)
	return []accido.Word{noun, verb, adj}
}

func allIncluded() map[string]any {
	return map[string]any{
		"number-of-questions":             float64(5),
		"number-multiplechoice-options":   float64(3),
		"include-typein-engtolat":         true,
		"include-typein-lattoeng":         true,
		"include-parse":                   true,
		"include-inflect":                 true,
		"include-principal-parts":         true,
		"include-multiplechoice-engtolat": true,
		"include-multiplechoice-lattoeng": true,
	}
}

func TestGenerateQuestionsExactCount(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(allIncluded())
	require.NoError(t, err)

	asker := NewAsker(NewRand(), nil)
	questions, err := asker.GenerateQuestions(s, sampleWords(t))
	require.NoError(t, err)
	assert.Len(t, questions, 5)
	for _, q := range questions {
		assert.NotEmpty(t, q.QuestionType())
	}
}

func TestGenerateQuestionsNoTypeEnabled(t *testing.T) {
	t.Parallel()
	s, err := ParseSettings(map[string]any{"number-of-questions": float64(1)})
	require.NoError(t, err)

	asker := NewAsker(NewRand(), nil)
	_, err = asker.GenerateQuestions(s, sampleWords(t))
	var noQuestions *NoQuestionsError
	require.ErrorAs(t, err, &noQuestions)
	assert.Equal(t, "No question type has been enabled.", noQuestions.Error())
}

func TestGenerateQuestionsNoWordsAfterFiltering(t *testing.T) {
	t.Parallel()
	settings := allIncluded()
	settings["exclude-nouns"] = true
	settings["exclude-verbs"] = true
	settings["exclude-adjectives"] = true
	s, err := ParseSettings(settings)
	require.NoError(t, err)

	asker := NewAsker(NewRand(), nil)
	_, err = asker.GenerateQuestions(s, sampleWords(t))
	var noQuestions *NoQuestionsError
	require.ErrorAs(t, err, &noQuestions)
	assert.Equal(t, "No words in the vocab list after filtering.", noQuestions.Error())
}

func TestMultipleChoiceInvariants(t *testing.T) {
	t.Parallel()
	settings := map[string]any{
		"number-of-questions":             float64(20),
		"number-multiplechoice-options":   float64(3),
		"include-multiplechoice-engtolat": true,
		"include-multiplechoice-lattoeng": true,
	}
	s, err := ParseSettings(settings)
	require.NoError(t, err)

	asker := NewAsker(NewRand(), nil)
	questions, err := asker.GenerateQuestions(s, sampleWords(t))
	require.NoError(t, err)
	require.Len(t, questions, 20)

	for _, q := range questions {
		switch mc := q.(type) {
		case *MultipleChoiceEngToLatQuestion:
			assert.Contains(t, mc.Choices, mc.Answer)
			assert.Len(t, mc.Choices, 3)
			assertDistinct(t, mc.Choices)
		case *MultipleChoiceLatToEngQuestion:
			assert.Contains(t, mc.Choices, mc.Answer)
			assert.Len(t, mc.Choices, 3)
			assertDistinct(t, mc.Choices)
		}
	}
}

func assertDistinct(t *testing.T, values []string) {
	t.Helper()
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		assert.False(t, seen[v], "duplicate choice %q", v)
		seen[v] = true
	}
}
