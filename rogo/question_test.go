package rogo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionMarshalEnvelope(t *testing.T) {
	t.Parallel()
	q := &ParseWordLatToCompQuestion{
		Prompt:          "agricolae",
		DictionaryEntry: "farmer: agricola, agricolae, (m)",
		MainAnswer:      "nominative plural",
		Answers:         []string{"dative singular", "genitive singular", "nominative plural", "vocative plural"},
	}

	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "ParseWordLatToCompQuestion", envelope["question_type"])

	payload, ok := envelope["ParseWordLatToCompQuestion"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "agricolae", payload["prompt"])
	assert.Equal(t, "nominative plural", payload["main_answer"])
}

func TestQuestionMarshalMultipleChoice(t *testing.T) {
	t.Parallel()
	q := &MultipleChoiceEngToLatQuestion{Prompt: "farmer", Answer: "agricola", Choices: []string{"agricola", "puella", "rex"}}
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, "MultipleChoiceEngToLatQuestion", envelope["question_type"])
}
