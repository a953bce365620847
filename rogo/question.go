package rogo

import "encoding/json"

// Question is any of the seven question-object shapes the wire protocol
// emits (spec §6.2): a single-key object keyed by its question_type
// discriminator, carrying a payload keyed by the same name.
type Question interface {
	QuestionType() string
	MarshalJSON() ([]byte, error)
}

func marshalQuestion(questionType string, payload any) ([]byte, error) {
	return json.Marshal(map[string]any{
		"question_type": questionType,
		questionType:    payload,
	})
}

// MultipleChoiceEngToLatQuestion asks for the Latin equivalent of an
// English prompt among a set of distractors (spec §6.2, P5).
type MultipleChoiceEngToLatQuestion struct {
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Choices []string `json:"choices"`
}

func (q *MultipleChoiceEngToLatQuestion) QuestionType() string { return "MultipleChoiceEngToLatQuestion" }
func (q *MultipleChoiceEngToLatQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt  string   `json:"prompt"`
		Answer  string   `json:"answer"`
		Choices []string `json:"choices"`
	}{q.Prompt, q.Answer, q.Choices})
}

// MultipleChoiceLatToEngQuestion is the inverse direction of
// MultipleChoiceEngToLatQuestion.
type MultipleChoiceLatToEngQuestion struct {
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Choices []string `json:"choices"`
}

func (q *MultipleChoiceLatToEngQuestion) QuestionType() string { return "MultipleChoiceLatToEngQuestion" }
func (q *MultipleChoiceLatToEngQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt  string   `json:"prompt"`
		Answer  string   `json:"answer"`
		Choices []string `json:"choices"`
	}{q.Prompt, q.Answer, q.Choices})
}

// TypeInEngToLatQuestion asks the client to type the Latin form of an
// English prompt. Answers is the deduplicated, lexicographically sorted
// set of acceptable forms (spec §9 "Open question").
type TypeInEngToLatQuestion struct {
	Prompt     string   `json:"prompt"`
	MainAnswer string   `json:"main_answer"`
	Answers    []string `json:"answers"`
}

func (q *TypeInEngToLatQuestion) QuestionType() string { return "TypeInEngToLatQuestion" }
func (q *TypeInEngToLatQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt     string   `json:"prompt"`
		MainAnswer string   `json:"main_answer"`
		Answers    []string `json:"answers"`
	}{q.Prompt, q.MainAnswer, q.Answers})
}

// TypeInLatToEngQuestion is the inverse direction of TypeInEngToLatQuestion.
type TypeInLatToEngQuestion struct {
	Prompt     string   `json:"prompt"`
	MainAnswer string   `json:"main_answer"`
	Answers    []string `json:"answers"`
}

func (q *TypeInLatToEngQuestion) QuestionType() string { return "TypeInLatToEngQuestion" }
func (q *TypeInLatToEngQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt     string   `json:"prompt"`
		MainAnswer string   `json:"main_answer"`
		Answers    []string `json:"answers"`
	}{q.Prompt, q.MainAnswer, q.Answers})
}

// ParseWordLatToCompQuestion shows a Latin surface form and the vocab
// entry's dictionary line, and asks for the grammatical tag tuple
// identifying it (spec §6.2, scenario 1).
type ParseWordLatToCompQuestion struct {
	Prompt          string   `json:"prompt"`
	DictionaryEntry string   `json:"dictionary_entry"`
	MainAnswer      string   `json:"main_answer"`
	Answers         []string `json:"answers"`
}

func (q *ParseWordLatToCompQuestion) QuestionType() string { return "ParseWordLatToCompQuestion" }
func (q *ParseWordLatToCompQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt          string   `json:"prompt"`
		DictionaryEntry string   `json:"dictionary_entry"`
		MainAnswer      string   `json:"main_answer"`
		Answers         []string `json:"answers"`
	}{q.Prompt, q.DictionaryEntry, q.MainAnswer, q.Answers})
}

// ParseWordCompToLatQuestion is the inverse direction of
// ParseWordLatToCompQuestion: given a dictionary entry and a target tag
// tuple, produce the matching surface form (spec §6.2, scenarios 2 and 4).
type ParseWordCompToLatQuestion struct {
	Prompt     string   `json:"prompt"`
	Components string   `json:"components"`
	MainAnswer string   `json:"main_answer"`
	Answers    []string `json:"answers"`
}

func (q *ParseWordCompToLatQuestion) QuestionType() string { return "ParseWordCompToLatQuestion" }
func (q *ParseWordCompToLatQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt     string   `json:"prompt"`
		Components string   `json:"components"`
		MainAnswer string   `json:"main_answer"`
		Answers    []string `json:"answers"`
	}{q.Prompt, q.Components, q.MainAnswer, q.Answers})
}

// PrincipalPartsQuestion asks for a verb's (or noun's, or adjective's)
// principal parts in Latin-grammar-convention order.
type PrincipalPartsQuestion struct {
	Prompt         string   `json:"prompt"`
	PrincipalParts []string `json:"principal_parts"`
}

func (q *PrincipalPartsQuestion) QuestionType() string { return "PrincipalPartsQuestion" }
func (q *PrincipalPartsQuestion) MarshalJSON() ([]byte, error) {
	return marshalQuestion(q.QuestionType(), struct {
		Prompt         string   `json:"prompt"`
		PrincipalParts []string `json:"principal_parts"`
	}{q.Prompt, q.PrincipalParts})
}
