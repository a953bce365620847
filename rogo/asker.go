package rogo

import (
	"sort"

	"github.com/vocab-tuister/core/accido"
	"github.com/vocab-tuister/core/transfero"
)

// maxRetries bounds the sampling retry loop (spec §4.4 point 4), grounded
// on the upstream reference's MAX_RETRIES constant.
const maxRetries = 1000

// Asker draws questions from a filtered candidate pool (spec §4.4 phase 2).
type Asker struct {
	rand     *Rand
	synonyms transfero.SynonymProvider
}

// NewAsker builds an Asker. synonyms may be nil; FindSynonyms degrades
// gracefully in that case (spec §9 "Synonym provider").
func NewAsker(rng *Rand, synonyms transfero.SynonymProvider) *Asker {
	return &Asker{rand: rng, synonyms: synonyms}
}

var questionTypeSettingNames = []string{
	"include-typein-engtolat", "include-typein-lattoeng", "include-parse", "include-inflect",
	"include-principal-parts", "include-multiplechoice-engtolat", "include-multiplechoice-lattoeng",
}

// GenerateQuestions runs the full sample-and-assemble phase (spec §4.4
// points 2-5) against the held vocab list's words.
func (a *Asker) GenerateQuestions(settings *Settings, words []accido.Word) ([]Question, error) {
	candidates := filterCandidates(settings, words)
	if len(candidates) == 0 {
		return nil, &NoQuestionsError{Message: "No words in the vocab list after filtering."}
	}

	var enabledTypes []string
	for _, name := range questionTypeSettingNames {
		if settings.included(name) {
			enabledTypes = append(enabledTypes, name)
		}
	}
	if len(enabledTypes) == 0 {
		return nil, &NoQuestionsError{Message: "No question type has been enabled."}
	}

	opts := transfero.Options{EnglishSubjunctives: settings.EnglishSubjunctives}

	questions := make([]Question, 0, settings.NumberOfQuestions)
	for len(questions) < settings.NumberOfQuestions {
		q, err := a.drawOne(settings, candidates, enabledTypes, opts)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// drawOne performs one retry-bounded draw (spec §4.4 point 4 steps i-iii).
func (a *Asker) drawOne(settings *Settings, candidates []candidate, enabledTypes []string, opts transfero.Options) (Question, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		typeName := enabledTypes[a.rand.Intn(len(enabledTypes))]
		c := candidates[a.rand.Intn(len(candidates))]
		if !englishRenderable(settings, typeName, c.Key) {
			continue
		}
		q, ok := a.build(settings, typeName, c, candidates, opts)
		if ok {
			return q, nil
		}
	}
	return nil, &NoQuestionsError{Message: "No words in the vocab list after filtering."}
}

// englishRenderable gates a candidate out of the English-direction question
// types when its key's mood is one transfero renders as a gerund-derived
// verbal noun but the session has not opted into that rendering (spec
// §6.3's "english-verbal-nouns" flag), or when its key is subjunctive and
// "english-subjunctives" is off (transfero.FindInflections itself has
// no opinion here, so rogo enforces it before ever calling transfero).
func englishRenderable(settings *Settings, typeName string, key accido.EndingKey) bool {
	switch typeName {
	case "include-typein-engtolat", "include-typein-lattoeng",
		"include-multiplechoice-engtolat", "include-multiplechoice-lattoeng":
		if !settings.EnglishVerbalNouns && (key.Mood == accido.Gerund || key.Mood == accido.Gerundive) {
			return false
		}
		if !settings.EnglishSubjunctives && key.Mood == accido.Subjunctive {
			return false
		}
	}
	return true
}

func (a *Asker) build(settings *Settings, typeName string, c candidate, pool []candidate, opts transfero.Options) (Question, bool) {
	switch typeName {
	case "include-typein-engtolat":
		return a.buildTypeInEngToLat(c, opts)
	case "include-typein-lattoeng":
		return a.buildTypeInLatToEng(c, opts)
	case "include-parse":
		return a.buildParseWordLatToComp(c)
	case "include-inflect":
		return a.buildParseWordCompToLat(c)
	case "include-principal-parts":
		return a.buildPrincipalParts(c)
	case "include-multiplechoice-engtolat":
		return a.buildMultipleChoiceEngToLat(settings, c, pool, opts)
	case "include-multiplechoice-lattoeng":
		return a.buildMultipleChoiceLatToEng(settings, c, pool, opts)
	default:
		return nil, false
	}
}

func (a *Asker) buildTypeInEngToLat(c candidate, opts transfero.Options) (Question, bool) {
	meaning := c.Word.Meanings().Principal()
	if meaning == "" {
		return nil, false
	}
	prompt := transfero.FindMainInflection(meaning, c.Word.PartOfSpeech(), c.Key, opts)
	latin, err := c.Word.GetAll(c.Key)
	if err != nil || len(latin) == 0 {
		return nil, false
	}
	return &TypeInEngToLatQuestion{
		Prompt:     prompt,
		MainAnswer: c.Form,
		Answers:    dedupeSortedStrings(latin),
	}, true
}

func (a *Asker) buildTypeInLatToEng(c candidate, opts transfero.Options) (Question, bool) {
	meaning := c.Word.Meanings().Principal()
	if meaning == "" {
		return nil, false
	}
	answers := transfero.FindInflections(meaning, c.Word.PartOfSpeech(), c.Key, opts)
	if len(answers) == 0 {
		return nil, false
	}
	return &TypeInLatToEngQuestion{
		Prompt:     c.Form,
		MainAnswer: transfero.FindMainInflection(meaning, c.Word.PartOfSpeech(), c.Key, opts),
		Answers:    answers,
	}, true
}

func (a *Asker) buildParseWordLatToComp(c candidate) (Question, bool) {
	keys := c.Word.FindKeys(c.Form)
	if len(keys) == 0 {
		return nil, false
	}
	answers := make([]string, 0, len(keys))
	for _, k := range keys {
		answers = append(answers, k.Words())
	}
	return &ParseWordLatToCompQuestion{
		Prompt:          c.Form,
		DictionaryEntry: dictionaryEntry(c.Word),
		MainAnswer:      c.Key.Words(),
		Answers:         dedupeSortedStrings(answers),
	}, true
}

func (a *Asker) buildParseWordCompToLat(c candidate) (Question, bool) {
	forms, err := c.Word.GetAll(c.Key)
	if err != nil || len(forms) == 0 {
		return nil, false
	}
	return &ParseWordCompToLatQuestion{
		Prompt:     dictionaryEntry(c.Word),
		Components: c.Key.Words(),
		MainAnswer: c.Form,
		Answers:    dedupeSortedStrings(forms),
	}, true
}

func (a *Asker) buildPrincipalParts(c candidate) (Question, bool) {
	parts := principalParts(c.Word)
	if len(parts) == 0 {
		return nil, false
	}
	return &PrincipalPartsQuestion{
		Prompt:         c.Word.Meanings().Principal(),
		PrincipalParts: parts,
	}, true
}

func (a *Asker) buildMultipleChoiceEngToLat(settings *Settings, c candidate, pool []candidate, opts transfero.Options) (Question, bool) {
	meaning := c.Word.Meanings().Principal()
	if meaning == "" {
		return nil, false
	}
	prompt := transfero.FindMainInflection(meaning, c.Word.PartOfSpeech(), c.Key, opts)
	distractors := a.distinctDistractorForms(c, pool, settings.NumberMultipleChoiceOptions-1)
	if len(distractors) < settings.NumberMultipleChoiceOptions-1 {
		return nil, false
	}
	choices := append([]string{c.Form}, distractors...)
	a.rand.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return &MultipleChoiceEngToLatQuestion{Prompt: prompt, Answer: c.Form, Choices: choices}, true
}

func (a *Asker) buildMultipleChoiceLatToEng(settings *Settings, c candidate, pool []candidate, opts transfero.Options) (Question, bool) {
	meaning := c.Word.Meanings().Principal()
	if meaning == "" {
		return nil, false
	}
	answer := transfero.FindMainInflection(meaning, c.Word.PartOfSpeech(), c.Key, opts)
	distractors := a.distinctDistractorMeanings(c, pool, settings.NumberMultipleChoiceOptions-1, opts)
	if len(distractors) < settings.NumberMultipleChoiceOptions-1 {
		return nil, false
	}
	choices := append([]string{answer}, distractors...)
	a.rand.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return &MultipleChoiceLatToEngQuestion{Prompt: c.Form, Answer: answer, Choices: choices}, true
}

// distinctDistractorForms draws up to n Latin surface forms from other
// headwords in the pool, never repeating the correct answer (spec §4.4
// point 4 step iii).
func (a *Asker) distinctDistractorForms(c candidate, pool []candidate, n int) []string {
	seen := map[string]bool{c.Form: true}
	var out []string
	for attempt := 0; attempt < maxRetries && len(out) < n; attempt++ {
		other := pool[a.rand.Intn(len(pool))]
		if other.Word.Headword() == c.Word.Headword() || seen[other.Form] {
			continue
		}
		seen[other.Form] = true
		out = append(out, other.Form)
	}
	return out
}

// distinctDistractorMeanings draws up to n English distractors, excluding
// synonyms of the correct meaning so a distractor is never also correct
// (spec §9 "Synonym provider").
func (a *Asker) distinctDistractorMeanings(c candidate, pool []candidate, n int, opts transfero.Options) []string {
	correct := c.Word.Meanings().Principal()
	excluded := map[string]bool{correct: true}
	for _, syn := range transfero.FindSynonyms(a.synonyms, correct) {
		excluded[syn] = true
	}

	seen := map[string]bool{}
	var out []string
	for attempt := 0; attempt < maxRetries && len(out) < n; attempt++ {
		other := pool[a.rand.Intn(len(pool))]
		if other.Word.Headword() == c.Word.Headword() {
			continue
		}
		meaning := other.Word.Meanings().Principal()
		if meaning == "" || excluded[meaning] {
			continue
		}
		form := transfero.FindMainInflection(meaning, other.Word.PartOfSpeech(), other.Key, opts)
		if form == "" || seen[form] {
			continue
		}
		seen[form] = true
		out = append(out, form)
	}
	return out
}

func dedupeSortedStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
