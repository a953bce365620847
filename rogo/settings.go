// Package rogo implements the session engine: settings validation,
// candidate-pool filtering, question sampling, and question-object assembly
// (spec §4.4).
package rogo

import (
	"fmt"
	"sort"
	"strings"
)

// booleanSettingNames is the closed schema of recognized boolean settings
// (spec §4.4 point 1's "closed schema of recognized settings"), transcribed
// from the upstream reference's settings wizard
// (`client/internal/configtui/model.go`, read in full) since no single
// Python settings-schema file was retrieved for this pack. Every name here
// defaults to false if the caller omits it — only "number-of-questions" is
// a required key (see ParseSettings); requiring every one of these ~100
// optional exclusion flags would make nearly every settings payload fail
// validation for no benefit.
var booleanSettingNames = []string{
	"exclude-verbs", "exclude-deponents",
	"exclude-verb-first-conjugation", "exclude-verb-second-conjugation",
	"exclude-verb-third-conjugation", "exclude-verb-fourth-conjugation",
	"exclude-verb-mixed-conjugation", "exclude-verb-irregular-conjugation",
	"exclude-verb-present-active-indicative", "exclude-verb-imperfect-active-indicative",
	"exclude-verb-future-active-indicative", "exclude-verb-perfect-active-indicative",
	"exclude-verb-pluperfect-active-indicative", "exclude-verb-future-perfect-active-indicative",
	"exclude-verb-present-passive-indicative", "exclude-verb-imperfect-passive-indicative",
	"exclude-verb-future-passive-indicative", "exclude-verb-perfect-passive-indicative",
	"exclude-verb-pluperfect-passive-indicative", "exclude-verb-future-perfect-passive-indicative",
	"exclude-verb-present-active-subjunctive", "exclude-verb-imperfect-active-subjunctive",
	"exclude-verb-perfect-active-subjunctive", "exclude-verb-pluperfect-active-subjunctive",
	"exclude-verb-present-active-imperative", "exclude-verb-future-active-imperative",
	"exclude-verb-present-passive-imperative", "exclude-verb-future-passive-imperative",
	"exclude-verb-present-active-infinitive", "exclude-verb-future-active-infinitive",
	"exclude-verb-perfect-active-infinitive", "exclude-verb-present-passive-infinitive",
	"exclude-verb-future-passive-infinitive", "exclude-verb-perfect-passive-infinitive",
	"exclude-verb-singular", "exclude-verb-plural",
	"exclude-verb-1st-person", "exclude-verb-2nd-person", "exclude-verb-3rd-person",

	"exclude-participles", "exclude-participle-present-active",
	"exclude-participle-perfect-passive", "exclude-participle-future-active",
	"exclude-participle-masculine", "exclude-participle-feminine", "exclude-participle-neuter",
	"exclude-participle-nominative", "exclude-participle-vocative", "exclude-participle-accusative",
	"exclude-participle-genitive", "exclude-participle-dative", "exclude-participle-ablative",
	"exclude-participle-singular", "exclude-participle-plural",

	"exclude-gerundives", "exclude-gerunds", "exclude-supines",

	"exclude-nouns", "exclude-noun-first-declension", "exclude-noun-second-declension",
	"exclude-noun-third-declension", "exclude-noun-fourth-declension",
	"exclude-noun-fifth-declension", "exclude-noun-irregular-declension",
	"exclude-noun-nominative", "exclude-noun-vocative", "exclude-noun-accusative",
	"exclude-noun-genitive", "exclude-noun-dative", "exclude-noun-ablative",
	"exclude-noun-singular", "exclude-noun-plural",

	"exclude-adjectives", "exclude-adjective-212-declension", "exclude-adjective-third-declension",
	"exclude-adjective-masculine", "exclude-adjective-feminine", "exclude-adjective-neuter",
	"exclude-adjective-nominative", "exclude-adjective-vocative", "exclude-adjective-accusative",
	"exclude-adjective-genitive", "exclude-adjective-dative", "exclude-adjective-ablative",
	"exclude-adjective-singular", "exclude-adjective-plural",
	"exclude-adjective-positive", "exclude-adjective-comparative", "exclude-adjective-superlative",

	"exclude-adverbs", "exclude-adverb-positive", "exclude-adverb-comparative", "exclude-adverb-superlative",

	"exclude-pronouns", "exclude-pronoun-masculine", "exclude-pronoun-feminine", "exclude-pronoun-neuter",
	"exclude-pronoun-nominative", "exclude-pronoun-vocative", "exclude-pronoun-accusative",
	"exclude-pronoun-genitive", "exclude-pronoun-dative", "exclude-pronoun-ablative",
	"exclude-pronoun-singular", "exclude-pronoun-plural",

	"exclude-regulars",

	"english-subjunctives", "english-verbal-nouns",

	"include-typein-engtolat", "include-typein-lattoeng", "include-parse", "include-inflect",
	"include-principal-parts", "include-multiplechoice-engtolat", "include-multiplechoice-lattoeng",
}

// integerSettingNames is the closed schema of recognized integer settings.
// "number-of-questions" is required; "number-multiplechoice-options" is
// optional and defaults to 3 (grounded on the upstream reference's
// DEFAULT_SETTINGS).
var integerSettingNames = []string{"number-of-questions", "number-multiplechoice-options"}

const requiredSetting = "number-of-questions"

func isRecognized(key string) bool {
	for _, n := range booleanSettingNames {
		if n == key {
			return true
		}
	}
	for _, n := range integerSettingNames {
		if n == key {
			return true
		}
	}
	return false
}

// InvalidSettingsError reports a settings payload that failed validation
// (spec §4.4 point 1, §7, P7). Message is the exact detail text; the HTTP
// boundary (server package) wraps it per spec §6.1's error shape.
type InvalidSettingsError struct {
	Message string
}

func (e *InvalidSettingsError) Error() string { return e.Message }

// Settings is the validated, typed form of a `/session` request body
// (spec §6). Exclusion flags and the question-type toggles are kept in
// lookup maps rather than ~100 individual struct fields: rules.go consults
// them directly by the same names the wire protocol and the settings wizard
// use, which keeps the mapping between wire key and filter predicate
// traceable without a macro-generated struct.
type Settings struct {
	NumberOfQuestions           int
	NumberMultipleChoiceOptions int
	EnglishSubjunctives         bool
	EnglishVerbalNouns          bool
	IncludeTypes                map[string]bool
	Exclude                     map[string]bool
}

// ParseSettings validates a raw settings payload (as decoded from JSON into
// Go's natural `map[string]any` shape) against the closed schema, then
// builds a Settings (spec §4.4 point 1).
//
// Validation order matches spec §4.4: missing required keys first, then
// unrecognized keys, then type mismatches on every recognized, present key.
// §4.4 names exactly three failure shapes (missing/unrecognized/wrong-type);
// out-of-range integers (e.g. number-of-questions=0) have no fourth error
// shape defined, so they are clamped to their documented minimum instead of
// rejected.
func ParseSettings(raw map[string]any) (*Settings, error) {
	if _, ok := raw[requiredSetting]; !ok {
		return nil, &InvalidSettingsError{
			Message: fmt.Sprintf("Required settings are missing: '%s'.", requiredSetting),
		}
	}

	var unrecognized []string
	for key := range raw {
		if !isRecognized(key) {
			unrecognized = append(unrecognized, key)
		}
	}
	if len(unrecognized) > 0 {
		sort.Strings(unrecognized)
		return nil, &InvalidSettingsError{
			Message: fmt.Sprintf("Unrecognised settings were provided: %s.", quoteJoin(unrecognized)),
		}
	}

	for _, key := range integerSettingNames {
		if v, ok := raw[key]; ok {
			if _, ok := asInt(v); !ok {
				return nil, &InvalidSettingsError{
					Message: fmt.Sprintf("Key '%s' must be an integer (got type %s).", key, jsonTypeName(v)),
				}
			}
		}
	}
	for _, key := range booleanSettingNames {
		if v, ok := raw[key]; ok {
			if _, ok := v.(bool); !ok {
				return nil, &InvalidSettingsError{
					Message: fmt.Sprintf("Key '%s' must be a boolean (got type %s).", key, jsonTypeName(v)),
				}
			}
		}
	}

	s := &Settings{
		NumberMultipleChoiceOptions: 3,
		IncludeTypes:                make(map[string]bool),
		Exclude:                     make(map[string]bool),
	}
	n, _ := asInt(raw[requiredSetting])
	s.NumberOfQuestions = max(n, 1)
	if v, ok := raw["number-multiplechoice-options"]; ok {
		parsed, _ := asInt(v)
		s.NumberMultipleChoiceOptions = max(parsed, 2)
	}
	if v, ok := raw["english-subjunctives"].(bool); ok {
		s.EnglishSubjunctives = v
	}
	if v, ok := raw["english-verbal-nouns"].(bool); ok {
		s.EnglishVerbalNouns = v
	}
	for _, name := range []string{
		"include-typein-engtolat", "include-typein-lattoeng", "include-parse", "include-inflect",
		"include-principal-parts", "include-multiplechoice-engtolat", "include-multiplechoice-lattoeng",
	} {
		if v, ok := raw[name].(bool); ok {
			s.IncludeTypes[name] = v
		}
	}
	for _, name := range booleanSettingNames {
		if v, ok := raw[name].(bool); ok {
			s.Exclude[name] = v
		}
	}

	return s, nil
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	return strings.Join(quoted, ", ")
}

// asInt accepts a JSON-decoded numeric value (float64, per encoding/json's
// default `any` unmarshaling) that represents a whole number.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case bool:
		return "bool"
	case string:
		return "str"
	case float64, int:
		return "int"
	case nil:
		return "NoneType"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// excluded reports whether name is set to true in raw settings (absence
// defaults to false, spec §4.4's exclusion-flag default).
func (s *Settings) excluded(name string) bool {
	return s.Exclude[name]
}

// included reports whether a question-type toggle is enabled.
func (s *Settings) included(name string) bool {
	return s.IncludeTypes[name]
}
