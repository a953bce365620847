package accido

import (
	"iter"
	"sort"
	"strings"
)

// Meaning is the ordered sequence of English equivalents for a headword; the
// first entry is always the principal meaning (spec §3.1, §6.4 grammar:
// "/"-separated ordered sequence).
type Meaning struct {
	values []string
}

// NewMeaning builds a Meaning from an ordered list of English glosses.
func NewMeaning(values ...string) Meaning {
	return Meaning{values: append([]string(nil), values...)}
}

// Principal returns the first (principal) meaning, or "" if none were given.
func (m Meaning) Principal() string {
	if len(m.values) == 0 {
		return ""
	}
	return m.values[0]
}

// All returns every meaning, principal first.
func (m Meaning) All() []string {
	return append([]string(nil), m.values...)
}

func (m Meaning) String() string {
	return strings.Join(m.values, "/")
}

// Word is the capability interface every part-of-speech entity implements;
// dynamic dispatch on word kind is expressed through this interface rather
// than a runtime type switch (spec §9 design note).
type Word interface {
	// Headword is the dictionary entry form.
	Headword() string
	// Get returns the principal surface form at key, or a *NoEndingError.
	Get(key EndingKey) (string, error)
	// GetAll returns every surface form collapsed at key by syncretism.
	GetAll(key EndingKey) ([]string, error)
	// FindKeys returns every key whose paradigm includes form.
	FindKeys(form string) []EndingKey
	// Forms iterates every (key, form) pair in the paradigm, in a stable
	// order (key word-rendering, then form).
	Forms() iter.Seq2[EndingKey, string]
	// Meanings returns the word's English equivalents.
	Meanings() Meaning
	// PartOfSpeech reports the entity's grammatical category.
	PartOfSpeech() PartOfSpeech
}

// endingTable is the shared forward/reverse paradigm storage embedded by
// every concrete Word implementation, enforcing P1/P2 (round-trip and
// syncretism closure, spec §8) in one place instead of per-entity.
type endingTable struct {
	headword string
	forward  map[EndingKey][]string
	reverse  map[string][]EndingKey
}

func newEndingTable(headword string) *endingTable {
	return &endingTable{
		headword: headword,
		forward:  make(map[EndingKey][]string),
		reverse:  make(map[string][]EndingKey),
	}
}

// set records one or more surface forms at key, deduplicating and keeping
// the forward/reverse maps consistent.
func (t *endingTable) set(key EndingKey, forms ...string) {
	for _, f := range forms {
		if f == "" {
			continue
		}
		if !containsStr(t.forward[key], f) {
			t.forward[key] = append(t.forward[key], f)
		}
		if !containsKey(t.reverse[f], key) {
			t.reverse[f] = append(t.reverse[f], key)
		}
	}
}

func containsStr(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func containsKey(ks []EndingKey, k EndingKey) bool {
	for _, v := range ks {
		if v == k {
			return true
		}
	}
	return false
}

func (t *endingTable) Get(key EndingKey) (string, error) {
	forms, ok := t.forward[key]
	if !ok || len(forms) == 0 {
		return "", &NoEndingError{Headword: t.headword, Key: key}
	}
	return forms[0], nil
}

func (t *endingTable) GetAll(key EndingKey) ([]string, error) {
	forms, ok := t.forward[key]
	if !ok || len(forms) == 0 {
		return nil, &NoEndingError{Headword: t.headword, Key: key}
	}
	return append([]string(nil), forms...), nil
}

func (t *endingTable) FindKeys(form string) []EndingKey {
	keys := t.reverse[form]
	if len(keys) == 0 {
		return nil
	}
	return byWords(keys)
}

func (t *endingTable) Forms() iter.Seq2[EndingKey, string] {
	type pair struct {
		key  EndingKey
		form string
	}
	var pairs []pair
	for key, forms := range t.forward {
		for _, f := range forms {
			pairs = append(pairs, pair{key, f})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].key.Words() != pairs[j].key.Words() {
			return pairs[i].key.Words() < pairs[j].key.Words()
		}
		return pairs[i].form < pairs[j].form
	})
	return func(yield func(EndingKey, string) bool) {
		for _, p := range pairs {
			if !yield(p.key, p.form) {
				return
			}
		}
	}
}
