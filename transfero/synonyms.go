package transfero

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"strings"
	"sync"
)

// SynonymProvider is the narrow interface spec §9 names for the external
// synonym lookup: `Synonyms { Get(word) → set<string> }`.
type SynonymProvider interface {
	Get(word string) []string
}

// synonymDB is a read-only, once-loaded handle onto a compressed on-disk
// synonym index, grounded on spec §5's "WordNet-style database — opened
// once, read-only afterwards, shared without locks" and §9's narrow
// Synonyms interface. The on-disk format is a gzip-compressed text file of
// "headword\tsyn1,syn2,syn3" lines: compress/gzip is the standard library
// because no WordNet-style lexical database ships in this module — the
// spec's synonym provider is explicitly an optional external dependency
// (§4.3 "uses the external synonym provider"), and this repository carries
// no bundled lexicon to hand to a richer client library.
type synonymDB struct {
	index map[string][]string
}

var (
	synonymOnce sync.Once
	synonymData *synonymDB
	synonymErr  error
)

// LoadSynonyms opens the compressed synonym database at path exactly once
// per process (subsequent calls, including with a different path, return
// the first-loaded handle); it is safe for concurrent use (spec §5(b)).
func LoadSynonyms(path string) (SynonymProvider, error) {
	synonymOnce.Do(func() {
		synonymData, synonymErr = readSynonymDB(path)
	})
	return synonymData, synonymErr
}

func readSynonymDB(path string) (*synonymDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening synonym database: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing synonym database: %w", err)
	}
	defer gz.Close()

	db := &synonymDB{index: make(map[string][]string)}
	scanner := bufio.NewScanner(gz)
	for scanner.Scan() {
		line := scanner.Text()
		word, rest, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		db.index[word] = strings.Split(rest, ",")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading synonym database: %w", err)
	}
	return db, nil
}

// Get returns word's recorded synonyms, or nil if none are known.
func (db *synonymDB) Get(word string) []string {
	if db == nil {
		return nil
	}
	return db.index[word]
}

// FindSynonyms implements spec §4.3's `FindSynonyms(meaning) → set<string>`.
// An unavailable provider, or a gloss with no recorded synonyms, degrades to
// {meaning} itself rather than an error (spec §4.3's failure semantics).
func FindSynonyms(provider SynonymProvider, meaning string) []string {
	var syns []string
	if provider != nil {
		syns = provider.Get(meaning)
	}
	out := append([]string{meaning}, syns...)
	return dedupeSorted(out)
}
