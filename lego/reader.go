package lego

import (
	"errors"
	"strings"

	"github.com/vocab-tuister/core/accido"
)

// sectionNames is the closed set of section headers a vocab list may
// declare, in both singular and plural spelling (spec §4.2; Adverb is a
// supplement beyond the upstream reference's five sections, since accido
// models Adverb as its own entity per spec §3.1).
var sectionNames = map[string]bool{
	"Verb": true, "Verbs": true,
	"Noun": true, "Nouns": true,
	"Adjective": true, "Adjectives": true,
	"Adverb": true, "Adverbs": true,
	"Pronoun": true, "Pronouns": true,
	"Regular": true, "Regulars": true,
}

func normalizeSection(name string) string {
	switch name {
	case "Verbs":
		return "Verb"
	case "Nouns":
		return "Noun"
	case "Adjectives":
		return "Adjective"
	case "Adverbs":
		return "Adverb"
	case "Pronouns":
		return "Pronoun"
	case "Regulars":
		return "Regular"
	default:
		return name
	}
}

// ReadList parses raw vocab-list text into a VocabList (spec §4.2's
// contract: `ReadList(bytes) → VocabList | InvalidVocabFileFormatError`).
func ReadList(text string) (*VocabList, error) {
	var words []accido.Word
	current := ""

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		switch line[0] {
		case '#':
			continue

		case '@':
			header := strings.TrimSpace(line[1:])
			if !sectionNames[header] {
				return nil, invalidFormat("Invalid part of speech: '%s'", header)
			}
			current = normalizeSection(header)

		default:
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				return nil, invalidFormat("Invalid line format: '%s'", line)
			}
			if current == "" {
				return nil, invalidFormat("Part of speech was not given.")
			}

			meaning := parseMeaning(parts[0])
			latinParts := splitAndTrim(parts[1], ",")

			word, err := parseLine(current, latinParts, meaning, line)
			if err != nil {
				var inputErr *accido.InvalidInputError
				if errors.As(err, &inputErr) {
					return nil, invalidFormat("%s (line: '%s')", inputErr.Reason, line)
				}
				return nil, err
			}
			words = append(words, word)
		}
	}

	return NewVocabList(words, text), nil
}

func parseMeaning(raw string) accido.Meaning {
	values := splitAndTrim(raw, "/")
	return accido.NewMeaning(values...)
}

func splitAndTrim(s, sep string) []string {
	rawParts := strings.Split(s, sep)
	out := make([]string, len(rawParts))
	for i, p := range rawParts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func parseLine(pos string, parts []string, meaning accido.Meaning, line string) (accido.Word, error) {
	switch pos {
	case "Verb":
		return parseVerb(parts, meaning, line)
	case "Noun":
		return parseNoun(parts, meaning, line)
	case "Adjective":
		return parseAdjective(parts, meaning, line)
	case "Adverb":
		if len(parts) != 1 {
			return nil, invalidFormat("Invalid adverb format: '%s'", line)
		}
		return accido.MakeAdverb(parts[0], meaning)
	case "Regular":
		if len(parts) != 1 {
			return nil, invalidFormat("Invalid regular word format: '%s'", line)
		}
		return accido.MakeRegularWord(parts[0], meaning)
	case "Pronoun":
		if len(parts) < 1 {
			return nil, invalidFormat("Invalid pronoun format: '%s'", line)
		}
		return accido.MakePronoun(parts[0], meaning)
	default:
		return nil, invalidFormat("Invalid part of speech: '%s'", pos)
	}
}

// parseVerb dispatches on principal-part count: 1 (irregular, headword
// only), 3 (deponent: present, infinitive, perfect), or 4 (regular: present,
// infinitive, perfect, supine/ppp) — spec §4.2 "count and shape determine
// which Accido constructor is called".
func parseVerb(parts []string, meaning accido.Meaning, line string) (accido.Word, error) {
	switch len(parts) {
	case 1:
		return accido.MakeVerb(parts[0], "", "", "", meaning, accido.VerbFlags{})
	case 3:
		return accido.MakeVerb(parts[0], parts[1], parts[2], "", meaning, accido.VerbFlags{})
	case 4:
		return accido.MakeVerb(parts[0], parts[1], parts[2], parts[3], meaning, accido.VerbFlags{})
	default:
		return nil, invalidFormat("Invalid verb format: '%s'", line)
	}
}

var genderTags = map[string]accido.Gender{
	"m": accido.Masculine, "f": accido.Feminine, "n": accido.Neuter,
}

// parseNoun dispatches on principal-part count: 1 (irregular, headword
// only) or 3 (nominative, genitive, gender metadata).
func parseNoun(parts []string, meaning accido.Meaning, line string) (accido.Word, error) {
	switch len(parts) {
	case 1:
		return accido.MakeNoun(parts[0], "", accido.Masculine, meaning)
	case 3:
		tag := lastParenToken(parts[2])
		gender, ok := genderTags[tag]
		if !ok {
			return nil, invalidFormat("Invalid gender: '%s'", tag)
		}
		return accido.MakeNoun(parts[0], firstToken(parts[1]), gender, meaning)
	default:
		return nil, invalidFormat("Invalid noun format: '%s'", line)
	}
}

// parseAdjective dispatches on the trailing metadata token: "212"/"2-1-2"
// selects the 2-1-2 constructor, which needs 3 principal parts;
// "3-1"/"3-2"/"3-3" selects the matching third-declension termination.
func parseAdjective(parts []string, meaning accido.Meaning, line string) (accido.Word, error) {
	if len(parts) != 3 && len(parts) != 4 {
		return nil, invalidFormat("Invalid adjective format: '%s'", line)
	}

	declension := strings.Trim(parts[len(parts)-1], "()")
	principalParts := parts[:len(parts)-1]

	switch declension {
	case "212", "2-1-2":
		return accido.MakeAdjective(principalParts, accido.Term212, meaning)
	case "3-1":
		return accido.MakeAdjective(principalParts, accido.Term31, meaning)
	case "3-2":
		return accido.MakeAdjective(principalParts, accido.Term32, meaning)
	case "3-3":
		return accido.MakeAdjective(principalParts, accido.Term33, meaning)
	default:
		return nil, invalidFormat("Invalid adjective declension: '%s'", declension)
	}
}

// lastParenToken returns the final whitespace-separated token of s, stripped
// of surrounding parentheses (spec §4.2's "(m)"/"(f)"/"(n)" gender tags may
// follow other metadata words on the same principal part).
func lastParenToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[len(fields)-1], "()")
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
