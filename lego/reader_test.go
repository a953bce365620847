package lego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocab-tuister/core/accido"
)

func TestReadListNounSection(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Noun\nfarmer: agricola, agricolae, (m)\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	assert.Equal(t, "agricola", list.Words[0].Headword())
	assert.Equal(t, accido.POSNoun, list.Words[0].PartOfSpeech())
}

func TestReadListVerbSection(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Verb\ntake: capio, capere, cepi, captus\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	form, err := list.Words[0].Get(accido.VerbParticipleKey(accido.Present, accido.Active, accido.Neuter, accido.Accusative, accido.Singular))
	require.NoError(t, err)
	assert.Equal(t, "capiens", form)
}

func TestReadListPronounSection(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Pronoun\nthis: hic, haec, hoc\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	form, err := list.Words[0].Get(accido.PronounKey(accido.Feminine, accido.Genitive, accido.Plural))
	require.NoError(t, err)
	assert.Equal(t, "harum", form)
}

func TestReadListAdjectiveThirdDeclension(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Adjective\nlight: levis, leve, (3-2)\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	assert.Equal(t, accido.Term32, list.Words[0].(*accido.Adjective).Termination)
}

func TestReadListComments(t *testing.T) {
	t.Parallel()
	list, err := ReadList("# a comment\n@ Noun\n# another\nfarmer: agricola, agricolae, (m)\n")
	require.NoError(t, err)
	assert.Len(t, list.Words, 1)
}

func TestReadListMultipleMeanings(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Regular\nand/also: et\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	assert.Equal(t, []string{"and", "also"}, list.Words[0].Meanings().All())
}

func TestReadListUnknownSection(t *testing.T) {
	t.Parallel()
	_, err := ReadList("@ Cause an error\nfoo: bar\n")
	var fmtErr *InvalidVocabFileFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "Invalid part of speech: 'Cause an error'", fmtErr.Error())
}

func TestReadListMissingSection(t *testing.T) {
	t.Parallel()
	_, err := ReadList("farmer: agricola, agricolae, (m)\n")
	var fmtErr *InvalidVocabFileFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "Part of speech was not given.", fmtErr.Error())
}

func TestReadListInvalidLineFormat(t *testing.T) {
	t.Parallel()
	_, err := ReadList("@ Noun\nno colon here\n")
	var fmtErr *InvalidVocabFileFormatError
	require.ErrorAs(t, err, &fmtErr)
}

func TestReadListInvalidGender(t *testing.T) {
	t.Parallel()
	_, err := ReadList("@ Noun\nfarmer: agricola, agricolae, (q)\n")
	var fmtErr *InvalidVocabFileFormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Equal(t, "Invalid gender: 'q'", fmtErr.Error())
}

func TestReadListIrregularVerb(t *testing.T) {
	t.Parallel()
	list, err := ReadList("@ Verb\nbe: sum\n")
	require.NoError(t, err)
	require.Len(t, list.Words, 1)
	form, err := list.Words[0].Get(accido.VerbKey(accido.Present, accido.Active, accido.Indicative, accido.First, accido.Singular))
	require.NoError(t, err)
	assert.Equal(t, "sum", form)
}
