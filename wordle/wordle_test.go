package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWordStrings = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve",
	"heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign",
	"major", "pause", "arise", "raise", "petal", "heron", "brake", "crane", "slate", "trace",
	"ferry", "cacao", "canal", "abyss", "clack", "clamp", "clank", "cloak", "local", "octal",
	"vocal", "thank",
}

func testBank(t testing.TB) *Bank {
	t.Helper()
	bank, err := NewBank(testWordStrings)
	require.NoError(t, err)
	return bank
}

func wordOrFail(t testing.TB, b *Bank, s string) Word {
	t.Helper()
	word, ok := b.Word(s)
	require.True(t, ok, "word not in bank: "+s)
	return word
}

func TestNewWordPositions(t *testing.T) {
	w := NewWord("llool")
	assert.Equal(t, "llool", w.String())
	assert.Equal(t, 3, w.Positions('l').Count())
	assert.True(t, w.Positions('l').Test(4))
	assert.Equal(t, 2, w.Positions('o').Count())
	assert.True(t, w.Positions('z').None())
	assert.Len(t, w.letters, 2)
}

func TestParseWord(t *testing.T) {
	_, err := ParseWord("toolong")
	assert.True(t, errors.Is(err, ErrMalformedWord))
	_, err = ParseWord("")
	assert.True(t, errors.Is(err, ErrMalformedWord))
	w, err := ParseWord("crane")
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
}

func TestBank(t *testing.T) {
	b := testBank(t)
	assert.Equal(t, len(testWordStrings), b.Len())
	assert.Equal(t, testWordStrings, b.Strings())
	i, ok := b.Index("rebut")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, b.Contains("thank"))
	assert.False(t, b.Contains("zzzzz"))
	_, ok = b.Word("zzzzz")
	assert.False(t, ok)

	_, err := NewBank(nil)
	assert.True(t, errors.Is(err, ErrEmptyBank))
	_, err = NewBank([]string{"cigar", "four"})
	assert.True(t, errors.Is(err, ErrMalformedWord))
}

func TestBankDuplicateKeepsFirstIndex(t *testing.T) {
	b, err := NewBank([]string{"cigar", "rebut", "cigar"})
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	i, _ := b.Index("cigar")
	assert.Equal(t, 0, i)
}
