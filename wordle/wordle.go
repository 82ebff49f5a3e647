package wordle

import (
	"fmt"

	"github.com/powellquiring/minimax-wordle/bitset"
)

// WordLength is the number of letters in every guess and secret
const WordLength = 5

// letterPositions is the set of positions of one letter within a word
type letterPositions struct {
	letter    byte
	positions bitset.BitSet
}

// Word is a guess or a secret.  The positions of each distinct letter are computed once so
// feedback only walks the distinct letters of the guess.  A Word is immutable and is shared
// by value.
type Word struct {
	text    string
	letters []letterPositions // distinct letters in order of first appearance
}

// NewWord does not check the length, see ParseWord.
func NewWord(text string) Word {
	w := Word{text: text}
	for i := range len(text) {
		letter := text[i]
		found := false
		for l := range w.letters {
			if w.letters[l].letter == letter {
				w.letters[l].positions = w.letters[l].positions.Set(uint(i))
				found = true
				break
			}
		}
		if !found {
			w.letters = append(w.letters, letterPositions{letter: letter, positions: bitset.New(uint(i))})
		}
	}
	return w
}

// ParseWord is NewWord for unvalidated input
func ParseWord(text string) (Word, error) {
	if len(text) != WordLength {
		return Word{}, fmt.Errorf("%w: %q must be %d letters long", ErrMalformedWord, text, WordLength)
	}
	return NewWord(text), nil
}

func (w Word) String() string {
	return w.text
}

// Positions returns where letter occurs in the word, empty if it does not occur.
func (w Word) Positions(letter byte) bitset.BitSet {
	for _, lp := range w.letters {
		if lp.letter == letter {
			return lp.positions
		}
	}
	return bitset.New()
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, word := range words {
		ret = append(ret, word.text)
	}
	return ret
}

// Bank is an ordered list of words, the allowed guesses or the possible solutions.
type Bank struct {
	words        []Word
	stringToWord map[string]int
}

// NewBank fails for an empty list or a word of the wrong length.  A repeated word keeps
// the index of its first occurrence for lookups.
func NewBank(strings []string) (*Bank, error) {
	if len(strings) == 0 {
		return nil, ErrEmptyBank
	}
	ret := &Bank{
		words:        make([]Word, 0, len(strings)),
		stringToWord: make(map[string]int, len(strings)),
	}
	for _, s := range strings {
		word, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		if _, ok := ret.stringToWord[s]; !ok {
			ret.stringToWord[s] = len(ret.words)
		}
		ret.words = append(ret.words, word)
	}
	return ret, nil
}

func (b *Bank) Len() int {
	return len(b.words)
}

// Words is the bank in order.  The slice is shared, callers must not modify it.
func (b *Bank) Words() []Word {
	return b.words
}

func (b *Bank) Word(s string) (Word, bool) {
	i, ok := b.stringToWord[s]
	if !ok {
		return Word{}, false
	}
	return b.words[i], true
}

func (b *Bank) Index(s string) (int, bool) {
	i, ok := b.stringToWord[s]
	return i, ok
}

func (b *Bank) Contains(s string) bool {
	_, ok := b.stringToWord[s]
	return ok
}

func (b *Bank) Strings() []string {
	return WordsToStrings(b.words)
}
