// Package wordbank reads word lists, one word per line.
//
// Lines are trimmed and lowercased, blank lines and lines starting with # are skipped, and a
// repeated word is kept only the first time.  Every word must be wordle.WordLength letters.
package wordbank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/rs/zerolog"

	"github.com/powellquiring/minimax-wordle/wordle"
)

type Options struct {
	// Sort the words, the solution bank is sorted so results do not depend on the file order
	Sort bool
	// Count > 0 keeps only the first Count words, after sorting
	Count  int
	Logger zerolog.Logger
}

// Read returns the words of r.  name is only used in messages.
func Read(r io.Reader, name string, opts Options) ([]string, error) {
	seen := mapset.NewThreadUnsafeSet()
	words := []string{}
	scanner := bufio.NewScanner(r)
	lineNumber, duplicates := 0, 0
	for scanner.Scan() {
		lineNumber++
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) != wordle.WordLength {
			return nil, fmt.Errorf("%s:%d: %w: %q must be %d letters long", name, lineNumber, wordle.ErrMalformedWord, word, wordle.WordLength)
		}
		if !seen.Add(word) {
			opts.Logger.Debug().Str("file", name).Int("line", lineNumber).Str("word", word).Msg("duplicate word skipped")
			duplicates++
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if opts.Sort {
		sort.Strings(words)
	}
	if opts.Count > 0 && opts.Count < len(words) {
		words = words[:opts.Count]
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", name, wordle.ErrEmptyBank)
	}
	opts.Logger.Debug().Str("file", name).Int("words", len(words)).Int("duplicates", duplicates).Msg("word bank loaded")
	return words, nil
}

// Load reads the word list file at path.
func Load(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open word bank: %w", err)
	}
	defer f.Close()
	return Read(f, path, opts)
}

// LoadBank is Load followed by wordle.NewBank
func LoadBank(path string, opts Options) (*wordle.Bank, error) {
	words, err := Load(path, opts)
	if err != nil {
		return nil, err
	}
	return wordle.NewBank(words)
}
