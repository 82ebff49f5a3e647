// Package tree builds the full decision tree of a word bank: for every possible secret the
// sequence of guesses and feedback the solver goes through to find it.
package tree

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/powellquiring/minimax-wordle/wordle"
)

var (
	// ErrIncomplete means the tree did not reach every candidate exactly once.
	ErrIncomplete = errors.New("decision tree incomplete")
	// ErrUnsplittable means no guess separates the candidates of a bucket.
	ErrUnsplittable = errors.New("candidates can not be split")
)

// Sink receives one path per secret, in depth first order: guess feedback guess feedback ... secret
type Sink interface {
	Emit(path []string) error
}

// WriterSink writes each path as a line of space separated tokens.  Call Flush when done.
type WriterSink struct {
	w *bufio.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) Emit(path []string) error {
	if _, err := s.w.WriteString(strings.Join(path, " ")); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *WriterSink) Flush() error {
	return s.w.Flush()
}

// Stats summarizes a finished tree.  Histogram[n] is the number of secrets found with n guesses.
type Stats struct {
	Leaves    int
	MaxDepth  int
	Histogram map[int]int
}

// Average is the mean number of guesses per secret
func (s Stats) Average() float64 {
	if s.Leaves == 0 {
		return 0
	}
	total := 0
	for guesses, count := range s.Histogram {
		total += guesses * count
	}
	return float64(total) / float64(s.Leaves)
}

type Builder struct {
	Guesses  []wordle.Word
	Selector *wordle.Selector
	Sink     Sink
	// Progress, when not nil, is advanced once per secret placed in the tree
	Progress *progressbar.ProgressBar
	Logger   zerolog.Logger

	path  []string
	index map[string]uint
	seen  *bitset.BitSet
	stats Stats
}

// Build explores every feedback of opening against candidates, and recursively every feedback
// of the best guess for each bucket, until each bucket holds a single secret.
func (b *Builder) Build(ctx context.Context, opening wordle.Word, candidates []wordle.Word) (Stats, error) {
	if b.Selector == nil {
		b.Selector = &wordle.Selector{Logger: b.Logger}
	}
	b.path = make([]string, 0, 16)
	b.index = make(map[string]uint, len(candidates))
	for i, candidate := range candidates {
		if _, ok := b.index[candidate.String()]; ok {
			return Stats{}, fmt.Errorf("%w: duplicate candidate %s", ErrIncomplete, candidate)
		}
		b.index[candidate.String()] = uint(i)
	}
	b.seen = bitset.New(uint(len(candidates)))
	b.stats = Stats{Histogram: map[int]int{}}

	b.path = append(b.path, opening.String())
	if err := b.explore(ctx, opening, candidates, 1); err != nil {
		return b.stats, err
	}
	b.path = b.path[:len(b.path)-1]

	if count := b.seen.Count(); count != uint(len(candidates)) {
		return b.stats, fmt.Errorf("%w: %d of %d secrets", ErrIncomplete, count, len(candidates))
	}
	b.Logger.Info().Int("leaves", b.stats.Leaves).Int("max_depth", b.stats.MaxDepth).Float64("average", b.stats.Average()).Msg("decision tree complete")
	return b.stats, nil
}

// explore is called with guess already the last element of the path.  Each bucket pushes its
// feedback, and for a bucket that needs another guess, that guess, and pops them before the
// next bucket.
func (b *Builder) explore(ctx context.Context, guess wordle.Word, candidates []wordle.Word, depth int) error {
	partition := wordle.NewPartition(guess, candidates)
	// a poor opening may not split, a selected guess that does not split never will
	if depth > 1 && partition.Len() == 1 && len(candidates) > 1 {
		return fmt.Errorf("%w: %s leaves %s", ErrUnsplittable, guess, strings.Join(wordle.WordsToStrings(candidates), ","))
	}
	for feedback, bucket := range partition.Range {
		b.path = append(b.path, feedback.String())
		if len(bucket) == 1 {
			if err := b.leaf(bucket[0], depth, feedback.IsSolved()); err != nil {
				return err
			}
		} else {
			choice, err := b.Selector.Best(ctx, b.Guesses, bucket)
			if err != nil {
				return err
			}
			b.path = append(b.path, choice.Guess.String())
			if err := b.explore(ctx, choice.Guess, bucket, depth+1); err != nil {
				return err
			}
			b.path = b.path[:len(b.path)-1]
		}
		b.path = b.path[:len(b.path)-1]
	}
	return nil
}

// leaf records the path to secret.  When the last guess was not the secret itself, finding it
// takes one more guess.
func (b *Builder) leaf(secret wordle.Word, depth int, solved bool) error {
	i, ok := b.index[secret.String()]
	if !ok || b.seen.Test(i) {
		return fmt.Errorf("%w: %s reached twice", ErrIncomplete, secret)
	}
	b.seen.Set(i)

	guesses := depth
	if !solved {
		guesses++
	}
	b.stats.Leaves++
	b.stats.MaxDepth = max(b.stats.MaxDepth, guesses)
	b.stats.Histogram[guesses]++
	if b.Progress != nil {
		_ = b.Progress.Add(1)
	}

	line := make([]string, len(b.path), len(b.path)+1)
	copy(line, b.path)
	return b.Sink.Emit(append(line, secret.String()))
}
